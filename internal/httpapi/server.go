package httpapi

import (
	"context"
	"net/http"
	"time"
)

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps http.Server to provide startup and graceful shutdown helpers.
type Server struct {
	server *http.Server
}

// NewServer creates a configured HTTP server instance.
func NewServer(cfg ServerConfig, handler http.Handler) *Server {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return &Server{server: srv}
}

// Start runs the HTTP server in the current goroutine.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
