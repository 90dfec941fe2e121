package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hellenic-development/image-extractor/internal/config"
	"github.com/hellenic-development/image-extractor/internal/httpapi"
	"github.com/hellenic-development/image-extractor/internal/logging"
)

var envFile string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before reading the environment")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load(envFile)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.AppEnv)

	app := httpapi.NewApp(logger, cfg.MaxUploadBytes)
	router := httpapi.NewRouter(app, cfg.AllowedOrigins)

	server := httpapi.NewServer(httpapi.ServerConfig{
		Addr:         cfg.Addr(),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}, router)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Msgf("API listening on %s", cfg.Addr())
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("http server failed")
		}
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
