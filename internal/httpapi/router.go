package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the API routes with the standard middleware chain.
func NewRouter(app *App, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		AccessLog(app.Logger),
		CORS(allowedOrigins),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Post("/process-image", app.ProcessImage)
		r.Get("/download/{type}/{identifier}", app.DownloadArtifact)
	})

	return r
}
