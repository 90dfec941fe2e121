// Package httpapi exposes the extraction pipeline and the artifact resolver over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	imageextractor "github.com/hellenic-development/image-extractor"
	"github.com/hellenic-development/image-extractor/pkg/artifact"
	"github.com/hellenic-development/image-extractor/pkg/extractor"
)

// App holds the handler dependencies. Every field is read-only after construction.
type App struct {
	Logger         zerolog.Logger
	Resolver       *artifact.Resolver
	Colors         extractor.ColorExtractor
	Fonts          extractor.FontExtractor
	MaxUploadBytes int64
}

// NewApp returns an App wired with the sample extractors and a wall-clock resolver.
func NewApp(logger zerolog.Logger, maxUploadBytes int64) *App {
	return &App{
		Logger:         logger,
		Resolver:       artifact.NewResolver(),
		Colors:         extractor.SampleColorExtractor{},
		Fonts:          extractor.SampleFontExtractor{},
		MaxUploadBytes: maxUploadBytes,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.Logger.Error().Err(err).Msg("failed to write response")
	}
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorResponse{Error: message})
}

func (a *App) pipelineOptions(r *http.Request) imageextractor.Options {
	logger := a.Logger.With().Str("request_id", RequestIDFromContext(r.Context())).Logger()
	return imageextractor.Options{
		Colors: a.Colors,
		Fonts:  a.Fonts,
		Logger: requestLogger{logger},
	}
}
