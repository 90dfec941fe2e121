// Package logging builds the service logger and adapts it to the pipeline's Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog.Logger with sane defaults for the service.
// Development gets human-readable console output at debug level.
func New(appEnv string) zerolog.Logger {
	return NewWithWriter(appEnv, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(appEnv string, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	if appEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	return logger
}

// Adapter exposes a zerolog.Logger through the printf-style Infof/Warnf/Errorf interface
// consumed by the extraction pipeline.
type Adapter struct {
	Logger zerolog.Logger
}

// Infof logs at info level.
func (a Adapter) Infof(format string, args ...any) {
	a.Logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Warnf logs at warn level.
func (a Adapter) Warnf(format string, args ...any) {
	a.Logger.Warn().Msg(fmt.Sprintf(format, args...))
}

// Errorf logs at error level.
func (a Adapter) Errorf(format string, args ...any) {
	a.Logger.Error().Msg(fmt.Sprintf(format, args...))
}
