package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// InitStructured configures the process logger. Development gets pretty
// console output; anything else emits JSON lines. LOG_LEVEL overrides
// the default info threshold.
func InitStructured(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = os.Stdout
	if env == "development" || env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	zlog = zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", "antera-backend").
		Logger()
}

// GetLogger returns the process logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a sub-logger tagged with the request id
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}
