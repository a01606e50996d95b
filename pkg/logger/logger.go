package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates the process logger.
// level: debug, info, warn, error. pretty: human-readable console output.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

// NewWithWriter creates a logger writing to w, without caller info.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Component derives a child logger tagged with the emitting component.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// parseLevel accepts the four levels the service logs at; anything else is info.
func parseLevel(level string) zerolog.Level {
	switch lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); {
	case err != nil:
		return zerolog.InfoLevel
	case lvl == zerolog.DebugLevel, lvl == zerolog.InfoLevel, lvl == zerolog.WarnLevel, lvl == zerolog.ErrorLevel:
		return lvl
	default:
		return zerolog.InfoLevel
	}
}
