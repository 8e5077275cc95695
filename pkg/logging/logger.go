// Package logging provides the structured JSON logger used across the
// scheduling engine.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger so call sites stay decoupled from the handler
// configuration.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger at the named level, writing to stdout.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a JSON logger writing to w. Tests use this to capture
// output.
func NewWithWriter(level string, w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{Logger: slog.New(handler)}
}

// Default returns an info-level logger. Constructors fall back to this when
// handed a nil logger.
func Default() *Logger {
	return New("info")
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
