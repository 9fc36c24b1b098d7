package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns the process logger. Level comes from LOG_LEVEL; text output
// keeps local logs readable, and the platform collector handles shipping.
func New() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
