// Package logging provides structured logging infrastructure for skillsync.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/skillstack/skillsync/internal/config"
)

// NewFromConfig creates a slog.Logger based on configuration.
// verbose forces debug level regardless of the configured level.
func NewFromConfig(cfg *config.Config, verbose bool) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(newHandler(cfg.Logging.Format, os.Stderr, level))
}

// NewDefault creates a default logger writing to stderr.
func NewDefault() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// NewForTest creates a silent logger for tests.
func NewForTest() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// parseLevel converts config log level to slog.Level.
func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newHandler creates a slog.Handler based on format.
func newHandler(format config.LogFormat, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// WithSkill returns a logger with skill context.
func WithSkill(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("skill", name)
}
