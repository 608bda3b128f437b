package lazyvec

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with lazyvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLabel adds a vector-label field to the logger.
func (l *Logger) WithLabel(label string) *Logger {
	return &Logger{
		Logger: l.Logger.With("label", label),
	}
}

// LogGrow logs a capacity-growth operation and its duration.
func (l *Logger) LogGrow(label string, capacity int, duration time.Duration) {
	l.Info("grew",
		"label", label,
		"capacity", capacity,
		"duration", duration,
	)
}

// LogReinit logs a reinit operation and its duration.
func (l *Logger) LogReinit(label string, n int, duration time.Duration) {
	l.Info("reinitialized",
		"label", label,
		"cells", n,
		"duration", duration,
	)
}
