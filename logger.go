package bayesgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with classifier-specific helpers so both training
// and classification log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is nil,
// uses the default text handler to stderr.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCategory adds a category field to the logger.
func (l *Logger) WithCategory(category string) *Logger {
	return &Logger{
		Logger: l.Logger.With("category", category),
	}
}

// LogTrain logs a training operation.
func (l *Logger) LogTrain(features int, categories []string, err error) {
	if err != nil {
		l.Error("train failed",
			"features", features,
			"categories", categories,
			"error", err,
		)
	} else {
		l.Debug("train completed",
			"features", features,
			"categories", categories,
		)
	}
}

// LogClassify logs a classification operation.
func (l *Logger) LogClassify(features, ranked int, duration time.Duration, err error) {
	if err != nil {
		l.Error("classify failed",
			"features", features,
			"error", err,
		)
	} else {
		l.Debug("classify completed",
			"features", features,
			"ranked", ranked,
			"duration", duration,
		)
	}
}
