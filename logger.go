package surf

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with surfel-specific helpers, providing
// structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a default text handler to stderr.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogSampleTriangles logs a triangle sampling pass.
func (l *Logger) LogSampleTriangles(strategy SurfelSampling, generated int, err error) {
	if err != nil {
		l.Error("triangle sampling failed",
			"strategy", strategy.String(),
			"error", err,
		)
	} else {
		l.Debug("triangle sampling completed",
			"strategy", strategy.String(),
			"generated", generated,
		)
	}
}

// LogAddSamples logs an explicit sample append.
func (l *Logger) LogAddSamples(count int) {
	l.Debug("samples added",
		"count", count,
	)
}

// LogBuild logs surface finalization.
func (l *Logger) LogBuild(samples int, err error) {
	if err != nil {
		l.Error("surface build failed",
			"samples", samples,
			"error", err,
		)
	} else {
		l.Info("surface built",
			"samples", samples,
		)
	}
}

// LogDump logs a surface export.
func (l *Logger) LogDump(samples int, compressed bool, err error) {
	if err != nil {
		l.Error("surface dump failed",
			"samples", samples,
			"compressed", compressed,
			"error", err,
		)
	} else {
		l.Debug("surface dumped",
			"samples", samples,
			"compressed", compressed,
		)
	}
}
