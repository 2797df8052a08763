package labelvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with label-store specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// A nil handler logs text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithCount adds a count field.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("count", count)}
}

// WithSource adds a source field naming where labels come from or go to.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{Logger: l.Logger.With("source", source)}
}

// LogLoad logs a load.
func (l *Logger) LogLoad(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed", "error", err)
		return
	}
	l.DebugContext(ctx, "labels loaded", "count", count)
}

// LogSave logs a save.
func (l *Logger) LogSave(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed", "count", count, "error", err)
		return
	}
	l.DebugContext(ctx, "labels saved", "count", count)
}

// LogSoftFailure logs a rejected single-label write.
func (l *Logger) LogSoftFailure(op string, index, physical, length int) {
	l.Debug("label write rejected",
		"op", op,
		"index", index,
		"physical", physical,
		"length", length,
	)
}
