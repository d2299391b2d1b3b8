package propgraph

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with propgraph-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithTx adds a transaction ID field to the logger.
func (l *Logger) WithTx(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("tx", id),
	}
}

// LogCommit logs a commit.
func (l *Logger) LogCommit(ctx context.Context, mutations int) {
	l.DebugContext(ctx, "transaction committed",
		"mutations", mutations,
	)
}

// LogRevert logs a revert.
func (l *Logger) LogRevert(ctx context.Context, mutations int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "transaction revert failed",
			"mutations", mutations,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "transaction reverted",
			"mutations", mutations,
		)
	}
}

// LogCloseFailure logs a Close that could not revert uncommitted changes.
// The graph may be left partially modified.
func (l *Logger) LogCloseFailure(ctx context.Context, err error) {
	l.ErrorContext(ctx, "transaction close failed",
		"error", err,
	)
}

// LogOperator logs a graph operator run.
func (l *Logger) LogOperator(ctx context.Context, op string, product uint32, err error) {
	if err != nil {
		l.DebugContext(ctx, "operator failed",
			"op", op,
			"product", product,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "operator completed",
			"op", op,
			"product", product,
		)
	}
}
