package ordmap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ordmap-specific records.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at debug level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
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

// LogCommit logs a pending slot turned into an entry.
func (l *Logger) LogCommit(key interface{}, id uint64) {
	l.Debug("pending slot committed",
		"key", key,
		"id", id,
	)
}

// LogDiscard logs a pending slot dropped because nothing was written to it.
func (l *Logger) LogDiscard(key interface{}) {
	l.Debug("pending slot discarded",
		"key", key,
	)
}

// LogClear logs a map reset.
func (l *Logger) LogClear(count int, pendingDropped bool) {
	l.Debug("map cleared",
		"count", count,
		"pending_dropped", pendingDropped,
	)
}
