// Package logging wraps slog with memlock-specific operation helpers and the
// process termination used by every -OrDie form.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Exit terminates the process after a fatal diagnostic. Tests replace it.
var Exit = os.Exit

// Logger wraps slog.Logger with memlock-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// From wraps l, falling back to slog.Default when l is nil.
func From(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{Logger: l}
}

// WithComponent tags every record with the emitting component.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// LogInit logs the outcome of a budget initialization.
func (l *Logger) LogInit(pageSize int, limit uint64, err error) {
	if err != nil {
		l.Warn("lock budget initialized with warning",
			"page_size", pageSize,
			"limit", limit,
			"error", err,
		)
	} else {
		l.Debug("lock budget initialized",
			"page_size", pageSize,
			"limit", limit,
		)
	}
}

// LogLock logs a pin request.
func (l *Logger) LogLock(size int, locked uint64, err error) {
	if err != nil {
		l.Warn("lock failed",
			"size", size,
			"locked", locked,
			"error", err,
		)
	} else {
		l.Debug("lock completed",
			"size", size,
			"locked", locked,
		)
	}
}

// LogUnlock logs an unpin request.
func (l *Logger) LogUnlock(size int, locked uint64, err error) {
	if err != nil {
		l.Warn("unlock failed",
			"size", size,
			"locked", locked,
			"error", err,
		)
	} else {
		l.Debug("unlock completed",
			"size", size,
			"locked", locked,
		)
	}
}

// LogMap logs a mapping attempt.
func (l *Logger) LogMap(path string, size int64, readonly bool, err error) {
	if err != nil {
		l.Error("map failed",
			"path", path,
			"size", size,
			"readonly", readonly,
			"error", err,
		)
	} else {
		l.Debug("map completed",
			"path", path,
			"size", size,
			"readonly", readonly,
		)
	}
}

// LogUnmap logs an unmap.
func (l *Logger) LogUnmap(path string, err error) {
	if err != nil {
		l.Error("unmap failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("unmap completed",
			"path", path,
		)
	}
}

// LogSync logs a flush of dirty pages.
func (l *Logger) LogSync(path string, err error) {
	if err != nil {
		l.Error("sync failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("sync completed",
			"path", path,
		)
	}
}

// LogClose logs the teardown of a mapped file.
func (l *Logger) LogClose(path string, err error) {
	if err != nil {
		l.Error("close failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("close completed",
			"path", path,
		)
	}
}

// Fatal logs err as a diagnostic for op and terminates the process.
func (l *Logger) Fatal(op string, err error) {
	l.Error("fatal error",
		"op", op,
		"error", err,
	)
	Exit(1)
}
