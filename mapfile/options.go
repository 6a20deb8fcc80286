package mapfile

import (
	"log/slog"
	"os"

	"github.com/hupe1980/memlock/internal/fs"
	"github.com/hupe1980/memlock/internal/mmap"
	"golang.org/x/time/rate"
)

// DefaultMode is the permission of files created by Init.
const DefaultMode os.FileMode = 0o600

type options struct {
	fs      fs.FileSystem
	mapper  mmap.Mapper
	logger  *slog.Logger
	mode    os.FileMode
	limiter *rate.Limiter
}

// Option configures a File.
type Option func(*options)

// WithFileSystem sets the file collaborator. Defaults to the local filesystem.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithMapper sets the mapping capability. Defaults to the platform's.
func WithMapper(m mmap.Mapper) Option {
	return func(o *options) {
		if m != nil {
			o.mapper = m
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMode sets the permission of files created by Init.
func WithMode(mode os.FileMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithSyncLimiter throttles Sync and SyncContext to the limiter's rate, one
// token per flush. Close is never throttled.
func WithSyncLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}
