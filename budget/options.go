package budget

import (
	"log/slog"

	"github.com/hupe1980/memlock/internal/mlock"
)

type options struct {
	pinner       mlock.Pinner
	logger       *slog.Logger
	metrics      MetricsCollector
	limit        uint64
	raise        bool
	synchronized bool
}

// Option configures a Budget.
type Option func(*options)

// WithPinner sets the pinning capability. Defaults to the platform's.
func WithPinner(p mlock.Pinner) Option {
	return func(o *options) {
		if p != nil {
			o.pinner = p
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the collector notified after every non-empty Lock and
// Unlock. Defaults to NoopMetricsCollector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithLimit caps the budget below the OS ceiling. A cap above the OS
// ceiling has no effect; 0 means no cap.
func WithLimit(bytes uint64) Option {
	return func(o *options) {
		o.limit = bytes
	}
}

// WithoutRaise keeps the soft OS ceiling instead of raising it to the hard one.
func WithoutRaise() Option {
	return func(o *options) {
		o.raise = false
	}
}

// WithoutMutex builds a Budget for single-goroutine use. Its operations must
// not be called concurrently.
func WithoutMutex() Option {
	return func(o *options) {
		o.synchronized = false
	}
}
