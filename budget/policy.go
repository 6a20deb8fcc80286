package budget

import (
	"errors"

	"github.com/hupe1980/memlock/internal/logging"
)

// Policy selects which failures the Handled variants tolerate.
type Policy uint8

const (
	// GracefulOverLimit tolerates OverLimit.
	GracefulOverLimit Policy = 1 << iota
	// GracefulOpFailure tolerates LockOpFailed and UnlockOpFailed.
	GracefulOpFailure

	// Strict tolerates nothing.
	Strict Policy = 0
	// Graceful tolerates every recoverable failure.
	Graceful = GracefulOverLimit | GracefulOpFailure
)

// Tolerates reports whether p treats err as graceful. UnderMinimum and mutex
// failures are never graceful.
func (p Policy) Tolerates(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case OverLimit:
		return p&GracefulOverLimit != 0
	case LockOpFailed, UnlockOpFailed:
		return p&GracefulOpFailure != 0
	default:
		return false
	}
}

// LockHandled pins p and reports whether it is pinned. Failures tolerated by
// policy leave p unpinned; any other failure terminates the process.
func (b *Budget) LockHandled(p []byte, policy Policy) bool {
	return b.handle("lock", b.Lock(p), policy)
}

// UnlockHandled unpins p and reports whether it was unpinned. Failures
// tolerated by policy leave p pinned; any other failure terminates the
// process.
func (b *Budget) UnlockHandled(p []byte, policy Policy) bool {
	return b.handle("unlock", b.Unlock(p), policy)
}

// LockOrDie pins p or terminates the process.
func (b *Budget) LockOrDie(p []byte) {
	if err := b.Lock(p); err != nil {
		b.logger.Fatal("lock", err)
	}
}

// UnlockOrDie unpins p or terminates the process.
func (b *Budget) UnlockOrDie(p []byte) {
	if err := b.Unlock(p); err != nil {
		b.logger.Fatal("unlock", err)
	}
}

// NewOrDie is New that terminates the process on failure. A failure to raise
// the soft ceiling is not fatal.
func NewOrDie(optFns ...Option) *Budget {
	b, err := New(optFns...)
	if err != nil && !errors.Is(err, SetLimitError) {
		o := options{}
		for _, fn := range optFns {
			fn(&o)
		}
		logging.From(o.logger).WithComponent("budget").Fatal("init", err)
	}
	return b
}

func (b *Budget) handle(op string, err error, policy Policy) bool {
	if err == nil {
		return true
	}
	if policy.Tolerates(err) {
		return false
	}
	b.logger.Fatal(op, err)
	return false
}
