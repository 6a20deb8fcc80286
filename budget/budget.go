package budget

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hupe1980/memlock/internal/logging"
	"github.com/hupe1980/memlock/internal/mlock"
	"golang.org/x/sync/semaphore"
)

// Budget is one arbitration domain for pinned memory.
type Budget struct {
	pinner   mlock.Pinner
	logger   *logging.Logger
	metrics  MetricsCollector
	pageSize int
	limit    uint64

	// admit holds one unit per admitted byte.
	admit *semaphore.Weighted

	mu sync.Locker
	// reserved counts admitted bytes, including those whose pin syscall
	// is still running. locked <= reserved <= limit.
	reserved uint64
	locked   uint64
}

// Stats is a snapshot of a Budget.
type Stats struct {
	PageSize int
	Limit    uint64
	Locked   uint64
	Reserved uint64
}

// New queries the page size and pinning ceiling and returns an empty Budget.
//
// When the soft ceiling is below the hard one, New tries to raise it. If that
// fails New still returns a usable Budget limited to the soft ceiling,
// together with an error matching SetLimitError.
func New(optFns ...Option) (*Budget, error) {
	o := options{
		pinner:       mlock.Default,
		metrics:      NoopMetricsCollector{},
		raise:        true,
		synchronized: true,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	b := &Budget{
		pinner:  o.pinner,
		logger:  logging.From(o.logger).WithComponent("budget"),
		metrics: o.metrics,
	}

	b.pageSize = o.pinner.PageSize()
	if b.pageSize <= 0 {
		return nil, &Error{Op: "init", Code: GetLimitError, Err: fmt.Errorf("invalid page size %d", b.pageSize)}
	}

	soft, hard, err := o.pinner.Limits()
	if err != nil {
		return nil, &Error{Op: "init", Code: GetLimitError, Err: err}
	}

	var initErr error
	if o.raise && soft < hard {
		if err := o.pinner.RaiseSoftLimit(); err != nil {
			initErr = &Error{Op: "init", Code: SetLimitError, Err: err}
		} else {
			soft = hard
		}
	}

	b.limit = soft
	if o.limit > 0 && o.limit < b.limit {
		b.limit = o.limit
	}

	b.admit = semaphore.NewWeighted(int64(min(b.limit, math.MaxInt64)))

	if o.synchronized {
		b.mu = &sync.Mutex{}
	} else {
		b.mu = nopLocker{}
	}

	b.logger.LogInit(b.pageSize, b.limit, initErr)
	return b, initErr
}

// Rounded returns n rounded up to a whole number of pages.
func Rounded(n, pageSize int) uint64 {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	ps := uint64(pageSize)
	return (uint64(n) + ps - 1) / ps * ps
}

// Lock pins p if its page-rounded size fits in the remaining budget.
//
// An empty p is a no-op. On failure nothing is pinned and the accounting is
// unchanged. Lock does not wait: while LockWait callers are queued it reports
// OverLimit even if their requests would leave room for p.
func (b *Budget) Lock(p []byte) (err error) {
	n := Rounded(len(p), b.pageSize)
	if n == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		b.metrics.RecordLock(n, time.Since(start), err)
	}()

	if n > b.limit || !b.admit.TryAcquire(int64(n)) {
		err = &Error{Op: "lock", Code: OverLimit, Size: len(p)}
		b.logger.LogLock(len(p), b.Locked(), err)
		return err
	}
	return b.pin(p, n)
}

// LockWait is Lock that waits for room in the budget instead of failing with
// OverLimit. A region larger than the whole budget still fails immediately.
// If ctx is done first, the error matches OverLimit and wraps ctx.Err().
func (b *Budget) LockWait(ctx context.Context, p []byte) (err error) {
	n := Rounded(len(p), b.pageSize)
	if n == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		b.metrics.RecordLock(n, time.Since(start), err)
	}()

	if n > b.limit {
		err = &Error{Op: "lock", Code: OverLimit, Size: len(p)}
		b.logger.LogLock(len(p), b.Locked(), err)
		return err
	}
	if aerr := b.admit.Acquire(ctx, int64(n)); aerr != nil {
		err = &Error{Op: "lock", Code: OverLimit, Size: len(p), Err: aerr}
		b.logger.LogLock(len(p), b.Locked(), err)
		return err
	}
	return b.pin(p, n)
}

// pin pins p after n bytes were admitted.
func (b *Budget) pin(p []byte, n uint64) error {
	b.mu.Lock()
	b.reserved += n
	b.mu.Unlock()

	if err := b.pinner.Lock(p); err != nil {
		b.mu.Lock()
		b.reserved -= n
		locked := b.locked
		b.mu.Unlock()
		b.admit.Release(int64(n))

		lerr := &Error{Op: "lock", Code: LockOpFailed, Size: len(p), Err: err}
		b.logger.LogLock(len(p), locked, lerr)
		return lerr
	}

	b.mu.Lock()
	b.locked += n
	locked := b.locked
	b.mu.Unlock()

	b.logger.LogLock(len(p), locked, nil)
	return nil
}

// Unlock unpins p and returns its page-rounded size to the budget.
//
// Unlocking more than is locked fails with UnderMinimum without touching the
// OS. An empty p is a no-op.
func (b *Budget) Unlock(p []byte) (err error) {
	n := Rounded(len(p), b.pageSize)
	if n == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		b.metrics.RecordUnlock(n, time.Since(start), err)
	}()

	b.mu.Lock()
	if n > b.locked {
		locked := b.locked
		b.mu.Unlock()
		err = &Error{Op: "unlock", Code: UnderMinimum, Size: len(p)}
		b.logger.LogUnlock(len(p), locked, err)
		return err
	}
	b.locked -= n
	b.mu.Unlock()

	if err := b.pinner.Unlock(p); err != nil {
		b.mu.Lock()
		b.locked += n
		locked := b.locked
		b.mu.Unlock()
		uerr := &Error{Op: "unlock", Code: UnlockOpFailed, Size: len(p), Err: err}
		b.logger.LogUnlock(len(p), locked, uerr)
		return uerr
	}

	b.mu.Lock()
	b.reserved -= n
	locked := b.locked
	b.mu.Unlock()
	b.admit.Release(int64(n))

	b.logger.LogUnlock(len(p), locked, nil)
	return nil
}

// PageSize returns the page size used for rounding.
func (b *Budget) PageSize() int { return b.pageSize }

// Limit returns the maximum number of bytes this Budget may pin.
func (b *Budget) Limit() uint64 { return b.limit }

// Locked returns the number of bytes currently pinned through b.
func (b *Budget) Locked() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Stats returns a consistent snapshot of b.
func (b *Budget) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		PageSize: b.pageSize,
		Limit:    b.limit,
		Locked:   b.locked,
		Reserved: b.reserved,
	}
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}
