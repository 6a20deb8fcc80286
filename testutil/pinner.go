package testutil

import "sync"

// FakePinner is an in-memory mlock.Pinner. It rounds requests to its page
// size and tracks the pinned total the way the kernel would.
type FakePinner struct {
	mu sync.Mutex

	page       int
	soft, hard uint64

	limitsErr error
	raiseErr  error
	lockErr   error
	unlockErr error

	pinned    uint64
	maxPinned uint64
	locks     int
	unlocks   int
	raises    int
}

// NewFakePinner returns a FakePinner whose soft and hard ceilings are limit.
func NewFakePinner(page int, limit uint64) *FakePinner {
	return &FakePinner{page: page, soft: limit, hard: limit}
}

// SetLimits sets distinct soft and hard ceilings.
func (p *FakePinner) SetLimits(soft, hard uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.soft, p.hard = soft, hard
}

// SetLimitsErr makes Limits fail with err.
func (p *FakePinner) SetLimitsErr(err error) { p.set(&p.limitsErr, err) }

// SetRaiseErr makes RaiseSoftLimit fail with err.
func (p *FakePinner) SetRaiseErr(err error) { p.set(&p.raiseErr, err) }

// SetLockErr makes Lock fail with err.
func (p *FakePinner) SetLockErr(err error) { p.set(&p.lockErr, err) }

// SetUnlockErr makes Unlock fail with err.
func (p *FakePinner) SetUnlockErr(err error) { p.set(&p.unlockErr, err) }

func (p *FakePinner) set(dst *error, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	*dst = err
}

func (p *FakePinner) PageSize() int { return p.page }

func (p *FakePinner) Limits() (uint64, uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.limitsErr != nil {
		return 0, 0, p.limitsErr
	}
	return p.soft, p.hard, nil
}

func (p *FakePinner) RaiseSoftLimit() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.raises++
	if p.raiseErr != nil {
		return p.raiseErr
	}
	p.soft = p.hard
	return nil
}

func (p *FakePinner) Lock(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locks++
	if p.lockErr != nil {
		return p.lockErr
	}
	p.pinned += p.round(len(b))
	if p.pinned > p.maxPinned {
		p.maxPinned = p.pinned
	}
	return nil
}

func (p *FakePinner) Unlock(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unlocks++
	if p.unlockErr != nil {
		return p.unlockErr
	}
	p.pinned -= p.round(len(b))
	return nil
}

func (p *FakePinner) round(n int) uint64 {
	ps := uint64(p.page)
	return (uint64(n) + ps - 1) / ps * ps
}

// Pinned returns the bytes currently pinned.
func (p *FakePinner) Pinned() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pinned
}

// MaxPinned returns the high-water mark of Pinned.
func (p *FakePinner) MaxPinned() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxPinned
}

// Calls returns how many times Lock, Unlock and RaiseSoftLimit ran.
func (p *FakePinner) Calls() (locks, unlocks, raises int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locks, p.unlocks, p.raises
}
