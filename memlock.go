package memlock

import (
	"sync"

	"github.com/hupe1980/memlock/budget"
	"github.com/hupe1980/memlock/internal/logging"
	"github.com/hupe1980/memlock/mapfile"
)

var (
	defaultMu      sync.Mutex
	defaultOpts    options
	defaultStarted bool

	defaultOnce   sync.Once
	defaultBudget *budget.Budget
	defaultErr    error
)

// SetDefaultOptions configures the process-wide budget. It must be called
// before the first Default, Lock, or Unlock; afterwards it returns
// ErrDefaultInitialized.
func SetDefaultOptions(optFns ...Option) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultStarted {
		return ErrDefaultInitialized
	}

	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}
	defaultOpts = o
	return nil
}

// Default returns the process-wide budget, creating it on first use.
//
// The budget may be non-nil together with an error matching
// budget.SetLimitError: the soft ceiling could not be raised and the budget
// is limited to it. A nil budget means the ceiling could not be read; the
// error is returned by every later call.
func Default() (*budget.Budget, error) {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		defaultStarted = true
		o := defaultOpts
		defaultMu.Unlock()

		defaultBudget, defaultErr = budget.New(o.budgetOptions()...)
	})
	return defaultBudget, defaultErr
}

// Lock pins p against the default budget.
func Lock(p []byte) error {
	b, err := Default()
	if b == nil {
		return err
	}
	return b.Lock(p)
}

// Unlock unpins p from the default budget.
func Unlock(p []byte) error {
	b, err := Default()
	if b == nil {
		return err
	}
	return b.Unlock(p)
}

// LockHandled pins p against the default budget. See budget.Budget.LockHandled.
func LockHandled(p []byte, policy budget.Policy) bool {
	b := defaultOrDie()
	if b == nil {
		return false
	}
	return b.LockHandled(p, policy)
}

// UnlockHandled unpins p from the default budget. See
// budget.Budget.UnlockHandled.
func UnlockHandled(p []byte, policy budget.Policy) bool {
	b := defaultOrDie()
	if b == nil {
		return false
	}
	return b.UnlockHandled(p, policy)
}

// LockOrDie pins p against the default budget or terminates the process.
func LockOrDie(p []byte) {
	if b := defaultOrDie(); b != nil {
		b.LockOrDie(p)
	}
}

// UnlockOrDie unpins p from the default budget or terminates the process.
func UnlockOrDie(p []byte) {
	if b := defaultOrDie(); b != nil {
		b.UnlockOrDie(p)
	}
}

// MapFile maps the file at path. See mapfile.File.Init for how flags and
// size are applied.
func MapFile(path string, size int64, flags mapfile.Flag, opts ...mapfile.Option) (*mapfile.File, error) {
	return mapfile.Open(path, size, flags, opts...)
}

// MapFileOrDie is MapFile that terminates the process on failure.
func MapFileOrDie(path string, size int64, flags mapfile.Flag, opts ...mapfile.Option) *mapfile.File {
	return mapfile.OpenOrDie(path, size, flags, opts...)
}

func defaultOrDie() *budget.Budget {
	b, err := Default()
	if b == nil {
		defaultMu.Lock()
		l := defaultOpts.logger
		defaultMu.Unlock()
		logging.From(l).WithComponent("budget").Fatal("init", err)
	}
	return b
}
