package budget

import "fmt"

// Code classifies a budget failure.
//
// Each Code is itself an error so callers can match with errors.Is.
type Code int

const (
	// GetLimitError reports that the OS ceiling or page size could not be read.
	GetLimitError Code = iota + 1
	// SetLimitError reports that raising the soft ceiling failed. It is not
	// fatal to construction.
	SetLimitError
	// MutexInitError reports that the domain mutex could not be created.
	// sync.Mutex cannot fail, so Budget never returns it.
	MutexInitError
	// MutexOpError reports a failed mutex operation. Never returned by Budget.
	MutexOpError
	// OverLimit reports that the request would exceed the limit.
	OverLimit
	// LockOpFailed reports that the pin syscall failed.
	LockOpFailed
	// UnlockOpFailed reports that the unpin syscall failed.
	UnlockOpFailed
	// UnderMinimum reports an unlock of more bytes than are locked.
	UnderMinimum
)

var codeNames = map[Code]string{
	GetLimitError:  "cannot read memlock limit",
	SetLimitError:  "cannot raise memlock limit",
	MutexInitError: "mutex init failed",
	MutexOpError:   "mutex operation failed",
	OverLimit:      "memlock limit exceeded",
	LockOpFailed:   "lock syscall failed",
	UnlockOpFailed: "unlock syscall failed",
	UnderMinimum:   "unlock exceeds locked bytes",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

func (c Code) Error() string { return "budget: " + c.String() }

// Error is returned by Budget operations.
//
// It matches its Code with errors.Is; the OS error, if any, is available via
// errors.Unwrap.
type Error struct {
	Op   string
	Code Code
	Size int // requested bytes before rounding
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("budget: %s: %s", e.Op, e.Code)
	if e.Size > 0 {
		msg = fmt.Sprintf("budget: %s %d bytes: %s", e.Op, e.Size, e.Code)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is e's Code.
func (e *Error) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.Code
}
