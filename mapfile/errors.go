package mapfile

import (
	"errors"
	"fmt"
)

// Code classifies a mapped-file failure.
//
// Each Code is itself an error so callers can match with errors.Is.
type Code int

const (
	// ForceExistenceViolation reports that existence did not match ForceExistYes.
	ForceExistenceViolation Code = iota + 1
	// OpenFailed reports that an existing file could not be opened.
	OpenFailed
	// GetSizeFailed reports that the file length could not be read.
	GetSizeFailed
	// ShrinkDisallowed reports a longer existing file without AllowShrink.
	ShrinkDisallowed
	// ReadonlyOnMissingFile reports a read-only request for a missing file.
	ReadonlyOnMissingFile
	// SizeRequiredForNewFile reports a create request with size 0.
	SizeRequiredForNewFile
	// CreateFailed reports that the file could not be created.
	CreateFailed
	// SetSizeFailed reports that the file could not be resized.
	SetSizeFailed
	// MapFailed reports that the mapping syscall failed.
	MapFailed
	// UnmapFailed reports that the unmapping syscall failed.
	UnmapFailed
	// SyncFailed reports that dirty pages could not be flushed.
	SyncFailed
	// CloseFailed reports that the file handle could not be closed.
	CloseFailed
)

var codeNames = map[Code]string{
	ForceExistenceViolation: "existence requirement violated",
	OpenFailed:              "open failed",
	GetSizeFailed:           "cannot read file size",
	ShrinkDisallowed:        "file is larger than requested and shrinking is not allowed",
	ReadonlyOnMissingFile:   "cannot create a file read-only",
	SizeRequiredForNewFile:  "size is required to create a file",
	CreateFailed:            "create failed",
	SetSizeFailed:           "cannot set file size",
	MapFailed:               "map failed",
	UnmapFailed:             "unmap failed",
	SyncFailed:              "sync failed",
	CloseFailed:             "close failed",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

func (c Code) Error() string { return "mapfile: " + c.String() }

var (
	// ErrShouldExist is the cause of a ForceExistenceViolation for a missing file.
	ErrShouldExist = errors.New("mapfile: file should exist but does not")
	// ErrShouldNotExist is the cause of a ForceExistenceViolation for an existing file.
	ErrShouldNotExist = errors.New("mapfile: file should not exist but does")
	// ErrInUse is returned when a File that already owns resources is reused.
	ErrInUse = errors.New("mapfile: file is in use")
	// ErrNoFile is returned by Map when no file is attached.
	ErrNoFile = errors.New("mapfile: no file attached")
	// ErrAlreadyMapped is returned by Map on a mapped File.
	ErrAlreadyMapped = errors.New("mapfile: already mapped")
	// ErrNotMapped is returned when an operation needs a mapping.
	ErrNotMapped = errors.New("mapfile: not mapped")
	// ErrReadOnly is returned by WriteAt on a read-only mapping.
	ErrReadOnly = errors.New("mapfile: mapping is read-only")
	// ErrInvalidOffset is returned when the offset is invalid (e.g. negative).
	ErrInvalidOffset = errors.New("mapfile: invalid offset")
)

// Error is returned by File operations.
//
// It matches its Code with errors.Is; the underlying cause is available via
// errors.Unwrap.
type Error struct {
	Op   string
	Code Code
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("mapfile: %s %s: %s", e.Op, e.Path, e.Code)
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
