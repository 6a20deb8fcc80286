package mmap

import "errors"

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

// Handle is the platform file-mapping object that must outlive a view.
// Only Windows produces one; elsewhere it is always NoHandle.
type Handle uintptr

// NoHandle is the null Handle.
const NoHandle Handle = 0

// Valid reports whether h refers to a live mapping object.
func (h Handle) Valid() bool { return h != NoHandle }

var (
	// ErrInvalidSize is returned when the mapping length is zero or negative.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrNotMapped is returned when an operation needs a mapped region.
	ErrNotMapped = errors.New("mmap: region is not mapped")
)
