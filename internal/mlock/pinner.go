package mlock

import "math"

// Unlimited is reported by Limits when the OS imposes no ceiling.
const Unlimited uint64 = math.MaxUint64

// Pinner pins memory into RAM.
type Pinner interface {
	// PageSize returns the virtual memory page size in bytes.
	PageSize() int
	// Limits returns the soft and hard ceilings on pinned bytes.
	Limits() (soft, hard uint64, err error)
	// RaiseSoftLimit raises the soft ceiling to the hard ceiling.
	RaiseSoftLimit() error
	// Lock pins b.
	Lock(b []byte) error
	// Unlock unpins b.
	Unlock(b []byte) error
}

// Default is the Pinner for the running platform.
var Default Pinner = osPinner{}

type osPinner struct{}

func (osPinner) PageSize() int { return osPageSize() }

func (osPinner) Limits() (uint64, uint64, error) { return osLimits() }

func (osPinner) RaiseSoftLimit() error { return osRaiseSoftLimit() }

func (osPinner) Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return osLock(b)
}

func (osPinner) Unlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return osUnlock(b)
}
