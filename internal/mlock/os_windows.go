//go:build windows

package mlock

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

// reservePages is the working set overhead Windows keeps for itself; a
// process can lock roughly its minimum working set minus this much.
const reservePages = 8

var errNoWorkingSet = errors.New("mlock: minimum working set size unavailable")

func osPageSize() int { return windows.Getpagesize() }

func osLimits() (uint64, uint64, error) {
	var minSize, maxSize uintptr
	var flags uint32
	windows.GetProcessWorkingSetSizeEx(windows.CurrentProcess(), &minSize, &maxSize, &flags)
	if minSize == 0 {
		return 0, 0, errNoWorkingSet
	}

	limit := uint64(minSize)
	reserve := uint64(reservePages * osPageSize())
	if limit > reserve {
		limit -= reserve
	}
	return limit, limit, nil
}

// The working set heuristic has no soft/hard split to raise.
func osRaiseSoftLimit() error { return nil }

func osLock(b []byte) error {
	return windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

func osUnlock(b []byte) error {
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}
