//go:build unix

package mlock

import (
	"math"

	"golang.org/x/sys/unix"
)

func osPageSize() int { return unix.Getpagesize() }

func osLimits() (uint64, uint64, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_MEMLOCK, &rl); err != nil {
		return 0, 0, err
	}
	return clampLimit(uint64(rl.Cur)), clampLimit(uint64(rl.Max)), nil
}

// clampLimit folds every platform's spelling of RLIM_INFINITY into Unlimited.
func clampLimit(v uint64) uint64 {
	if v >= math.MaxInt64 {
		return Unlimited
	}
	return v
}

func osRaiseSoftLimit() error {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_MEMLOCK, &rl); err != nil {
		return err
	}
	if rl.Cur == rl.Max {
		return nil
	}
	rl.Cur = rl.Max
	return unix.Setrlimit(unix.RLIMIT_MEMLOCK, &rl)
}

func osLock(b []byte) error   { return unix.Mlock(b) }
func osUnlock(b []byte) error { return unix.Munlock(b) }
