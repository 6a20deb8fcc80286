// Package testutil provides testing utilities for memlock.
//
// This package is intended for use in tests only. It provides deterministic
// stand-ins for the operating system and helpers for preparing files.
//
// # Random Sizes
//
//	rng := testutil.NewRNG(seed)
//	n := rng.Intn(3 * pageSize)
//
// # Fake Pinner
//
//	p := testutil.NewFakePinner(4096, 64*1024)
//	b, _ := budget.New(budget.WithPinner(p))
//	p.SetLockErr(syscall.EPERM) // next Lock calls fail
//
// # Files
//
//	path := testutil.SizedFile(t, t.TempDir(), "data.bin", 4096)
package testutil
