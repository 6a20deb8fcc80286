// Package memlock keeps secrets in memory the OS will not page out and maps
// files into memory with a predictable create/open/resize policy.
//
// # Pinning memory
//
// Pinned regions are charged against a budget bounded by the process's
// locked-memory ceiling (RLIMIT_MEMLOCK on Unix, the minimum working set on
// Windows). Sizes are rounded up to whole pages:
//
//	key := make([]byte, 32)
//	if err := memlock.Lock(key); err != nil {
//	    return err // errors.Is(err, budget.OverLimit) when the ceiling is reached
//	}
//	defer memlock.Unlock(key)
//
// The package-level functions share one process-wide budget created on first
// use. Configure it before then:
//
//	memlock.SetDefaultOptions(
//	    memlock.WithLogger(memlock.NewJSONLogger(slog.LevelDebug).Logger),
//	    memlock.WithBudgetOptions(budget.WithLimit(1<<20)),
//	)
//
// Independent budgets are built with budget.New.
//
// # Mapping files
//
//	f, err := memlock.MapFile("./vault.bin", 4096, 0)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	copy(f.Bytes(), secret)
//	f.Sync()
//
// The flags select read-only mappings, shrinking, and existence requirements;
// see mapfile.File.Init for the full policy.
//
// # Failure handling
//
// Every operation has a strict form that returns an error and an OrDie form
// that logs the failure and terminates the process. Budget.LockHandled and
// Budget.UnlockHandled sit in between: a budget.Policy decides which failures
// are reported as false instead of terminating.
package memlock
