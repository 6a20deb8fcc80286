// Package budget arbitrates pinned memory against the OS ceiling.
//
// A [Budget] is one arbitration domain: it knows the page size, the maximum
// number of bytes the process may pin, and how many bytes callers have pinned
// through it. Any number of goroutines may share one Budget.
//
//	b, err := budget.New()
//	if err != nil && !errors.Is(err, budget.SetLimitError) {
//	    return err
//	}
//
//	if err := b.Lock(buf); err != nil {
//	    // budget.OverLimit, budget.LockOpFailed
//	}
//	defer b.Unlock(buf)
//
// # Accounting
//
// Requests are rounded up to whole pages and admitted through a weighted
// semaphore sized to the limit, so the pinned total never exceeds the limit
// even when the pin syscalls of two admitted callers run at the same time.
// Lock fails fast with OverLimit; LockWait queues until room is released or
// its context is done.
//
// # Failure Classes
//
// Every operation returns a *[Error] carrying a [Code]. The Handled variants
// take a [Policy] that makes OverLimit and syscall failures graceful; anything
// not tolerated, and always UnderMinimum, terminates the process. The OrDie
// variants terminate on any failure.
//
// # Process-wide Domain
//
// This package holds no global state. The root memlock package offers a lazily
// constructed process-wide Budget for callers that want one.
package budget
