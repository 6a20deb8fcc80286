// Package mlock provides the platform memory-pinning capability.
//
// [Pinner] reports the page size and the ceiling on pinned memory, and pins
// or unpins regions. The build selects one implementation:
//
//   - Unix: mlock(2)/munlock(2), ceiling from getrlimit(RLIMIT_MEMLOCK)
//   - Windows: VirtualLock/VirtualUnlock, ceiling from the minimum working
//     set size minus a small reserve
//
// The package does no accounting. Sharing a ceiling between callers is the
// job of package budget.
package mlock
