// Package mapfile maps files into memory with create/open/resize policy.
//
// # Overview
//
// [Open] (or [File.Init]) looks at what is on disk and at the caller's
// [Flag] set, then opens or creates the file, brings it to the requested
// length, and maps it:
//
//	f, err := mapfile.Open("state.bin", 1<<20, mapfile.AllowShrink)
//	if err != nil { ... }
//	defer f.Close()
//
//	copy(f.Bytes(), header)
//	err = f.Sync()
//
// Requesting size 0 for an existing file maps it at its current length.
// Creating a file requires a non-zero size, and a read-only request never
// creates anything.
//
// # Flags
//
//   - ReadOnly: map without write permission (the file must exist)
//   - AllowShrink: permit truncating an existing, longer file
//   - ForceExist: require existence to match ForceExistYes, checked before
//     the filesystem is touched
//
// # Lifecycle
//
// A File is either null (nothing owned), holding an open file, or holding an
// open file and a mapping. Unmap drops only the mapping. Close drops
// everything, always leaves the File null, and may be called again.
//
// # Flush Throttling
//
// [WithSyncLimiter] attaches a golang.org/x/time/rate limiter that Sync and
// [File.SyncContext] wait on before flushing.
//
// # Thread Safety
//
// A File is not safe for concurrent use.
package mapfile
