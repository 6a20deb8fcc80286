// Package fs provides the file collaborator used by the mapped-file manager.
//
// The package defines two key interfaces:
//
//   - [File]: an open file that can report and change its size and expose
//     its OS descriptor for mapping
//   - [FileSystem]: opens files and reports whether a path exists
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection and call recording
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]) through the
// helpers that mirror the collaborator contract:
//
//	f, err := fs.Open(fs.Default, path, readonly)
//	f, err := fs.Create(fs.Default, path, 0o600)
//	n, err := fs.Size(f)
//	err = fs.SetSize(f, n)
//
// Tests can inject [FaultyFS] to simulate failures or to assert that no
// mutating call happened:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("data.bin", fs.Fault{FailOnTruncate: true})
//	// inject ffs into component under test
//	ffs.Count(fs.OpCreate) // 0
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Filesystem operations are typically fast and non-interruptible at the
// syscall level.
package fs
