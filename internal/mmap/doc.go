// Package mmap provides the platform file-mapping capability.
//
// # Overview
//
// [Mapper] is the small interface the mapped-file manager is written against.
// The decision logic above it never branches on the operating system; the
// build selects one implementation:
//
//   - Unix (Linux, macOS, BSD): mmap(2), msync(2) and madvise(2)
//   - Windows: CreateFileMapping/MapViewOfFile, FlushViewOfFile. The
//     intermediate file-mapping object is returned as a [Handle] and closed
//     by Unmap.
//
// # Usage
//
//	data, h, err := mmap.Default.Map(f.Fd(), size, true)
//	if err != nil { ... }
//	defer mmap.Default.Unmap(data, h)
//
//	copy(data, payload)
//	err = mmap.Default.Sync(data)
//
// # Anonymous Mappings
//
// MapAnon() creates read-write anonymous mappings. They are page aligned and
// live outside the Go heap, which makes them the natural target for memory
// pinning.
package mmap
