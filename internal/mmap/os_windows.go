//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMap(fd uintptr, size int, writable bool) ([]byte, Handle, error) {
	prot := uint32(windows.PAGE_READONLY)
	access := uint32(windows.FILE_MAP_READ)
	if writable {
		prot = windows.PAGE_READWRITE
		access = windows.FILE_MAP_WRITE
	}

	// The mapping object is kept until Unmap so that it is released
	// together with the view it backs.
	h, err := windows.CreateFileMapping(windows.Handle(fd), nil, prot, 0, 0, nil)
	if err != nil {
		return nil, NoHandle, err
	}

	addr, err := windows.MapViewOfFile(h, access, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, NoHandle, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return data, Handle(h), nil
}

func osUnmap(data []byte, h Handle) error {
	addr := uintptr(unsafe.Pointer(&data[0]))
	if err := windows.UnmapViewOfFile(addr); err != nil {
		return err
	}
	if h.Valid() {
		return windows.CloseHandle(windows.Handle(h))
	}
	return nil
}

func osSync(data []byte) error {
	addr := uintptr(unsafe.Pointer(&data[0]))
	return windows.FlushViewOfFile(addr, uintptr(len(data)))
}

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	// VirtualAlloc with MEM_COMMIT uses demand paging, like an anonymous
	// mmap on Unix, and avoids reserving paging file space up front.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return data, func(b []byte) error {
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	// Windows has no madvise equivalent worth the setup cost here.
	_ = data
	_ = pattern
	return nil
}
