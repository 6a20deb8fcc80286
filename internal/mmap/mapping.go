package mmap

// Mapper maps open files into the address space.
type Mapper interface {
	// Map maps the first size bytes of the file behind fd. The view is
	// shared with the file, writable only when writable is set.
	Map(fd uintptr, size int, writable bool) ([]byte, Handle, error)
	// Unmap releases a view returned by Map together with its Handle.
	Unmap(data []byte, h Handle) error
	// Sync flushes dirty pages of the view back to the file.
	Sync(data []byte) error
	// Advise passes an access hint for the view to the kernel.
	Advise(data []byte, pattern AccessPattern) error
}

// Default is the Mapper for the running platform.
var Default Mapper = osMapper{}

type osMapper struct{}

func (osMapper) Map(fd uintptr, size int, writable bool) ([]byte, Handle, error) {
	if size <= 0 {
		return nil, NoHandle, ErrInvalidSize
	}
	return osMap(fd, size, writable)
}

func (osMapper) Unmap(data []byte, h Handle) error {
	if len(data) == 0 {
		return ErrNotMapped
	}
	return osUnmap(data, h)
}

func (osMapper) Sync(data []byte) error {
	if len(data) == 0 {
		return ErrNotMapped
	}
	return osSync(data)
}

func (osMapper) Advise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}
	return osAdvise(data, pattern)
}
