package mmap

// MapAnon allocates size bytes of zeroed, page-aligned, read-write memory
// outside the Go heap. The returned function releases it.
func MapAnon(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, ErrInvalidSize
	}
	data, unmap, err := osMapAnon(size)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return unmap(data) }, nil
}
