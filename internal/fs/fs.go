package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// File represents an open file.
type File interface {
	io.ReadWriteCloser
	io.ReaderAt
	Sync() error
	Stat() (os.FileInfo, error)
	Truncate(size int64) error
	Fd() uintptr
	Name() string
}

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Stat(name string) (os.FileInfo, error)
	Remove(name string) error
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

func (LocalFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (LocalFS) Remove(name string) error              { return os.Remove(name) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}

// ErrNegativeSize is returned by SetSize for a negative length.
var ErrNegativeSize = errors.New("fs: negative size")

// Open opens an existing file, read-write unless readonly is set.
func Open(fsys FileSystem, name string, readonly bool) (File, error) {
	flag := os.O_RDWR
	if readonly {
		flag = os.O_RDONLY
	}
	return fsys.OpenFile(name, flag, 0)
}

// Create creates a new read-write file. It fails if the file exists.
func Create(fsys FileSystem, name string, perm os.FileMode) (File, error) {
	return fsys.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
}

// Exists reports whether something lives at name.
func Exists(fsys FileSystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// Size returns the current length of f in bytes.
func Size(f File) (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if fi.Size() < 0 {
		return 0, fmt.Errorf("fs: %s reports negative size %d", f.Name(), fi.Size())
	}
	return fi.Size(), nil
}

// SetSize truncates or extends f to exactly size bytes.
func SetSize(f File, size int64) error {
	if size < 0 {
		return ErrNegativeSize
	}
	return f.Truncate(size)
}
