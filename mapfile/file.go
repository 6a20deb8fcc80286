package mapfile

import (
	"context"
	"errors"
	"io"
	"math"
	"os"

	"github.com/hupe1980/memlock/internal/fs"
	"github.com/hupe1980/memlock/internal/logging"
	"github.com/hupe1980/memlock/internal/mmap"
	"golang.org/x/time/rate"
)

// Flag selects how Init treats the file at the given path.
type Flag uint8

const (
	// ReadOnly maps without write permission. The file must exist.
	ReadOnly Flag = 1 << iota
	// AllowShrink permits truncating an existing file that is longer than
	// the requested size.
	AllowShrink
	// ForceExist requires the file's existence to equal ForceExistYes.
	ForceExist
	// ForceExistYes is the existence ForceExist requires.
	ForceExistYes
)

// File is a file mapped into memory.
type File struct {
	fsys    fs.FileSystem
	mapper  mmap.Mapper
	logger  *logging.Logger
	mode    os.FileMode
	limiter *rate.Limiter // nil if unlimited

	path     string
	data     []byte
	size     int64
	file     fs.File
	mapping  mmap.Handle // Windows file-mapping object, NoHandle elsewhere
	readonly bool
}

// New returns a null File configured by opts.
func New(optFns ...Option) *File {
	o := options{
		fs:     fs.Default,
		mapper: mmap.Default,
		mode:   DefaultMode,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return &File{
		fsys:    o.fs,
		mapper:  o.mapper,
		logger:  logging.From(o.logger).WithComponent("mapfile"),
		mode:    o.mode,
		limiter: o.limiter,
	}
}

// Open maps the file at path according to flags. See File.Init.
func Open(path string, size int64, flags Flag, optFns ...Option) (*File, error) {
	f := New(optFns...)
	if err := f.Init(path, size, flags); err != nil {
		return nil, err
	}
	return f, nil
}

// Init opens or creates the file at path, resizes it to size, and maps it.
//
// An existing file is opened read-only when ReadOnly is set, in which case
// size is ignored. Otherwise a size of 0 keeps the current length, a smaller
// size needs AllowShrink, and a larger size grows the file. A missing file is
// created with size bytes; size 0 or ReadOnly are rejected. With ForceExist,
// existence must equal ForceExistYes before anything is opened or created.
//
// On failure f stays null. A file created before a later step failed is left
// on disk.
func (f *File) Init(path string, size int64, flags Flag) error {
	if !f.null() {
		return f.fail("init", OpenFailed, path, ErrInUse)
	}
	if size < 0 {
		return f.fail("init", SetSizeFailed, path, fs.ErrNegativeSize)
	}

	exists := fs.Exists(f.fsys, path)
	readonly := exists && flags&ReadOnly != 0

	if flags&ForceExist != 0 {
		if want := flags&ForceExistYes != 0; exists != want {
			cause := ErrShouldExist
			if exists {
				cause = ErrShouldNotExist
			}
			return f.fail("init", ForceExistenceViolation, path, cause)
		}
	}

	var (
		file   fs.File
		err    error
		resize = true
	)

	if exists {
		file, err = fs.Open(f.fsys, path, readonly)
		if err != nil {
			return f.fail("init", OpenFailed, path, err)
		}

		current, err := fs.Size(file)
		if err != nil {
			file.Close()
			return f.fail("init", GetSizeFailed, path, err)
		}

		switch {
		case readonly || size == 0:
			size = current
			resize = false
		case current > size && flags&AllowShrink == 0:
			file.Close()
			return f.fail("init", ShrinkDisallowed, path, nil)
		case current == size:
			resize = false
		}
	} else {
		if flags&ReadOnly != 0 {
			return f.fail("init", ReadonlyOnMissingFile, path, nil)
		}
		if size == 0 {
			return f.fail("init", SizeRequiredForNewFile, path, nil)
		}

		file, err = fs.Create(f.fsys, path, f.mode)
		if err != nil {
			return f.fail("init", CreateFailed, path, err)
		}
	}

	if resize {
		if err := fs.SetSize(file, size); err != nil {
			file.Close()
			return f.fail("init", SetSizeFailed, path, err)
		}
	}

	f.path, f.file, f.size = path, file, size

	if err := f.Map(readonly); err != nil {
		file.Close()
		f.reset()
		return err
	}
	return nil
}

// Attach hands an open file of the given length to a null f, which takes
// ownership of it. Map can then be called.
func (f *File) Attach(file fs.File, size int64) error {
	if !f.null() {
		return f.fail("attach", OpenFailed, file.Name(), ErrInUse)
	}
	f.path, f.file, f.size = file.Name(), file, size
	return nil
}

// Map maps the attached file. It never changes the attached file.
func (f *File) Map(readonly bool) error {
	if f.file == nil {
		return f.fail("map", MapFailed, f.path, ErrNoFile)
	}
	if f.data != nil {
		return f.fail("map", MapFailed, f.path, ErrAlreadyMapped)
	}
	if f.size > math.MaxInt {
		return f.fail("map", MapFailed, f.path, mmap.ErrInvalidSize)
	}

	data, h, err := f.mapper.Map(f.file.Fd(), int(f.size), !readonly)
	f.logger.LogMap(f.path, f.size, readonly, err)
	if err != nil {
		return &Error{Op: "map", Code: MapFailed, Path: f.path, Err: err}
	}

	f.data, f.mapping, f.readonly = data, h, readonly
	return nil
}

// Unmap releases the mapping but keeps the file open.
func (f *File) Unmap() error {
	if f.data == nil {
		return f.fail("unmap", UnmapFailed, f.path, ErrNotMapped)
	}

	err := f.mapper.Unmap(f.data, f.mapping)
	f.logger.LogUnmap(f.path, err)
	if err != nil {
		return &Error{Op: "unmap", Code: UnmapFailed, Path: f.path, Err: err}
	}

	f.data, f.mapping, f.readonly = nil, mmap.NoHandle, false
	return nil
}

// Sync flushes modified pages to the file.
func (f *File) Sync() error {
	return f.SyncContext(context.Background())
}

// SyncContext is Sync that first waits for the sync limiter, if one is
// configured, until ctx is done.
func (f *File) SyncContext(ctx context.Context) error {
	if f.data == nil {
		return f.fail("sync", SyncFailed, f.path, ErrNotMapped)
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return f.fail("sync", SyncFailed, f.path, err)
		}
	}

	err := f.mapper.Sync(f.data)
	f.logger.LogSync(f.path, err)
	if err != nil {
		return &Error{Op: "sync", Code: SyncFailed, Path: f.path, Err: err}
	}
	return nil
}

// Close unmaps f, closes its file, and resets it to null. Every step runs
// even if an earlier one fails; the failures are joined. Closing a null File
// is a no-op.
func (f *File) Close() error {
	if f.null() {
		return nil
	}

	var errs []error
	if f.data != nil {
		if err := f.mapper.Unmap(f.data, f.mapping); err != nil {
			errs = append(errs, &Error{Op: "close", Code: UnmapFailed, Path: f.path, Err: err})
		}
	}
	if f.file != nil {
		if err := f.file.Close(); err != nil {
			errs = append(errs, &Error{Op: "close", Code: CloseFailed, Path: f.path, Err: err})
		}
	}

	path := f.path
	f.reset()

	err := errors.Join(errs...)
	f.logger.LogClose(path, err)
	return err
}

// Bytes returns the mapping, or nil when unmapped.
// Warning: The slice is valid only until Unmap or Close is called.
func (f *File) Bytes() []byte { return f.data }

// Size returns the length of the file and the mapping.
func (f *File) Size() int64 { return f.size }

// ReadOnly reports whether the mapping was established without write access.
func (f *File) ReadOnly() bool { return f.readonly }

// Mapped reports whether f holds a mapping.
func (f *File) Mapped() bool { return f.data != nil }

// Name returns the path of the owned file, or "" for a null File.
func (f *File) Name() string { return f.path }

// Advise provides hints to the kernel about how the memory will be accessed.
func (f *File) Advise(pattern mmap.AccessPattern) error {
	if f.data == nil {
		return ErrNotMapped
	}
	return f.mapper.Advise(f.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (n int, err error) {
	if f.data == nil {
		return 0, ErrNotMapped
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n = copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt. It never grows the file.
func (f *File) WriteAt(p []byte, off int64) (n int, err error) {
	if f.data == nil {
		return 0, ErrNotMapped
	}
	if f.readonly {
		return 0, ErrReadOnly
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(f.data)) {
		return 0, io.ErrShortWrite
	}
	n = copy(f.data[off:], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (f *File) null() bool {
	return f.data == nil && f.file == nil
}

func (f *File) reset() {
	f.path = ""
	f.data = nil
	f.size = 0
	f.file = nil
	f.mapping = mmap.NoHandle
	f.readonly = false
}

func (f *File) fail(op string, code Code, path string, cause error) error {
	err := &Error{Op: op, Code: code, Path: path, Err: cause}
	f.logger.Debug("operation rejected", "op", op, "path", path, "error", err)
	return err
}
