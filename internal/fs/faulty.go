package fs

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Op names a file collaborator call recorded by FaultyFS.
type Op string

const (
	OpOpen     Op = "open"
	OpCreate   Op = "create"
	OpExists   Op = "exists"
	OpRemove   Op = "remove"
	OpSize     Op = "size"
	OpTruncate Op = "truncate"
	OpSync     Op = "sync"
	OpClose    Op = "close"
)

// Fault defines specific failure behavior.
type Fault struct {
	FailOnOpen     bool // also applies to create
	FailOnStat     bool // file-level Stat, i.e. Size
	FailOnTruncate bool
	FailOnSync     bool
	FailOnClose    bool
	Err            error
}

// Call is one recorded collaborator call.
type Call struct {
	Op   Op
	Name string
}

// FaultyFS is a FileSystem wrapper that can inject errors and records
// every call it forwards.
type FaultyFS struct {
	FS      FileSystem
	mu      sync.Mutex
	rules   map[string]Fault // Filename pattern -> Fault
	Default Fault            // Fallback

	// Err is used when a matching Fault carries no error of its own.
	Err   error
	calls []Call
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
		Err:   fmt.Errorf("injected fault error"),
	}
}

// AddRule adds a fault injection rule for a specific file pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// Calls returns a copy of the recorded calls in order.
func (f *FaultyFS) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Count returns how many times op was recorded.
func (f *FaultyFS) Count(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls.
func (f *FaultyFS) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *FaultyFS) record(op Op, name string) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: op, Name: name})
	f.mu.Unlock()
}

func (f *FaultyFS) faultFor(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()
	fault := f.Default
	// Match pattern (last winning match)
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) {
			fault = rule
		}
	}
	if fault.Err == nil {
		fault.Err = f.Err
	}
	return fault
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	op := OpOpen
	if flag&os.O_CREATE != 0 {
		op = OpCreate
	}
	f.record(op, name)

	fault := f.faultFor(name)
	if fault.FailOnOpen {
		return nil, fault.Err
	}

	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f, fault: fault}, nil
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	f.record(OpExists, name)
	return f.FS.Stat(name)
}

func (f *FaultyFS) Remove(name string) error {
	f.record(OpRemove, name)
	return f.FS.Remove(name)
}

type faultyFile struct {
	File
	fs    *FaultyFS
	fault Fault
}

func (ff *faultyFile) Stat() (os.FileInfo, error) {
	ff.fs.record(OpSize, ff.Name())
	if ff.fault.FailOnStat {
		return nil, ff.fault.Err
	}
	return ff.File.Stat()
}

func (ff *faultyFile) Truncate(size int64) error {
	ff.fs.record(OpTruncate, ff.Name())
	if ff.fault.FailOnTruncate {
		return ff.fault.Err
	}
	return ff.File.Truncate(size)
}

func (ff *faultyFile) Sync() error {
	ff.fs.record(OpSync, ff.Name())
	if ff.fault.FailOnSync {
		return ff.fault.Err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	ff.fs.record(OpClose, ff.Name())
	if ff.fault.FailOnClose {
		ff.File.Close()
		return ff.fault.Err
	}
	return ff.File.Close()
}
