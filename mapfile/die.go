package mapfile

// OpenOrDie is Open that terminates the process on failure.
func OpenOrDie(path string, size int64, flags Flag, optFns ...Option) *File {
	f := New(optFns...)
	f.InitOrDie(path, size, flags)
	return f
}

// InitOrDie is Init that terminates the process on failure.
func (f *File) InitOrDie(path string, size int64, flags Flag) {
	if err := f.Init(path, size, flags); err != nil {
		f.logger.Fatal("init", err)
	}
}

// MapOrDie is Map that terminates the process on failure.
func (f *File) MapOrDie(readonly bool) {
	if err := f.Map(readonly); err != nil {
		f.logger.Fatal("map", err)
	}
}

// UnmapOrDie is Unmap that terminates the process on failure.
func (f *File) UnmapOrDie() {
	if err := f.Unmap(); err != nil {
		f.logger.Fatal("unmap", err)
	}
}

// SyncOrDie is Sync that terminates the process on failure.
func (f *File) SyncOrDie() {
	if err := f.Sync(); err != nil {
		f.logger.Fatal("sync", err)
	}
}

// CloseOrDie is Close that terminates the process if any teardown step
// failed. f is null afterwards either way.
func (f *File) CloseOrDie() {
	if err := f.Close(); err != nil {
		f.logger.Fatal("close", err)
	}
}
