package memlock

import "errors"

var (
	// ErrDefaultInitialized is returned by SetDefaultOptions once the default
	// budget exists.
	ErrDefaultInitialized = errors.New("memlock: default budget already initialized")
)
