package testutil

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Sizes returns num pseudo-random sizes in [1, maxSize].
func (r *RNG) Sizes(num, maxSize int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	sizes := make([]int, num)
	for i := range sizes {
		sizes[i] = 1 + r.rand.Intn(maxSize)
	}
	return sizes
}

// SizedFile creates dir/name with exactly size zero bytes and returns its path.
func SizedFile(tb testing.TB, dir, name string, size int64) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		tb.Fatalf("truncate %s: %v", path, err)
	}
	return path
}

// FileSize returns the on-disk length of path.
func FileSize(tb testing.TB, path string) int64 {
	tb.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		tb.Fatalf("stat %s: %v", path, err)
	}
	return fi.Size()
}
