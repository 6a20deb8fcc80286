package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Sizes(t *testing.T) {
	rng := NewRNG(4711)

	sizes := rng.Sizes(64, 10)
	assert.Len(t, sizes, 64)
	for _, s := range sizes {
		assert.GreaterOrEqual(t, s, 1)
		assert.LessOrEqual(t, s, 10)
	}

	rng.Reset()
	assert.Equal(t, sizes, rng.Sizes(64, 10))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFakePinner(t *testing.T) {
	p := NewFakePinner(4096, 8192)

	soft, hard, err := p.Limits()
	require.NoError(t, err)
	assert.Equal(t, uint64(8192), soft)
	assert.Equal(t, uint64(8192), hard)

	require.NoError(t, p.Lock(make([]byte, 1)))
	require.NoError(t, p.Lock(make([]byte, 4097)))
	assert.Equal(t, uint64(3*4096), p.Pinned())
	require.NoError(t, p.Unlock(make([]byte, 4097)))
	assert.Equal(t, uint64(4096), p.Pinned())
	assert.Equal(t, uint64(3*4096), p.MaxPinned())

	boom := errors.New("boom")
	p.SetLockErr(boom)
	assert.ErrorIs(t, p.Lock(make([]byte, 1)), boom)
	assert.Equal(t, uint64(4096), p.Pinned())

	p.SetLimits(1, 2)
	require.NoError(t, p.RaiseSoftLimit())
	soft, _, _ = p.Limits()
	assert.Equal(t, uint64(2), soft)

	locks, unlocks, raises := p.Calls()
	assert.Equal(t, 3, locks)
	assert.Equal(t, 1, unlocks)
	assert.Equal(t, 1, raises)
}

func TestSizedFile(t *testing.T) {
	path := SizedFile(t, t.TempDir(), "f.bin", 1234)
	assert.Equal(t, int64(1234), FileSize(t, path))
}
