package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_ReadWriteSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmap_test")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, f.Truncate(4096))

	data, h, err := Default.Map(f.Fd(), 4096, true)
	require.NoError(t, err)
	assert.Len(t, data, 4096)

	copy(data, "Hello, Mmap!")
	require.NoError(t, Default.Sync(data))
	require.NoError(t, Default.Advise(data, AccessSequential))
	require.NoError(t, Default.Unmap(data, h))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Mmap!", string(content[:12]))
}

func TestMapper_ReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmap_test_ro")
	require.NoError(t, os.WriteFile(path, []byte("read only"), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	data, h, err := Default.Map(f.Fd(), 9, false)
	require.NoError(t, err)
	assert.Equal(t, "read only", string(data))
	require.NoError(t, Default.Unmap(data, h))
}

func TestMapper_InvalidArgs(t *testing.T) {
	_, _, err := Default.Map(0, 0, false)
	assert.ErrorIs(t, err, ErrInvalidSize)

	assert.ErrorIs(t, Default.Unmap(nil, NoHandle), ErrNotMapped)
	assert.ErrorIs(t, Default.Sync(nil), ErrNotMapped)
	assert.NoError(t, Default.Advise(nil, AccessRandom))
	assert.False(t, NoHandle.Valid())
}

func TestMapAnon(t *testing.T) {
	data, free, err := MapAnon(8192)
	require.NoError(t, err)
	assert.Len(t, data, 8192)
	assert.Equal(t, byte(0), data[8191])

	data[0] = 42
	require.NoError(t, free())

	_, _, err = MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
