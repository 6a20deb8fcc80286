package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/memlock/budget"
	"github.com/hupe1980/memlock/mapfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestByteSize(t *testing.T) {
	var s byteSize
	require.NoError(t, s.Set("4KiB"))
	assert.Equal(t, byteSize(4096), s)
	assert.Equal(t, "4.0 KiB", s.String())
	assert.Equal(t, "size", s.Type())

	require.NoError(t, s.Set("100"))
	assert.Equal(t, byteSize(100), s)

	assert.Error(t, s.Set("lots"))
}

func TestLimits(t *testing.T) {
	out, err := run(t, "limits", "--no-raise")
	require.NoError(t, err)
	assert.Contains(t, out, "page size:")
	assert.Contains(t, out, "budget:")
}

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.bin")

	out, err := run(t, "map", path, "--size", "8KiB")
	require.NoError(t, err)
	assert.Contains(t, out, "8.0 KiB mapped read-write")

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8192), fi.Size())

	out, err = run(t, "map", path, "--readonly", "--must-exist")
	require.NoError(t, err)
	assert.Contains(t, out, "mapped read-only")

	_, err = run(t, "map", path, "--size", "4KiB")
	assert.ErrorIs(t, err, mapfile.ShrinkDisallowed)

	_, err = run(t, "map", path, "--must-not-exist")
	assert.ErrorIs(t, err, mapfile.ForceExistenceViolation)

	_, err = run(t, "map", path, "--must-exist", "--must-not-exist")
	assert.Error(t, err)
}

func TestLock(t *testing.T) {
	out, err := run(t, "lock", "1KiB", "--limit", "64KiB")
	if errors.Is(err, budget.LockOpFailed) || errors.Is(err, budget.OverLimit) {
		t.Skipf("pinning not permitted here: %v", err)
	}
	require.NoError(t, err)
	assert.Contains(t, out, "locked: ")
	assert.Contains(t, out, "(1 pages)")
}

func TestLock_LargerThanLimit(t *testing.T) {
	_, err := run(t, "lock", "1MiB", "--limit", "64KiB")
	assert.ErrorIs(t, err, budget.OverLimit)
}

func TestInvalidLogFlags(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "limits")
	assert.Error(t, err)

	_, err = run(t, "--log-format", "xml", "limits")
	assert.Error(t, err)
}
