package budget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockWait_WaitsForRoom(t *testing.T) {
	b, p := newBudget(t, 2*page)

	first := make([]byte, 2*page)
	require.NoError(t, b.Lock(first))

	done := make(chan error, 1)
	second := make([]byte, page)
	go func() {
		done <- b.LockWait(context.Background(), second)
	}()

	select {
	case err := <-done:
		t.Fatalf("LockWait returned before room was available: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, b.Unlock(first))
	require.NoError(t, <-done)
	assert.Equal(t, uint64(page), b.Locked())
	assert.Equal(t, uint64(page), p.Pinned())

	require.NoError(t, b.Unlock(second))
	assert.Zero(t, b.Stats().Reserved)
}

func TestLockWait_ContextDone(t *testing.T) {
	b, _ := newBudget(t, page)
	require.NoError(t, b.Lock(make([]byte, page)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := b.LockWait(ctx, make([]byte, 1))
	assert.ErrorIs(t, err, OverLimit)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, uint64(page), b.Locked())
}

func TestLockWait_LargerThanBudget(t *testing.T) {
	b, p := newBudget(t, page)

	err := b.LockWait(context.Background(), make([]byte, page+1))
	assert.ErrorIs(t, err, OverLimit)

	locks, _, _ := p.Calls()
	assert.Zero(t, locks)
	require.NoError(t, b.LockWait(context.Background(), nil))
}
