package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_ResolvesWithValue(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(2)

	task := Submit(ctx, pool, func(context.Context) (int, error) {
		return 21 * 2, nil
	})

	val, err := task.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestSubmit_ResolvesWithError(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(2)
	boom := errors.New("boom")

	task := Submit(ctx, pool, func(context.Context) (string, error) {
		return "", boom
	})

	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestSubmit_PanicResolvesAsError(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(2)

	task := Submit(ctx, pool, func(context.Context) (int, error) {
		panic("worker exploded")
	})

	_, err := task.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker exploded")
}

func TestWait_AbandonsOnContextCancel(t *testing.T) {
	pool := NewPool(1)
	release := make(chan struct{})

	task := Submit(context.Background(), pool, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// The work itself was not cancelled and still resolves.
	close(release)
	val, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, val)
}

func TestPool_BoundsConcurrency(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(1)

	firstRunning := make(chan struct{})
	release := make(chan struct{})
	first := Submit(ctx, pool, func(context.Context) (int, error) {
		close(firstRunning)
		<-release
		return 1, nil
	})

	<-firstRunning
	second := Submit(ctx, pool, func(context.Context) (int, error) {
		return 2, nil
	})

	// The second task cannot start while the only slot is held.
	select {
	case <-second.Done():
		t.Fatal("second task ran while the pool was full")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	_, err := first.Wait(ctx)
	require.NoError(t, err)
	val, err := second.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, val)
}

func TestResolved_IsImmediatelyDone(t *testing.T) {
	task := Resolved(7, nil)
	select {
	case <-task.Done():
	default:
		t.Fatal("resolved task not done")
	}

	val, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, val)
}

func TestNewPool_ClampsSize(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(0)

	task := Submit(ctx, pool, func(context.Context) (bool, error) {
		return true, nil
	})
	val, err := task.Wait(ctx)
	require.NoError(t, err)
	assert.True(t, val)
}
