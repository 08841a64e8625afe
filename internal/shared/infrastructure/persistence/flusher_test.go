package persistence_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/daybook-dev/daybook/internal/shared/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlusher_DebouncesMarks(t *testing.T) {
	var flushes atomic.Int32
	f := persistence.NewFlusher(30*time.Millisecond, func(ctx context.Context) error {
		flushes.Add(1)
		return nil
	}, nil)
	defer f.Close(context.Background())

	// Rapid marks inside the quiet period collapse into one flush.
	f.Mark()
	f.Mark()
	f.Mark()

	assert.Eventually(t, func() bool {
		return flushes.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), flushes.Load())
}

func TestFlusher_FlushForcesWrite(t *testing.T) {
	var flushes atomic.Int32
	f := persistence.NewFlusher(time.Hour, func(ctx context.Context) error {
		flushes.Add(1)
		return nil
	}, nil)
	defer f.Close(context.Background())

	f.Mark()
	require.NoError(t, f.Flush(context.Background()))
	assert.Equal(t, int32(1), flushes.Load())

	// Clean flusher is a no-op.
	require.NoError(t, f.Flush(context.Background()))
	assert.Equal(t, int32(1), flushes.Load())
}

func TestFlusher_FailedFlushKeepsDirty(t *testing.T) {
	fail := true
	var flushes atomic.Int32
	f := persistence.NewFlusher(time.Hour, func(ctx context.Context) error {
		flushes.Add(1)
		if fail {
			return errors.New("disk full")
		}
		return nil
	}, nil)
	defer f.Close(context.Background())

	f.Mark()
	err := f.Flush(context.Background())
	require.Error(t, err)

	// State is still dirty, so the next flush retries.
	fail = false
	require.NoError(t, f.Flush(context.Background()))
	assert.Equal(t, int32(2), flushes.Load())
}

func TestFlusher_CloseFlushesPending(t *testing.T) {
	var flushes atomic.Int32
	f := persistence.NewFlusher(time.Hour, func(ctx context.Context) error {
		flushes.Add(1)
		return nil
	}, nil)

	f.Mark()
	require.NoError(t, f.Close(context.Background()))
	assert.Equal(t, int32(1), flushes.Load())

	// Marks after close are ignored.
	f.Mark()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), flushes.Load())
}
