package goroutine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestManager_RunsEveryTaskWithinLimit(t *testing.T) {
	// Arrange
	g := NewManager(2)
	var running, peak, done atomic.Int64
	var mu sync.Mutex

	// Act
	for range 20 {
		require.NoError(t, g.Go(context.Background(), func(context.Context) error {
			n := running.Inc()
			mu.Lock()
			if n > peak.Load() {
				peak.Store(n)
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			running.Dec()
			done.Inc()
			return nil
		}))
	}

	// Assert
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(20), done.Load())
	assert.LessOrEqual(t, peak.Load(), int64(2))
	assert.Equal(t, 2, g.Limit())
}

func TestManager_CollectsErrorsAndPanics(t *testing.T) {
	g := NewManager(4)
	boom := errors.New("boom")

	require.NoError(t, g.Go(context.Background(), func(context.Context) error { return boom }))
	require.NoError(t, g.Go(context.Background(), func(context.Context) error { panic("kaboom") }))

	err := g.Wait()
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "panic: kaboom")
}

func TestManager_ClosedAndCanceled(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		g := NewManager(1)
		require.NoError(t, g.Wait())

		assert.ErrorIs(t, g.Go(context.Background(), func(context.Context) error { return nil }), ErrClosed)
	})

	t.Run("canceled while waiting for a slot", func(t *testing.T) {
		g := NewManager(1)
		release := make(chan struct{})
		require.NoError(t, g.Go(context.Background(), func(context.Context) error {
			<-release
			return nil
		}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := g.Go(ctx, func(context.Context) error { return nil })

		close(release)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoError(t, g.Wait())
	})
}

func TestNewManager_DefaultLimit(t *testing.T) {
	assert.Positive(t, NewManager(0).Limit())
}
