package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})
	assert.Equal(t, int64(2), c.MaxWorkers())

	require.NoError(t, c.AcquireWorker(t.Context()))
	require.NoError(t, c.AcquireWorker(t.Context()))

	assert.False(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	c.ReleaseWorker()
}

func TestController_DefaultWorkers(t *testing.T) {
	c := NewController(Config{})
	assert.Positive(t, c.MaxWorkers())
}

func TestController_Run(t *testing.T) {
	c := NewController(Config{MaxWorkers: 3})

	var inFlight, peak atomic.Int64
	results := make([]int, 50)
	err := c.Run(t.Context(), len(results), func(_ context.Context, i int) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		results[i] = i * i
		inFlight.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int64(3))
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestController_RunError(t *testing.T) {
	c := NewController(Config{MaxWorkers: 4})
	boom := errors.New("boom")

	err := c.Run(t.Context(), 10, func(_ context.Context, i int) error {
		if i == 5 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestController_NilRunsSequentially(t *testing.T) {
	var c *Controller
	assert.Equal(t, int64(1), c.MaxWorkers())
	assert.True(t, c.TryAcquireWorker())
	require.NoError(t, c.AcquireWorker(t.Context()))
	c.ReleaseWorker()

	var order []int
	err := c.Run(t.Context(), 3, func(_ context.Context, i int) error {
		order = append(order, i)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err = c.Run(ctx, 3, func(context.Context, int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
