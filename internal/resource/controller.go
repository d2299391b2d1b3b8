package resource

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of goroutines used by read-only
	// fan-out operations across all graphs sharing the controller.
	// If 0, defaults to GOMAXPROCS.
	MaxWorkers int64
}

// Controller bounds the concurrency of read-only fan-out work.
type Controller struct {
	cfg     Config
	workers *semaphore.Weighted
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}
	return &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}
}

// MaxWorkers returns the configured worker limit (1 for a nil controller).
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 1
	}
	return c.cfg.MaxWorkers
}

// AcquireWorker reserves a worker slot, blocking until one is free.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workers.Acquire(ctx, 1)
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workers.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workers.Release(1)
}

// Run calls fn for every i in [0, n), at most MaxWorkers at a time.
// The first error cancels the context passed to the remaining calls and is
// returned. fn must only read shared state.
func (c *Controller) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if c == nil || c.cfg.MaxWorkers == 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(c.cfg.MaxWorkers))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := c.AcquireWorker(gctx); err != nil {
				return err
			}
			defer c.ReleaseWorker()
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
