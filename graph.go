package propgraph

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/propgraph/internal/resource"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/internal/txn"
)

const (
	// DefaultVertexCapacity is the initial number of vertex slots.
	DefaultVertexCapacity = 64
	// DefaultTypeCapacity is the initial number of vertex or edge type slots.
	DefaultTypeCapacity = 8
)

// Graph is a typed, transactional property graph.
//
// All writes happen inside a transaction. A transaction holds the graph's
// write lock until it is closed, so there is at most one writer; readers
// use View and run concurrently with each other.
type Graph struct {
	mu      sync.RWMutex
	g       *store.Graph
	metrics MetricsCollector
	logger  *Logger
	txSeq   atomic.Uint64
}

// New creates an empty graph.
func New(optFns ...Option) *Graph {
	opts := applyOptions(optFns)

	ctx := sparse.NewContext(
		sparse.WithWorkers(resource.NewController(resource.Config{MaxWorkers: opts.maxWorkers})),
		sparse.WithLogger(opts.logger.Logger),
	)

	return &Graph{
		g: store.New(store.Config{
			VertexCapacity:     opts.vertexCapacity,
			VertexTypeCapacity: opts.vertexTypeCapacity,
			EdgeTypeCapacity:   opts.edgeTypeCapacity,
			Context:            ctx,
		}),
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}
}

// View runs fn with read access under the graph's read lock. The Reader
// must not be used after fn returns.
func (g *Graph) View(fn func(r *Reader) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Reader{g: g.g}
	defer r.release()
	return translateError(fn(r))
}

// Begin starts a transaction, blocking until no other transaction is open.
// The caller must Close it.
func (g *Graph) Begin(ctx context.Context) *Tx {
	inner := txn.Begin(g.g, &g.mu)
	id := g.txSeq.Add(1)
	return &Tx{
		Reader:  Reader{tx: inner},
		inner:   inner,
		ctx:     ctx,
		metrics: g.metrics,
		logger:  g.logger.WithTx(id),
	}
}

// Update runs fn in a transaction. The transaction is committed if fn
// returns nil and reverted if fn returns an error or panics; a panic is
// re-raised after the revert.
func (g *Graph) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := g.Begin(ctx)
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Close()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		return errors.Join(translateError(err), tx.Close())
	}
	if err := tx.Commit(); err != nil {
		return errors.Join(err, tx.Close())
	}
	return tx.Close()
}
