package container

import (
	"sync"

	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

// WithCachedAttributes memoises attributes derived from an adjacency matrix:
// its transpose and the vertex sets with outgoing, incoming or any edges.
// Every structural mutation of the matrix must call invalidate.
//
// Readers holding the graph's read lock may populate the cache
// concurrently, so it carries its own mutex.
type WithCachedAttributes[T value.Type] struct {
	mu  sync.Mutex
	t   *sparse.Matrix[T]
	out *bitmap.Mask
	in  *bitmap.Mask
	all *bitmap.Mask
}

func (w *WithCachedAttributes[T]) invalidate() {
	w.mu.Lock()
	w.t, w.out, w.in, w.all = nil, nil, nil, nil
	w.mu.Unlock()
}

func (w *WithCachedAttributes[T]) transposed(m *sparse.Matrix[T]) *sparse.Matrix[T] {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.t == nil {
		w.t = m.Transpose()
	}
	return w.t
}

func (w *WithCachedAttributes[T]) outgoing(m *sparse.Matrix[T]) *bitmap.Mask {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.out == nil {
		w.out = m.RowStructure()
	}
	return w.out
}

func (w *WithCachedAttributes[T]) incoming(m *sparse.Matrix[T]) *bitmap.Mask {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.in == nil {
		w.in = m.ColumnStructure()
	}
	return w.in
}

func (w *WithCachedAttributes[T]) incident(m *sparse.Matrix[T]) *bitmap.Mask {
	out := w.outgoing(m)
	in := w.incoming(m)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.all == nil {
		w.all = out.Clone()
		w.all.Or(in)
	}
	return w.all
}
