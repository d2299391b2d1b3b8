package container

import (
	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

// AdjacencyMatrix holds the edges of one edge type: element (tail, head) is
// the weight of the directed edge tail → head. The matrix is square with the
// vertex-element capacity as dimension.
type AdjacencyMatrix[T value.Type] struct {
	m     *sparse.Matrix[T]
	cache WithCachedAttributes[T]
}

// NewAdjacencyMatrix creates an empty n×n adjacency matrix.
func NewAdjacencyMatrix[T value.Type](n int) *AdjacencyMatrix[T] {
	return &AdjacencyMatrix[T]{m: sparse.NewSquareMatrix[T](n)}
}

// Matrix exposes the underlying sparse matrix for reading. Writers must go
// through Mutate so cached attributes are invalidated.
func (c *AdjacencyMatrix[T]) Matrix() *sparse.Matrix[T] { return c.m }

// Mutate runs fn against the underlying matrix and invalidates the cache.
func (c *AdjacencyMatrix[T]) Mutate(fn func(m *sparse.Matrix[T]) error) error {
	defer c.cache.invalidate()
	return fn(c.m)
}

// TypeID returns the weight type.
func (c *AdjacencyMatrix[T]) TypeID() value.TypeID { return value.TypeOf[T]() }

// Dim returns the matrix dimension.
func (c *AdjacencyMatrix[T]) Dim() int { return c.m.NRows() }

// NVals returns the number of edges.
func (c *AdjacencyMatrix[T]) NVals() int { return c.m.NVals() }

// Get returns the weight of tail → head.
func (c *AdjacencyMatrix[T]) Get(tail, head uint32) (T, bool) {
	return c.m.Get(sparse.Coord{Row: tail, Col: head})
}

// Set stores the weight of tail → head. It panics if either is not below
// Dim.
func (c *AdjacencyMatrix[T]) Set(tail, head uint32, w T) {
	if err := c.m.Set(sparse.Coord{Row: tail, Col: head}, w); err != nil {
		panic(err)
	}
	c.cache.invalidate()
}

// GetValue returns the weight at k as a value.Value.
func (c *AdjacencyMatrix[T]) GetValue(k sparse.Coord) (value.Value, bool) {
	x, ok := c.m.Get(k)
	if !ok {
		return value.Value{}, false
	}
	return value.Of(x), true
}

// SetValue stores v at k, coerced to T. It panics if k is outside the
// matrix.
func (c *AdjacencyMatrix[T]) SetValue(k sparse.Coord, v value.Value) {
	c.Set(k.Row, k.Col, value.As[T](v))
}

// IsElement reports whether an edge is stored at k.
func (c *AdjacencyMatrix[T]) IsElement(k sparse.Coord) bool { return c.m.IsElement(k) }

// Drop removes the edge at k and reports whether one was present.
func (c *AdjacencyMatrix[T]) Drop(k sparse.Coord) bool {
	ok := c.m.Drop(k)
	if ok {
		c.cache.invalidate()
	}
	return ok
}

// Resize changes the dimension, dropping edges outside n×n.
func (c *AdjacencyMatrix[T]) Resize(n int) {
	c.m.Resize(n, n)
	c.cache.invalidate()
}

// Clear removes every edge.
func (c *AdjacencyMatrix[T]) Clear() {
	c.m.Clear()
	c.cache.invalidate()
}

// Incident returns every edge with v as tail or head.
func (c *AdjacencyMatrix[T]) Incident(v uint32) map[sparse.Coord]value.Value {
	out := make(map[sparse.Coord]value.Value)
	c.m.ScanRow(v, func(col uint32, x T) bool {
		out[sparse.Coord{Row: v, Col: col}] = value.Of(x)
		return true
	})
	c.Transposed().ScanRow(v, func(row uint32, x T) bool {
		out[sparse.Coord{Row: row, Col: v}] = value.Of(x)
		return true
	})
	return out
}

// DropIncident removes every edge with v as tail or head and returns how
// many were removed.
func (c *AdjacencyMatrix[T]) DropIncident(v uint32) int {
	n := len(c.m.DropRow(v)) + len(c.m.DropColumn(v))
	if n > 0 {
		c.cache.invalidate()
	}
	return n
}

// OutDegree returns the number of edges with tail v.
func (c *AdjacencyMatrix[T]) OutDegree(v uint32) int {
	n := 0
	c.m.ScanRow(v, func(uint32, T) bool {
		n++
		return true
	})
	return n
}

// InDegree returns the number of edges with head v.
func (c *AdjacencyMatrix[T]) InDegree(v uint32) int {
	n := 0
	c.Transposed().ScanRow(v, func(uint32, T) bool {
		n++
		return true
	})
	return n
}

// Entries calls fn for every edge in (tail, head) order until fn returns
// false.
func (c *AdjacencyMatrix[T]) Entries(fn func(k sparse.Coord, v value.Value) bool) {
	c.m.Scan(func(k sparse.Coord, x T) bool { return fn(k, value.Of(x)) })
}

// Transposed returns the cached transpose. It must not be modified.
func (c *AdjacencyMatrix[T]) Transposed() *sparse.Matrix[T] { return c.cache.transposed(c.m) }

// OutgoingMask returns the vertices with at least one outgoing edge.
func (c *AdjacencyMatrix[T]) OutgoingMask() *bitmap.Mask { return c.cache.outgoing(c.m).Clone() }

// IncomingMask returns the vertices with at least one incoming edge.
func (c *AdjacencyMatrix[T]) IncomingMask() *bitmap.Mask { return c.cache.incoming(c.m).Clone() }

// IncidenceMask returns the vertices with at least one edge of this type.
func (c *AdjacencyMatrix[T]) IncidenceMask() *bitmap.Mask { return c.cache.incident(c.m).Clone() }

// CloneAny returns an independent copy in O(1).
func (c *AdjacencyMatrix[T]) CloneAny() AnyAdjacencyMatrix {
	return &AdjacencyMatrix[T]{m: c.m.Clone()}
}

// RestoreFrom replaces the contents with those of snapshot, which must have
// been produced by CloneAny on a matrix of the same type.
func (c *AdjacencyMatrix[T]) RestoreFrom(snapshot AnyAdjacencyMatrix) {
	c.m.ReplaceWith(snapshot.(*AdjacencyMatrix[T]).m)
	c.cache.invalidate()
}
