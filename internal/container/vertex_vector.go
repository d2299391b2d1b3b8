package container

import (
	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

// VertexVector holds the values of one vertex type, indexed by vertex
// element. Its size tracks the vertex-element capacity.
type VertexVector[T value.Type] struct {
	v *sparse.Vector[T]
}

// NewVertexVector creates an empty vector for size vertex elements.
func NewVertexVector[T value.Type](size int) *VertexVector[T] {
	return &VertexVector[T]{v: sparse.NewVector[T](size)}
}

// Vector exposes the underlying sparse vector. Callers that modify it are
// responsible for their own undo logging.
func (c *VertexVector[T]) Vector() *sparse.Vector[T] { return c.v }

// TypeID returns the value type of the vector.
func (c *VertexVector[T]) TypeID() value.TypeID { return value.TypeOf[T]() }

// Size returns the vector length.
func (c *VertexVector[T]) Size() int { return c.v.Size() }

// NVals returns the number of stored values.
func (c *VertexVector[T]) NVals() int { return c.v.NVals() }

// Get returns the value at i.
func (c *VertexVector[T]) Get(i uint32) (T, bool) { return c.v.Get(i) }

// Set stores x at i. It panics if i is not below Size.
func (c *VertexVector[T]) Set(i uint32, x T) {
	if err := c.v.Set(i, x); err != nil {
		panic(err)
	}
}

// GetValue returns the value at i as a value.Value.
func (c *VertexVector[T]) GetValue(i uint32) (value.Value, bool) {
	x, ok := c.v.Get(i)
	if !ok {
		return value.Value{}, false
	}
	return value.Of(x), true
}

// SetValue stores v at i, coerced to T. It panics if i is not below Size.
func (c *VertexVector[T]) SetValue(i uint32, v value.Value) { c.Set(i, value.As[T](v)) }

// IsElement reports whether a value is stored at i.
func (c *VertexVector[T]) IsElement(i uint32) bool { return c.v.IsElement(i) }

// Drop removes the value at i and reports whether one was present.
func (c *VertexVector[T]) Drop(i uint32) bool { return c.v.Drop(i) }

// Resize changes the length, dropping values at or beyond n.
func (c *VertexVector[T]) Resize(n int) { c.v.Resize(n) }

// Clear removes every value.
func (c *VertexVector[T]) Clear() { c.v.Clear() }

// Indices returns the indices holding a value, ascending.
func (c *VertexVector[T]) Indices() []uint32 { return c.v.Indices() }

// Structure returns the indices holding a value as a mask.
func (c *VertexVector[T]) Structure() *bitmap.Mask { return c.v.Structure() }

// Entries calls fn for every stored value in index order until fn returns
// false.
func (c *VertexVector[T]) Entries(fn func(i uint32, v value.Value) bool) {
	c.v.Scan(func(i uint32, x T) bool { return fn(i, value.Of(x)) })
}

// CloneAny returns an independent copy in O(1).
func (c *VertexVector[T]) CloneAny() AnyVertexVector {
	return &VertexVector[T]{v: c.v.Clone()}
}

// RestoreFrom replaces the contents with those of snapshot, which must have
// been produced by CloneAny on a vector of the same type.
func (c *VertexVector[T]) RestoreFrom(snapshot AnyVertexVector) {
	c.v.ReplaceWith(snapshot.(*VertexVector[T]).v)
}
