package container

import (
	"fmt"

	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

// AnyVertexVector is the type-erased view of a VertexVector.
type AnyVertexVector interface {
	TypeID() value.TypeID
	Size() int
	NVals() int
	GetValue(i uint32) (value.Value, bool)
	SetValue(i uint32, v value.Value)
	IsElement(i uint32) bool
	Drop(i uint32) bool
	Resize(n int)
	Clear()
	Indices() []uint32
	Structure() *bitmap.Mask
	Entries(fn func(i uint32, v value.Value) bool)
	CloneAny() AnyVertexVector
	RestoreFrom(snapshot AnyVertexVector)
}

// AnyAdjacencyMatrix is the type-erased view of an AdjacencyMatrix.
type AnyAdjacencyMatrix interface {
	TypeID() value.TypeID
	Dim() int
	NVals() int
	GetValue(k sparse.Coord) (value.Value, bool)
	SetValue(k sparse.Coord, v value.Value)
	IsElement(k sparse.Coord) bool
	Drop(k sparse.Coord) bool
	Resize(n int)
	Clear()
	Incident(v uint32) map[sparse.Coord]value.Value
	DropIncident(v uint32) int
	OutDegree(v uint32) int
	InDegree(v uint32) int
	Entries(fn func(k sparse.Coord, v value.Value) bool)
	OutgoingMask() *bitmap.Mask
	IncomingMask() *bitmap.Mask
	IncidenceMask() *bitmap.Mask
	CloneAny() AnyAdjacencyMatrix
	RestoreFrom(snapshot AnyAdjacencyMatrix)
}

var (
	_ AnyVertexVector    = (*VertexVector[bool])(nil)
	_ AnyAdjacencyMatrix = (*AdjacencyMatrix[float64])(nil)
)

// NewVertexVectorOf creates an empty vertex vector of the type identified by
// id.
func NewVertexVectorOf(id value.TypeID, size int) (AnyVertexVector, error) {
	switch id {
	case value.Bool:
		return NewVertexVector[bool](size), nil
	case value.Int8:
		return NewVertexVector[int8](size), nil
	case value.Int16:
		return NewVertexVector[int16](size), nil
	case value.Int32:
		return NewVertexVector[int32](size), nil
	case value.Int64:
		return NewVertexVector[int64](size), nil
	case value.Uint8:
		return NewVertexVector[uint8](size), nil
	case value.Uint16:
		return NewVertexVector[uint16](size), nil
	case value.Uint32:
		return NewVertexVector[uint32](size), nil
	case value.Uint64:
		return NewVertexVector[uint64](size), nil
	case value.Int:
		return NewVertexVector[int](size), nil
	case value.Uint:
		return NewVertexVector[uint](size), nil
	case value.Float32:
		return NewVertexVector[float32](size), nil
	case value.Float64:
		return NewVertexVector[float64](size), nil
	}
	return nil, fmt.Errorf("unknown value type %d", id)
}

// NewAdjacencyMatrixOf creates an empty n×n adjacency matrix of the type
// identified by id.
func NewAdjacencyMatrixOf(id value.TypeID, n int) (AnyAdjacencyMatrix, error) {
	switch id {
	case value.Bool:
		return NewAdjacencyMatrix[bool](n), nil
	case value.Int8:
		return NewAdjacencyMatrix[int8](n), nil
	case value.Int16:
		return NewAdjacencyMatrix[int16](n), nil
	case value.Int32:
		return NewAdjacencyMatrix[int32](n), nil
	case value.Int64:
		return NewAdjacencyMatrix[int64](n), nil
	case value.Uint8:
		return NewAdjacencyMatrix[uint8](n), nil
	case value.Uint16:
		return NewAdjacencyMatrix[uint16](n), nil
	case value.Uint32:
		return NewAdjacencyMatrix[uint32](n), nil
	case value.Uint64:
		return NewAdjacencyMatrix[uint64](n), nil
	case value.Int:
		return NewAdjacencyMatrix[int](n), nil
	case value.Uint:
		return NewAdjacencyMatrix[uint](n), nil
	case value.Float32:
		return NewAdjacencyMatrix[float32](n), nil
	case value.Float64:
		return NewAdjacencyMatrix[float64](n), nil
	}
	return nil, fmt.Errorf("unknown value type %d", id)
}

// GetVectorAs reads element i of c coerced to To.
func GetVectorAs[To value.Type](c AnyVertexVector, i uint32) (To, bool) {
	if tv, ok := c.(*VertexVector[To]); ok {
		return tv.Get(i)
	}
	v, ok := c.GetValue(i)
	if !ok {
		var zero To
		return zero, false
	}
	return value.As[To](v), true
}

// GetMatrixAs reads element k of c coerced to To.
func GetMatrixAs[To value.Type](c AnyAdjacencyMatrix, k sparse.Coord) (To, bool) {
	if tm, ok := c.(*AdjacencyMatrix[To]); ok {
		return tm.Get(k.Row, k.Col)
	}
	v, ok := c.GetValue(k)
	if !ok {
		var zero To
		return zero, false
	}
	return value.As[To](v), true
}

// VectorAs returns the contents of c as a sparse vector over T. A vector of
// type T is returned without copying and must then be treated as read-only.
func VectorAs[T value.Type](c AnyVertexVector) *sparse.Vector[T] {
	if tv, ok := c.(*VertexVector[T]); ok {
		return tv.v
	}
	out := sparse.NewVector[T](c.Size())
	c.Entries(func(i uint32, v value.Value) bool {
		out.SetUnchecked(i, value.As[T](v))
		return true
	})
	return out
}

// MatrixAs returns the contents of c, or its transpose, as a sparse matrix
// over T. A matrix of type T is returned without copying, using the cached
// transpose when requested, and must then be treated as read-only.
func MatrixAs[T value.Type](c AnyAdjacencyMatrix, transpose bool) *sparse.Matrix[T] {
	if tm, ok := c.(*AdjacencyMatrix[T]); ok {
		if transpose {
			return tm.Transposed()
		}
		return tm.m
	}
	out := sparse.NewSquareMatrix[T](c.Dim())
	c.Entries(func(k sparse.Coord, v value.Value) bool {
		if transpose {
			k = sparse.Coord{Row: k.Col, Col: k.Row}
		}
		out.SetUnchecked(k, value.As[T](v))
		return true
	})
	return out
}
