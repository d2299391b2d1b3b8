package store

import (
	"iter"

	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/internal/container"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

// AddNewEdgeType adds a public edge type with weights of type T.
func AddNewEdgeType[T value.Type](g *Graph) (uint32, error) {
	return g.AddEdgeType(value.TypeOf[T](), false)
}

// AddNewPrivateEdgeType adds a private edge type with weights of type T.
func AddNewPrivateEdgeType[T value.Type](g *Graph) (uint32, error) {
	return g.AddEdgeType(value.TypeOf[T](), true)
}

// AddEdgeType adds an edge type with weights of the type identified by id.
// The new matrix is sized to the current vertex capacity; a reused slot
// gets a fresh matrix.
func (g *Graph) AddEdgeType(id value.TypeID, private bool) (uint32, error) {
	ix := g.edges.types
	next, err := ix.NextIndex()
	if err != nil {
		return 0, err
	}
	m, err := container.NewAdjacencyMatrixOf(id, g.VertexCapacity())
	if err != nil {
		return 0, err
	}
	g.journal.SlotChange(ix, next.Index)
	g.journal.AdjacencyMatrixInstall(next.Index)
	a, err := claim(ix, private)
	if err != nil {
		return 0, err
	}
	g.edges.matrices = installSlot(g.edges.matrices, a.Index, m)
	return a.Index, nil
}

// DeleteEdgeType frees a public edge type slot. Deleting an unused slot is a
// no-op.
func (g *Graph) DeleteEdgeType(et uint32) error {
	ix := g.edges.types
	if !ix.IsValidIndex(et) {
		return nil
	}
	if err := ix.TryPublicIndexValidity(et); err != nil {
		return err
	}
	g.DeleteEdgeTypeUnchecked(et)
	return nil
}

// DeletePrivateEdgeType frees a private edge type slot.
func (g *Graph) DeletePrivateEdgeType(et uint32) error {
	ix := g.edges.types
	if !ix.IsValidIndex(et) {
		return nil
	}
	if err := ix.TryPrivateIndexValidity(et); err != nil {
		return err
	}
	g.DeleteEdgeTypeUnchecked(et)
	return nil
}

// DeleteEdgeTypeUnchecked frees an edge type slot of either visibility.
func (g *Graph) DeleteEdgeTypeUnchecked(et uint32) {
	if !g.edges.types.IsValidIndex(et) {
		return
	}
	g.journal.SlotChange(g.edges.types, et)
	g.edges.types.FreeValidIndex(et)
}

// EdgeTypeValueType returns the weight type of an edge type.
func (g *Graph) EdgeTypeValueType(et uint32) (value.TypeID, error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return 0, err
	}
	return m.TypeID(), nil
}

// EdgeTypes yields the public edge types in ascending order.
func (g *Graph) EdgeTypes() iter.Seq[uint32] { return g.edges.types.PublicIndices() }

// PrivateEdgeTypes yields the private edge types in ascending order.
func (g *Graph) PrivateEdgeTypes() iter.Seq[uint32] { return g.edges.types.PrivateIndices() }

// IsValidEdgeType reports whether et is a valid edge type.
func (g *Graph) IsValidEdgeType(et uint32) bool { return g.edges.types.IsValidIndex(et) }

func (g *Graph) adjacencyMatrix(et uint32) (container.AnyAdjacencyMatrix, error) {
	if err := g.edges.types.TryIndexValidity(et); err != nil {
		return nil, err
	}
	return g.edges.matrices[et], nil
}

// AdjacencyMatrix returns the matrix of an edge type for reading.
func (g *Graph) AdjacencyMatrix(et uint32) (container.AnyAdjacencyMatrix, error) {
	return g.adjacencyMatrix(et)
}

func (g *Graph) checkEdge(et, tail, head uint32) error {
	if err := g.edges.types.TryIndexValidity(et); err != nil {
		return err
	}
	if err := g.vertices.elements.TryIndexValidity(tail); err != nil {
		return err
	}
	return g.vertices.elements.TryIndexValidity(head)
}

// SetEdge stores w as the weight of the edge tail → head of type et,
// coerced to the edge type's weight type.
func SetEdge[T value.Type](g *Graph, et, tail, head uint32, w T) error {
	return g.SetEdgeValue(et, tail, head, value.Of(w))
}

// SetEdgeValue is SetEdge for a dynamically typed weight.
func (g *Graph) SetEdgeValue(et, tail, head uint32, w value.Value) error {
	if err := g.checkEdge(et, tail, head); err != nil {
		return err
	}
	g.SetEdgeValueUnchecked(et, tail, head, w)
	return nil
}

// SetEdgeValueUnchecked is SetEdgeValue without validation.
func (g *Graph) SetEdgeValueUnchecked(et, tail, head uint32, w value.Value) {
	k := sparse.Coord{Row: tail, Col: head}
	g.journal.EdgeValueChange(et, k)
	g.edges.matrices[et].SetValue(k, w)
}

// GetEdgeWeight returns the weight of tail → head coerced to T. The bool is
// false if there is no such edge.
func GetEdgeWeight[T value.Type](g *Graph, et, tail, head uint32) (T, bool, error) {
	if err := g.checkEdge(et, tail, head); err != nil {
		var zero T
		return zero, false, err
	}
	w, ok := GetEdgeWeightUnchecked[T](g, et, tail, head)
	return w, ok, nil
}

// GetEdgeWeightUnchecked is GetEdgeWeight without validation.
func GetEdgeWeightUnchecked[T value.Type](g *Graph, et, tail, head uint32) (T, bool) {
	return container.GetMatrixAs[T](g.edges.matrices[et], sparse.Coord{Row: tail, Col: head})
}

// GetEdgeValue returns the weight of tail → head.
func (g *Graph) GetEdgeValue(et, tail, head uint32) (value.Value, bool, error) {
	if err := g.checkEdge(et, tail, head); err != nil {
		return value.Value{}, false, err
	}
	v, ok := g.GetEdgeValueUnchecked(et, tail, head)
	return v, ok, nil
}

// GetEdgeValueUnchecked is GetEdgeValue without validation.
func (g *Graph) GetEdgeValueUnchecked(et, tail, head uint32) (value.Value, bool) {
	return g.edges.matrices[et].GetValue(sparse.Coord{Row: tail, Col: head})
}

// IsEdge reports whether the edge tail → head of type et exists.
func (g *Graph) IsEdge(et, tail, head uint32) (bool, error) {
	if err := g.checkEdge(et, tail, head); err != nil {
		return false, err
	}
	return g.edges.matrices[et].IsElement(sparse.Coord{Row: tail, Col: head}), nil
}

// DeleteEdgeWeight removes the edge tail → head of type et.
func (g *Graph) DeleteEdgeWeight(et, tail, head uint32) error {
	if err := g.checkEdge(et, tail, head); err != nil {
		return err
	}
	g.DeleteEdgeWeightUnchecked(et, tail, head)
	return nil
}

// DeleteEdgeWeightUnchecked is DeleteEdgeWeight without validation.
func (g *Graph) DeleteEdgeWeightUnchecked(et, tail, head uint32) {
	k := sparse.Coord{Row: tail, Col: head}
	m := g.edges.matrices[et]
	if !m.IsElement(k) {
		return
	}
	g.journal.EdgeValueChange(et, k)
	m.Drop(k)
}

// EdgeCount returns the number of edges of type et.
func (g *Graph) EdgeCount(et uint32) (int, error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return 0, err
	}
	return m.NVals(), nil
}

// Edges yields every edge of type et with its weight in (tail, head)
// order.
func (g *Graph) Edges(et uint32) (iter.Seq2[sparse.Coord, value.Value], error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return nil, err
	}
	return func(yield func(sparse.Coord, value.Value) bool) {
		m.Entries(yield)
	}, nil
}

// Transposed returns the cached transpose of edge type et as a matrix over
// T. It must not be modified.
func Transposed[T value.Type](g *Graph, et uint32) (*sparse.Matrix[T], error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return nil, err
	}
	return container.MatrixAs[T](m, true), nil
}

// OutgoingMask returns the vertices with at least one outgoing edge of type
// et.
func (g *Graph) OutgoingMask(et uint32) (*bitmap.Mask, error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return nil, err
	}
	return m.OutgoingMask(), nil
}

// IncomingMask returns the vertices with at least one incoming edge of type
// et.
func (g *Graph) IncomingMask(et uint32) (*bitmap.Mask, error) {
	m, err := g.adjacencyMatrix(et)
	if err != nil {
		return nil, err
	}
	return m.IncomingMask(), nil
}
