package store

import (
	"iter"

	"github.com/hupe1980/propgraph/internal/container"
	"github.com/hupe1980/propgraph/value"
)

// AddNewPublicVertexType adds a public vertex type with values of type T.
func AddNewPublicVertexType[T value.Type](g *Graph) (uint32, error) {
	return g.AddVertexType(value.TypeOf[T](), false)
}

// AddNewPrivateVertexType adds a private vertex type with values of type T.
func AddNewPrivateVertexType[T value.Type](g *Graph) (uint32, error) {
	return g.AddVertexType(value.TypeOf[T](), true)
}

// AddVertexType adds a vertex type with values of the type identified by
// id. The new vector is sized to the current vertex capacity; a reused slot
// gets a fresh vector.
func (g *Graph) AddVertexType(id value.TypeID, private bool) (uint32, error) {
	ix := g.vertices.types
	next, err := ix.NextIndex()
	if err != nil {
		return 0, err
	}
	vec, err := container.NewVertexVectorOf(id, g.VertexCapacity())
	if err != nil {
		return 0, err
	}
	g.journal.SlotChange(ix, next.Index)
	g.journal.VertexVectorInstall(next.Index)
	a, err := claim(ix, private)
	if err != nil {
		return 0, err
	}
	g.vertices.vectors = installSlot(g.vertices.vectors, a.Index, vec)
	return a.Index, nil
}

// DeleteVertexType frees a public vertex type slot. Deleting an unused slot
// is a no-op.
func (g *Graph) DeleteVertexType(typ uint32) error {
	ix := g.vertices.types
	if !ix.IsValidIndex(typ) {
		return nil
	}
	if err := ix.TryPublicIndexValidity(typ); err != nil {
		return err
	}
	g.DeleteVertexTypeUnchecked(typ)
	return nil
}

// DeletePrivateVertexType frees a private vertex type slot.
func (g *Graph) DeletePrivateVertexType(typ uint32) error {
	ix := g.vertices.types
	if !ix.IsValidIndex(typ) {
		return nil
	}
	if err := ix.TryPrivateIndexValidity(typ); err != nil {
		return err
	}
	g.DeleteVertexTypeUnchecked(typ)
	return nil
}

// DeleteVertexTypeUnchecked frees a vertex type slot of either visibility.
func (g *Graph) DeleteVertexTypeUnchecked(typ uint32) {
	if !g.vertices.types.IsValidIndex(typ) {
		return
	}
	g.journal.SlotChange(g.vertices.types, typ)
	g.vertices.types.FreeValidIndex(typ)
}

// VertexTypeValueType returns the value type of a vertex type.
func (g *Graph) VertexTypeValueType(typ uint32) (value.TypeID, error) {
	vec, err := g.vertexVector(typ)
	if err != nil {
		return 0, err
	}
	return vec.TypeID(), nil
}

// VertexTypes yields the public vertex types in ascending order.
func (g *Graph) VertexTypes() iter.Seq[uint32] { return g.vertices.types.PublicIndices() }

// PrivateVertexTypes yields the private vertex types in ascending order.
func (g *Graph) PrivateVertexTypes() iter.Seq[uint32] { return g.vertices.types.PrivateIndices() }

// IsValidVertexType reports whether typ is a valid vertex type.
func (g *Graph) IsValidVertexType(typ uint32) bool { return g.vertices.types.IsValidIndex(typ) }

func (g *Graph) vertexVector(typ uint32) (container.AnyVertexVector, error) {
	if err := g.vertices.types.TryIndexValidity(typ); err != nil {
		return nil, err
	}
	return g.vertices.vectors[typ], nil
}

// VertexVector returns the vector of a vertex type for reading.
func (g *Graph) VertexVector(typ uint32) (container.AnyVertexVector, error) {
	return g.vertexVector(typ)
}

// NewVertexIndex claims a vertex element without setting any value. If the
// claim grows the capacity every container is resized first.
func (g *Graph) NewVertexIndex() (uint32, error) {
	ix := g.vertices.elements
	next, err := ix.NextIndex()
	if err != nil {
		return 0, err
	}
	g.journal.SlotChange(ix, next.Index)
	a, err := ix.NewPublicIndex()
	if err != nil {
		return 0, err
	}
	if a.HasNewCapacity() {
		g.resizeContainers(a.NewCapacity)
	}
	return a.Index, nil
}

// AddVertex claims a vertex element and stores v as its value of vertex
// type typ.
func AddVertex[T value.Type](g *Graph, typ uint32, v T) (uint32, error) {
	return g.AddVertexValue(typ, value.Of(v))
}

// AddVertexValue is AddVertex for a dynamically typed value.
func (g *Graph) AddVertexValue(typ uint32, v value.Value) (uint32, error) {
	if err := g.vertices.types.TryIndexValidity(typ); err != nil {
		return 0, err
	}
	idx, err := g.NewVertexIndex()
	if err != nil {
		return 0, err
	}
	g.SetVertexValueUnchecked(typ, idx, v)
	return idx, nil
}

// AddVertexValueUnchecked is AddVertexValue without validating typ.
func (g *Graph) AddVertexValueUnchecked(typ uint32, v value.Value) (uint32, error) {
	idx, err := g.NewVertexIndex()
	if err != nil {
		return 0, err
	}
	g.SetVertexValueUnchecked(typ, idx, v)
	return idx, nil
}

func (g *Graph) checkVertex(typ, idx uint32) error {
	if err := g.vertices.types.TryIndexValidity(typ); err != nil {
		return err
	}
	return g.vertices.elements.TryIndexValidity(idx)
}

// SetVertex stores v as the value of vertex type typ at vertex idx,
// coerced to the vertex type's value type.
func SetVertex[T value.Type](g *Graph, typ, idx uint32, v T) error {
	return g.SetVertexValue(typ, idx, value.Of(v))
}

// SetVertexValue is SetVertex for a dynamically typed value.
func (g *Graph) SetVertexValue(typ, idx uint32, v value.Value) error {
	if err := g.checkVertex(typ, idx); err != nil {
		return err
	}
	g.SetVertexValueUnchecked(typ, idx, v)
	return nil
}

// SetVertexValueUnchecked is SetVertexValue without validation.
func (g *Graph) SetVertexValueUnchecked(typ, idx uint32, v value.Value) {
	g.journal.VertexValueChange(typ, idx)
	g.vertices.vectors[typ].SetValue(idx, v)
}

// SetNewVertex is SetVertex that fails with a *VertexElementNotEmptyError
// if the vertex already has a value of this type.
func SetNewVertex[T value.Type](g *Graph, typ, idx uint32, v T) error {
	return g.SetNewVertexValue(typ, idx, value.Of(v))
}

// SetNewVertexValue is SetNewVertex for a dynamically typed value.
func (g *Graph) SetNewVertexValue(typ, idx uint32, v value.Value) error {
	if err := g.checkVertex(typ, idx); err != nil {
		return err
	}
	return g.SetNewVertexValueUnchecked(typ, idx, v)
}

// SetNewVertexValueUnchecked is SetNewVertexValue without index validation.
func (g *Graph) SetNewVertexValueUnchecked(typ, idx uint32, v value.Value) error {
	if g.vertices.vectors[typ].IsElement(idx) {
		return &VertexElementNotEmptyError{VertexType: typ, Index: idx}
	}
	g.SetVertexValueUnchecked(typ, idx, v)
	return nil
}

// GetVertex returns the value of vertex type typ at vertex idx coerced to
// T. The bool is false if the vertex has no value of that type.
func GetVertex[T value.Type](g *Graph, typ, idx uint32) (T, bool, error) {
	if err := g.checkVertex(typ, idx); err != nil {
		var zero T
		return zero, false, err
	}
	x, ok := GetVertexUnchecked[T](g, typ, idx)
	return x, ok, nil
}

// GetVertexUnchecked is GetVertex without validation.
func GetVertexUnchecked[T value.Type](g *Graph, typ, idx uint32) (T, bool) {
	return container.GetVectorAs[T](g.vertices.vectors[typ], idx)
}

// GetVertexValue returns the value of vertex type typ at vertex idx.
func (g *Graph) GetVertexValue(typ, idx uint32) (value.Value, bool, error) {
	if err := g.checkVertex(typ, idx); err != nil {
		return value.Value{}, false, err
	}
	v, ok := g.GetVertexValueUnchecked(typ, idx)
	return v, ok, nil
}

// GetVertexValueUnchecked is GetVertexValue without validation.
func (g *Graph) GetVertexValueUnchecked(typ, idx uint32) (value.Value, bool) {
	return g.vertices.vectors[typ].GetValue(idx)
}

// IsVertexElement reports whether vertex idx has a value of vertex type typ.
func (g *Graph) IsVertexElement(typ, idx uint32) (bool, error) {
	if err := g.checkVertex(typ, idx); err != nil {
		return false, err
	}
	return g.vertices.vectors[typ].IsElement(idx), nil
}

// IsValidVertex reports whether idx is a claimed vertex element.
func (g *Graph) IsValidVertex(idx uint32) bool { return g.vertices.elements.IsValidIndex(idx) }

// DeleteVertexValue drops the value of vertex type typ at vertex idx. The
// vertex element itself stays claimed.
func (g *Graph) DeleteVertexValue(typ, idx uint32) error {
	if err := g.checkVertex(typ, idx); err != nil {
		return err
	}
	g.DeleteVertexValueUnchecked(typ, idx)
	return nil
}

// DeleteVertexValueUnchecked is DeleteVertexValue without validation.
func (g *Graph) DeleteVertexValueUnchecked(typ, idx uint32) {
	vec := g.vertices.vectors[typ]
	if !vec.IsElement(idx) {
		return
	}
	g.journal.VertexValueChange(typ, idx)
	vec.Drop(idx)
}

// DeleteVertexElement drops every value of vertex idx, every edge incident
// to it and frees the index.
func (g *Graph) DeleteVertexElement(idx uint32) error {
	if err := g.vertices.elements.TryIndexValidity(idx); err != nil {
		return err
	}
	g.DeleteVertexElementUnchecked(idx)
	return nil
}

// DeleteVertexElementUnchecked is DeleteVertexElement without validation.
// Deleting an unclaimed vertex only clears data at its index.
func (g *Graph) DeleteVertexElementUnchecked(idx uint32) {
	for typ := range g.vertices.types.ValidIndices() {
		g.DeleteVertexValueUnchecked(typ, idx)
	}
	for et := range g.edges.types.ValidIndices() {
		m := g.edges.matrices[et]
		incident := m.Incident(idx)
		if len(incident) == 0 {
			continue
		}
		for k := range incident {
			g.journal.EdgeValueChange(et, k)
		}
		m.DropIncident(idx)
	}
	if g.vertices.elements.IsValidIndex(idx) {
		g.journal.SlotChange(g.vertices.elements, idx)
		g.vertices.elements.FreeValidIndex(idx)
	}
}

// VertexIndices yields the claimed vertex elements in ascending order.
func (g *Graph) VertexIndices() iter.Seq[uint32] { return g.vertices.elements.ValidIndices() }

// NumberOfVertices returns the number of claimed vertex elements.
func (g *Graph) NumberOfVertices() int { return g.vertices.elements.NumberOfIndexedElements() }

// VertexEntries yields every (vertex, value) pair of a vertex type in
// ascending vertex order.
func (g *Graph) VertexEntries(typ uint32) (iter.Seq2[uint32, value.Value], error) {
	vec, err := g.vertexVector(typ)
	if err != nil {
		return nil, err
	}
	return func(yield func(uint32, value.Value) bool) {
		vec.Entries(yield)
	}, nil
}
