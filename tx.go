package propgraph

import (
	"context"
	"errors"

	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/internal/txn"
	"github.com/hupe1980/propgraph/value"
)

// Tx is an atomic in-memory transaction. It holds the graph's write lock
// from Graph.Begin until Close.
//
// Every mutation made through a Tx can be undone: Revert restores the state
// at Begin or at the last Commit, and Close reverts whatever was not
// committed. A Tx also reads, seeing its own uncommitted changes.
//
// Mutations come in checked and unchecked variants. Checked variants
// validate every index and fail without side effects. Unchecked variants
// skip validation and panic on indices beyond the vertex capacity; they
// are undone just like checked ones.
//
// A Tx is not safe for concurrent use.
type Tx struct {
	Reader

	inner     *txn.Transaction
	ctx       context.Context
	metrics   MetricsCollector
	logger    *Logger
	mutations int
}

// Commit keeps every change made so far. The transaction stays open.
func (t *Tx) Commit() error {
	n := t.mutations
	if err := t.inner.Commit(); err != nil {
		return err
	}
	t.mutations = 0
	t.metrics.RecordCommit(n)
	t.logger.LogCommit(t.ctx, n)
	return nil
}

// Revert undoes every change since Begin or the last Commit. The
// transaction stays open.
func (t *Tx) Revert() error {
	n := t.mutations
	err := translateError(t.inner.Revert())
	if errors.Is(err, ErrTxClosed) {
		return err
	}
	t.mutations = 0
	t.metrics.RecordRevert(n, err)
	t.logger.LogRevert(t.ctx, n, err)
	return err
}

// Close reverts uncommitted changes and releases the graph. A failed revert
// is logged and returned; the graph may then be partially modified. Closing
// twice is a no-op.
func (t *Tx) Close() error {
	if t.inner.Closed() {
		return nil
	}
	n, dirty := t.mutations, t.inner.Dirty()
	err := translateError(t.inner.Close())
	t.mutations = 0
	if dirty {
		t.metrics.RecordRevert(n, err)
	}
	switch {
	case err != nil:
		t.logger.LogCloseFailure(t.ctx, err)
	case dirty:
		t.logger.LogRevert(t.ctx, n, nil)
	}
	return err
}

func mutate(t *Tx, op string, fn func(g *store.Graph) error) error {
	g, err := t.inner.Graph()
	if err != nil {
		return err
	}
	err = translateError(fn(g))
	t.metrics.RecordMutation(op, err)
	if err == nil {
		t.mutations++
	}
	return err
}

func mutateIndex(t *Tx, op string, fn func(g *store.Graph) (uint32, error)) (uint32, error) {
	var idx uint32
	err := mutate(t, op, func(g *store.Graph) error {
		var err error
		idx, err = fn(g)
		return err
	})
	return idx, err
}

// AddNewVertexType adds a public vertex type with values of type T.
func AddNewVertexType[T value.Type](t *Tx) (uint32, error) {
	return t.AddVertexType(value.TypeOf[T]())
}

// AddNewPrivateVertexType adds a private vertex type with values of type T.
// Private types are hidden from VertexTypes.
func AddNewPrivateVertexType[T value.Type](t *Tx) (uint32, error) {
	return t.AddPrivateVertexType(value.TypeOf[T]())
}

// AddVertexType adds a public vertex type with values of type id.
func (t *Tx) AddVertexType(id value.TypeID) (uint32, error) {
	return mutateIndex(t, "add_vertex_type", func(g *store.Graph) (uint32, error) {
		return g.AddVertexType(id, false)
	})
}

// AddPrivateVertexType adds a private vertex type with values of type id.
func (t *Tx) AddPrivateVertexType(id value.TypeID) (uint32, error) {
	return mutateIndex(t, "add_vertex_type", func(g *store.Graph) (uint32, error) {
		return g.AddVertexType(id, true)
	})
}

// DeleteVertexType deletes public vertex type typ and its values.
func (t *Tx) DeleteVertexType(typ uint32) error {
	return mutate(t, "delete_vertex_type", func(g *store.Graph) error {
		return g.DeleteVertexType(typ)
	})
}

// DeletePrivateVertexType deletes private vertex type typ and its values.
func (t *Tx) DeletePrivateVertexType(typ uint32) error {
	return mutate(t, "delete_vertex_type", func(g *store.Graph) error {
		return g.DeletePrivateVertexType(typ)
	})
}

// DeleteVertexTypeUnchecked deletes vertex type typ of either class; it is
// a no-op if typ is not a vertex type.
func (t *Tx) DeleteVertexTypeUnchecked(typ uint32) error {
	return mutate(t, "delete_vertex_type", func(g *store.Graph) error {
		g.DeleteVertexTypeUnchecked(typ)
		return nil
	})
}

// NewVertexIndex claims a vertex without giving it a value.
func (t *Tx) NewVertexIndex() (uint32, error) {
	return mutateIndex(t, "new_vertex", func(g *store.Graph) (uint32, error) {
		return g.NewVertexIndex()
	})
}

// ReserveVertexCapacity grows the vertex capacity to at least n.
func (t *Tx) ReserveVertexCapacity(n int) error {
	return mutate(t, "reserve_capacity", func(g *store.Graph) error {
		return g.ReserveVertexCapacity(n)
	})
}

// AddVertex claims a vertex and sets its value in vertex type typ.
func AddVertex[T value.Type](t *Tx, typ uint32, v T) (uint32, error) {
	return t.AddVertexValue(typ, value.Of(v))
}

// AddVertexUnchecked is AddVertex without validating typ.
func AddVertexUnchecked[T value.Type](t *Tx, typ uint32, v T) (uint32, error) {
	return t.AddVertexValueUnchecked(typ, value.Of(v))
}

// AddVertexValue claims a vertex and sets its value in vertex type typ.
func (t *Tx) AddVertexValue(typ uint32, v value.Value) (uint32, error) {
	return mutateIndex(t, "add_vertex", func(g *store.Graph) (uint32, error) {
		return g.AddVertexValue(typ, v)
	})
}

// AddVertexValueUnchecked is AddVertexValue without validating typ.
func (t *Tx) AddVertexValueUnchecked(typ uint32, v value.Value) (uint32, error) {
	return mutateIndex(t, "add_vertex", func(g *store.Graph) (uint32, error) {
		return g.AddVertexValueUnchecked(typ, v)
	})
}

// SetVertex sets the value of vertex idx in vertex type typ.
func SetVertex[T value.Type](t *Tx, typ, idx uint32, v T) error {
	return t.SetVertexValue(typ, idx, value.Of(v))
}

// SetVertexUnchecked is SetVertex without index validation.
func SetVertexUnchecked[T value.Type](t *Tx, typ, idx uint32, v T) error {
	return t.SetVertexValueUnchecked(typ, idx, value.Of(v))
}

// SetVertexValue sets the value of vertex idx in vertex type typ, coercing
// v to the type's value type.
func (t *Tx) SetVertexValue(typ, idx uint32, v value.Value) error {
	return mutate(t, "set_vertex", func(g *store.Graph) error {
		return g.SetVertexValue(typ, idx, v)
	})
}

// SetVertexValueUnchecked is SetVertexValue without index validation.
func (t *Tx) SetVertexValueUnchecked(typ, idx uint32, v value.Value) error {
	return mutate(t, "set_vertex", func(g *store.Graph) error {
		g.SetVertexValueUnchecked(typ, idx, v)
		return nil
	})
}

// SetNewVertex sets the value of vertex idx in vertex type typ. It fails
// with ErrVertexElementNotEmpty if the vertex already has a value there.
func SetNewVertex[T value.Type](t *Tx, typ, idx uint32, v T) error {
	return mutate(t, "set_vertex", func(g *store.Graph) error {
		return g.SetNewVertexValue(typ, idx, value.Of(v))
	})
}

// SetNewVertexUnchecked is SetNewVertex without index validation.
func SetNewVertexUnchecked[T value.Type](t *Tx, typ, idx uint32, v T) error {
	return mutate(t, "set_vertex", func(g *store.Graph) error {
		return g.SetNewVertexValueUnchecked(typ, idx, value.Of(v))
	})
}

// DeleteVertexValue drops the value of vertex idx in vertex type typ. The
// vertex itself stays.
func (t *Tx) DeleteVertexValue(typ, idx uint32) error {
	return mutate(t, "delete_vertex_value", func(g *store.Graph) error {
		return g.DeleteVertexValue(typ, idx)
	})
}

// DeleteVertexValueUnchecked is DeleteVertexValue without index validation.
func (t *Tx) DeleteVertexValueUnchecked(typ, idx uint32) error {
	return mutate(t, "delete_vertex_value", func(g *store.Graph) error {
		g.DeleteVertexValueUnchecked(typ, idx)
		return nil
	})
}

// DeleteVertexElement deletes vertex idx: its values in every vertex type,
// its edges in every edge type, and its index, which may be reused.
func (t *Tx) DeleteVertexElement(idx uint32) error {
	return mutate(t, "delete_vertex", func(g *store.Graph) error {
		return g.DeleteVertexElement(idx)
	})
}

// DeleteVertexElementUnchecked is DeleteVertexElement without index
// validation.
func (t *Tx) DeleteVertexElementUnchecked(idx uint32) error {
	return mutate(t, "delete_vertex", func(g *store.Graph) error {
		g.DeleteVertexElementUnchecked(idx)
		return nil
	})
}

// AddNewEdgeType adds a public edge type with weights of type T.
func AddNewEdgeType[T value.Type](t *Tx) (uint32, error) {
	return t.AddEdgeType(value.TypeOf[T]())
}

// AddNewPrivateEdgeType adds a private edge type with weights of type T.
func AddNewPrivateEdgeType[T value.Type](t *Tx) (uint32, error) {
	return t.AddPrivateEdgeType(value.TypeOf[T]())
}

// AddEdgeType adds a public edge type with weights of type id.
func (t *Tx) AddEdgeType(id value.TypeID) (uint32, error) {
	return mutateIndex(t, "add_edge_type", func(g *store.Graph) (uint32, error) {
		return g.AddEdgeType(id, false)
	})
}

// AddPrivateEdgeType adds a private edge type with weights of type id.
func (t *Tx) AddPrivateEdgeType(id value.TypeID) (uint32, error) {
	return mutateIndex(t, "add_edge_type", func(g *store.Graph) (uint32, error) {
		return g.AddEdgeType(id, true)
	})
}

// DeleteEdgeType deletes public edge type et and its edges.
func (t *Tx) DeleteEdgeType(et uint32) error {
	return mutate(t, "delete_edge_type", func(g *store.Graph) error {
		return g.DeleteEdgeType(et)
	})
}

// DeletePrivateEdgeType deletes private edge type et and its edges.
func (t *Tx) DeletePrivateEdgeType(et uint32) error {
	return mutate(t, "delete_edge_type", func(g *store.Graph) error {
		return g.DeletePrivateEdgeType(et)
	})
}

// DeleteEdgeTypeUnchecked deletes edge type et of either class; it is a
// no-op if et is not an edge type.
func (t *Tx) DeleteEdgeTypeUnchecked(et uint32) error {
	return mutate(t, "delete_edge_type", func(g *store.Graph) error {
		g.DeleteEdgeTypeUnchecked(et)
		return nil
	})
}

// SetEdge adds or overwrites edge tail->head of type et. tail and head must
// be vertices.
func SetEdge[T value.Type](t *Tx, et, tail, head uint32, w T) error {
	return t.SetEdgeValue(et, tail, head, value.Of(w))
}

// SetEdgeUnchecked is SetEdge without index validation.
func SetEdgeUnchecked[T value.Type](t *Tx, et, tail, head uint32, w T) error {
	return t.SetEdgeValueUnchecked(et, tail, head, value.Of(w))
}

// SetEdgeValue adds or overwrites edge tail->head of type et, coercing w
// to the type's weight type.
func (t *Tx) SetEdgeValue(et, tail, head uint32, w value.Value) error {
	return mutate(t, "set_edge", func(g *store.Graph) error {
		return g.SetEdgeValue(et, tail, head, w)
	})
}

// SetEdgeValueUnchecked is SetEdgeValue without index validation.
func (t *Tx) SetEdgeValueUnchecked(et, tail, head uint32, w value.Value) error {
	return mutate(t, "set_edge", func(g *store.Graph) error {
		g.SetEdgeValueUnchecked(et, tail, head, w)
		return nil
	})
}

// DeleteEdgeWeight deletes edge tail->head of type et.
func (t *Tx) DeleteEdgeWeight(et, tail, head uint32) error {
	return mutate(t, "delete_edge", func(g *store.Graph) error {
		return g.DeleteEdgeWeight(et, tail, head)
	})
}

// DeleteEdgeWeightUnchecked is DeleteEdgeWeight without index validation.
func (t *Tx) DeleteEdgeWeightUnchecked(et, tail, head uint32) error {
	return mutate(t, "delete_edge", func(g *store.Graph) error {
		g.DeleteEdgeWeightUnchecked(et, tail, head)
		return nil
	})
}
