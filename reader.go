package propgraph

import (
	"context"
	"iter"
	"slices"

	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/internal/txn"
	"github.com/hupe1980/propgraph/value"
)

// Querier is implemented by *Reader and *Tx. The generic read functions
// (GetVertex, GetEdgeWeight, ...) accept either.
type Querier interface {
	graph() (*store.Graph, error)
}

// Edge identifies a directed edge of some edge type.
type Edge struct {
	Tail uint32
	Head uint32
}

// Stats counts a graph's contents.
type Stats = store.Stats

// Reader gives read access to a graph, either within View or as part of a
// Tx.
type Reader struct {
	g    *store.Graph
	tx   *txn.Transaction
	done bool
}

func (r *Reader) release() { r.done = true }

func (r *Reader) graph() (*store.Graph, error) {
	if r.tx != nil {
		return r.tx.Graph()
	}
	if r.done {
		return nil, ErrTxClosed
	}
	return r.g, nil
}

// VertexCapacity returns the number of vertex slots, which is the size of
// every vertex type and the dimension of every edge type.
func (r *Reader) VertexCapacity() (int, error) {
	g, err := r.graph()
	if err != nil {
		return 0, err
	}
	return g.VertexCapacity(), nil
}

// VertexTypes returns the public vertex types in ascending order.
func (r *Reader) VertexTypes() ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	return slices.Collect(g.VertexTypes()), nil
}

// PrivateVertexTypes returns the private vertex types in ascending order.
func (r *Reader) PrivateVertexTypes() ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	return slices.Collect(g.PrivateVertexTypes()), nil
}

// IsValidVertexType reports whether typ is a vertex type, public or
// private.
func (r *Reader) IsValidVertexType(typ uint32) bool {
	g, err := r.graph()
	return err == nil && g.IsValidVertexType(typ)
}

// VertexTypeValueType returns the value type of vertex type typ.
func (r *Reader) VertexTypeValueType(typ uint32) (value.TypeID, error) {
	g, err := r.graph()
	if err != nil {
		return 0, err
	}
	id, err := g.VertexTypeValueType(typ)
	return id, translateError(err)
}

// IsValidVertex reports whether idx is a vertex.
func (r *Reader) IsValidVertex(idx uint32) bool {
	g, err := r.graph()
	return err == nil && g.IsValidVertex(idx)
}

// VertexIndices returns the vertices in ascending order.
func (r *Reader) VertexIndices() ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	return slices.Collect(g.VertexIndices()), nil
}

// NumberOfVertices returns the number of vertices.
func (r *Reader) NumberOfVertices() (int, error) {
	g, err := r.graph()
	if err != nil {
		return 0, err
	}
	return g.NumberOfVertices(), nil
}

// GetVertexValue returns the value of vertex idx in vertex type typ.
func (r *Reader) GetVertexValue(typ, idx uint32) (value.Value, bool, error) {
	g, err := r.graph()
	if err != nil {
		return value.Value{}, false, err
	}
	v, ok, err := g.GetVertexValue(typ, idx)
	return v, ok, translateError(err)
}

// GetVertexValueUnchecked is GetVertexValue without index validation. It
// panics if idx is beyond the vertex capacity.
func (r *Reader) GetVertexValueUnchecked(typ, idx uint32) (value.Value, bool) {
	g, err := r.graph()
	if err != nil {
		return value.Value{}, false
	}
	return g.GetVertexValueUnchecked(typ, idx)
}

// IsVertexElement reports whether vertex idx has a value in vertex type
// typ.
func (r *Reader) IsVertexElement(typ, idx uint32) (bool, error) {
	g, err := r.graph()
	if err != nil {
		return false, err
	}
	ok, err := g.IsVertexElement(typ, idx)
	return ok, translateError(err)
}

// VertexEntries yields every vertex of vertex type typ with its value.
func (r *Reader) VertexEntries(typ uint32) (iter.Seq2[uint32, value.Value], error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	seq, err := g.VertexEntries(typ)
	return seq, translateError(err)
}

// VertexTypesOf returns the vertex types in which vertex idx has a value.
func (r *Reader) VertexTypesOf(ctx context.Context, idx uint32) ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	types, err := g.VertexTypesOf(ctx, idx)
	return types, translateError(err)
}

// EdgeTypes returns the public edge types in ascending order.
func (r *Reader) EdgeTypes() ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	return slices.Collect(g.EdgeTypes()), nil
}

// PrivateEdgeTypes returns the private edge types in ascending order.
func (r *Reader) PrivateEdgeTypes() ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	return slices.Collect(g.PrivateEdgeTypes()), nil
}

// IsValidEdgeType reports whether et is an edge type, public or private.
func (r *Reader) IsValidEdgeType(et uint32) bool {
	g, err := r.graph()
	return err == nil && g.IsValidEdgeType(et)
}

// EdgeTypeValueType returns the weight type of edge type et.
func (r *Reader) EdgeTypeValueType(et uint32) (value.TypeID, error) {
	g, err := r.graph()
	if err != nil {
		return 0, err
	}
	id, err := g.EdgeTypeValueType(et)
	return id, translateError(err)
}

// GetEdgeValue returns the weight of edge tail->head of type et.
func (r *Reader) GetEdgeValue(et, tail, head uint32) (value.Value, bool, error) {
	g, err := r.graph()
	if err != nil {
		return value.Value{}, false, err
	}
	v, ok, err := g.GetEdgeValue(et, tail, head)
	return v, ok, translateError(err)
}

// GetEdgeValueUnchecked is GetEdgeValue without index validation. It panics
// if tail or head is beyond the vertex capacity.
func (r *Reader) GetEdgeValueUnchecked(et, tail, head uint32) (value.Value, bool) {
	g, err := r.graph()
	if err != nil {
		return value.Value{}, false
	}
	return g.GetEdgeValueUnchecked(et, tail, head)
}

// IsEdge reports whether edge tail->head of type et exists.
func (r *Reader) IsEdge(et, tail, head uint32) (bool, error) {
	g, err := r.graph()
	if err != nil {
		return false, err
	}
	ok, err := g.IsEdge(et, tail, head)
	return ok, translateError(err)
}

// EdgeCount returns the number of edges of type et.
func (r *Reader) EdgeCount(et uint32) (int, error) {
	g, err := r.graph()
	if err != nil {
		return 0, err
	}
	n, err := g.EdgeCount(et)
	return n, translateError(err)
}

// Edges yields every edge of type et with its weight, ordered by tail then
// head.
func (r *Reader) Edges(et uint32) (iter.Seq2[Edge, value.Value], error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	seq, err := g.Edges(et)
	if err != nil {
		return nil, translateError(err)
	}
	return func(yield func(Edge, value.Value) bool) {
		for c, w := range seq {
			if !yield(Edge{Tail: c.Row, Head: c.Col}, w) {
				return
			}
		}
	}, nil
}

// OutgoingVertices returns the vertices with an outgoing edge of type et.
func (r *Reader) OutgoingVertices(et uint32) ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	m, err := g.OutgoingMask(et)
	if err != nil {
		return nil, translateError(err)
	}
	return m.ToSlice(), nil
}

// IncomingVertices returns the vertices with an incoming edge of type et.
func (r *Reader) IncomingVertices(et uint32) ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	m, err := g.IncomingMask(et)
	if err != nil {
		return nil, translateError(err)
	}
	return m.ToSlice(), nil
}

// OutDegree counts the outgoing edges of vertex idx over all edge types.
func (r *Reader) OutDegree(ctx context.Context, idx uint32) (int, error) {
	g, err := r.graph()
	if err != nil {
		return 0, err
	}
	n, err := g.OutDegree(ctx, idx)
	return n, translateError(err)
}

// InDegree counts the incoming edges of vertex idx over all edge types.
func (r *Reader) InDegree(ctx context.Context, idx uint32) (int, error) {
	g, err := r.graph()
	if err != nil {
		return 0, err
	}
	n, err := g.InDegree(ctx, idx)
	return n, translateError(err)
}

// IncidentEdgeTypes returns the edge types with an edge from or to vertex
// idx.
func (r *Reader) IncidentEdgeTypes(ctx context.Context, idx uint32) ([]uint32, error) {
	g, err := r.graph()
	if err != nil {
		return nil, err
	}
	types, err := g.IncidentEdgeTypes(ctx, idx)
	return types, translateError(err)
}

// Stats counts the graph's contents.
func (r *Reader) Stats(ctx context.Context) (Stats, error) {
	g, err := r.graph()
	if err != nil {
		return Stats{}, err
	}
	return g.Stats(ctx)
}

// GetVertex returns the value of vertex idx in vertex type typ, coerced to
// T.
func GetVertex[T value.Type](q Querier, typ, idx uint32) (T, bool, error) {
	var zero T
	g, err := q.graph()
	if err != nil {
		return zero, false, err
	}
	v, ok, err := store.GetVertex[T](g, typ, idx)
	return v, ok, translateError(err)
}

// GetVertexUnchecked is GetVertex without index validation. It panics if
// idx is beyond the vertex capacity.
func GetVertexUnchecked[T value.Type](q Querier, typ, idx uint32) (T, bool) {
	g, err := q.graph()
	if err != nil {
		var zero T
		return zero, false
	}
	return store.GetVertexUnchecked[T](g, typ, idx)
}

// GetEdgeWeight returns the weight of edge tail->head of type et, coerced
// to T.
func GetEdgeWeight[T value.Type](q Querier, et, tail, head uint32) (T, bool, error) {
	var zero T
	g, err := q.graph()
	if err != nil {
		return zero, false, err
	}
	w, ok, err := store.GetEdgeWeight[T](g, et, tail, head)
	return w, ok, translateError(err)
}

// GetEdgeWeightUnchecked is GetEdgeWeight without index validation.
func GetEdgeWeightUnchecked[T value.Type](q Querier, et, tail, head uint32) (T, bool) {
	g, err := q.graph()
	if err != nil {
		var zero T
		return zero, false
	}
	return store.GetEdgeWeightUnchecked[T](g, et, tail, head)
}

// TransposedEdges yields the edges of type et reversed, ordered by head
// then tail, with weights coerced to T. It reads the cached transpose.
func TransposedEdges[T value.Type](q Querier, et uint32) (iter.Seq2[Edge, T], error) {
	g, err := q.graph()
	if err != nil {
		return nil, err
	}
	m, err := store.Transposed[T](g, et)
	if err != nil {
		return nil, translateError(err)
	}
	return func(yield func(Edge, T) bool) {
		m.Scan(func(c sparse.Coord, w T) bool {
			return yield(Edge{Tail: c.Col, Head: c.Row}, w)
		})
	}, nil
}
