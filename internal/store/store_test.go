package store

import (
	"context"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/propgraph/internal/indexer"
	"github.com/hupe1980/propgraph/internal/resource"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

func newGraph(t *testing.T, capacity int) *Graph {
	t.Helper()
	return New(Config{
		VertexCapacity:     capacity,
		VertexTypeCapacity: 2,
		EdgeTypeCapacity:   2,
		Context:            sparse.NewContext(sparse.WithWorkers(resource.NewController(resource.Config{MaxWorkers: 2}))),
	})
}

func TestVertexTypes(t *testing.T) {
	g := newGraph(t, 4)

	a, err := AddNewPublicVertexType[uint8](g)
	require.NoError(t, err)
	b, err := AddNewPrivateVertexType[float64](g)
	require.NoError(t, err)

	assert.Equal(t, []uint32{a}, slices.Collect(g.VertexTypes()))
	assert.Equal(t, []uint32{b}, slices.Collect(g.PrivateVertexTypes()))

	id, err := g.VertexTypeValueType(b)
	require.NoError(t, err)
	assert.Equal(t, value.Float64, id)

	assert.ErrorIs(t, g.DeleteVertexType(b), indexer.ErrIndexOutOfBounds)
	assert.ErrorIs(t, g.DeletePrivateVertexType(a), indexer.ErrIndexOutOfBounds)
	require.NoError(t, g.DeletePrivateVertexType(b))
	require.NoError(t, g.DeleteVertexType(b), "deleting a free slot is a no-op")

	_, err = g.VertexTypeValueType(b)
	assert.ErrorIs(t, err, indexer.ErrIndexOutOfBounds)
}

func TestVertexValues(t *testing.T) {
	g := newGraph(t, 4)
	typ, err := AddNewPublicVertexType[uint8](g)
	require.NoError(t, err)

	idx, err := AddVertex(g, typ, uint8(255))
	require.NoError(t, err)

	b, ok, err := GetVertex[bool](g, typ, idx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, b)

	require.NoError(t, SetVertex(g, typ, idx, float32(1000)))
	v, ok, err := g.GetVertexValue(typ, idx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Of[uint8](255), v)

	err = SetNewVertex(g, typ, idx, uint8(1))
	var notEmpty *VertexElementNotEmptyError
	require.ErrorAs(t, err, &notEmpty)
	assert.ErrorIs(t, err, ErrVertexElementNotEmpty)
	assert.Equal(t, idx, notEmpty.Index)

	other, err := g.NewVertexIndex()
	require.NoError(t, err)
	require.NoError(t, SetNewVertex(g, typ, other, uint8(7)))

	is, err := g.IsVertexElement(typ, other)
	require.NoError(t, err)
	assert.True(t, is)

	require.NoError(t, g.DeleteVertexValue(typ, other))
	_, ok, err = GetVertex[uint8](g, typ, other)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, g.IsValidVertex(other), "dropping a value keeps the vertex")

	_, _, err = GetVertex[uint8](g, typ, 3)
	assert.ErrorIs(t, err, indexer.ErrIndexOutOfBounds)
	assert.ErrorIs(t, SetVertex(g, 9, idx, 1), indexer.ErrIndexOutOfBounds)
	_, err = AddVertex(g, 9, 1)
	assert.ErrorIs(t, err, indexer.ErrIndexOutOfBounds)
	assert.Equal(t, 2, g.NumberOfVertices(), "failed add claims nothing")
}

func TestCapacityResizesAllContainers(t *testing.T) {
	g := newGraph(t, 2)
	vt, err := AddNewPublicVertexType[int](g)
	require.NoError(t, err)
	et, err := AddNewEdgeType[int](g)
	require.NoError(t, err)

	for range 3 {
		_, err := g.NewVertexIndex()
		require.NoError(t, err)
	}
	assert.Equal(t, 4, g.VertexCapacity())

	vec, err := g.VertexVector(vt)
	require.NoError(t, err)
	assert.Equal(t, 4, vec.Size())
	m, err := g.AdjacencyMatrix(et)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Dim())

	late, err := AddNewEdgeType[bool](g)
	require.NoError(t, err)
	m, err = g.AdjacencyMatrix(late)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Dim(), "new types are sized to the current capacity")

	require.NoError(t, g.ReserveVertexCapacity(10))
	assert.Equal(t, 10, vec.Size())
	assert.Equal(t, 10, m.Dim())
}

func TestReusedTypeSlotIsFresh(t *testing.T) {
	g := newGraph(t, 2)
	typ, err := AddNewPublicVertexType[uint8](g)
	require.NoError(t, err)
	idx, err := AddVertex(g, typ, uint8(3))
	require.NoError(t, err)

	require.NoError(t, g.DeleteVertexType(typ))
	again, err := AddNewPublicVertexType[int16](g)
	require.NoError(t, err)
	require.Equal(t, typ, again)

	_, ok, err := GetVertex[int16](g, again, idx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEdges(t *testing.T) {
	g := newGraph(t, 4)
	et, err := AddNewEdgeType[uint16](g)
	require.NoError(t, err)
	a, err := g.NewVertexIndex()
	require.NoError(t, err)
	b, err := g.NewVertexIndex()
	require.NoError(t, err)

	require.NoError(t, SetEdge(g, et, a, b, uint16(5)))
	require.NoError(t, SetEdge(g, et, a, b, 9))
	w, ok, err := GetEdgeWeight[uint16](g, et, a, b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint16(9), w)

	is, err := g.IsEdge(et, b, a)
	require.NoError(t, err)
	assert.False(t, is)

	assert.ErrorIs(t, SetEdge(g, et, a, 3, 1), indexer.ErrIndexOutOfBounds, "head must be a valid vertex")

	n, err := g.EdgeCount(et)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	edges, err := g.Edges(et)
	require.NoError(t, err)
	assert.Equal(t, map[sparse.Coord]value.Value{{Row: a, Col: b}: value.Of[uint16](9)}, maps.Collect(edges))

	out, err := g.OutgoingMask(et)
	require.NoError(t, err)
	assert.Equal(t, []uint32{a}, out.ToSlice())
	in, err := g.IncomingMask(et)
	require.NoError(t, err)
	assert.Equal(t, []uint32{b}, in.ToSlice())

	tr, err := Transposed[uint16](g, et)
	require.NoError(t, err)
	assert.Equal(t, uint16(9), tr.GetOrDefault(sparse.Coord{Row: b, Col: a}))

	require.NoError(t, g.DeleteEdgeWeight(et, a, b))
	n, err = g.EdgeCount(et)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, g.DeleteEdgeType(et))
	_, err = g.EdgeCount(et)
	assert.ErrorIs(t, err, indexer.ErrIndexOutOfBounds)
}

func TestDeleteVertexElement(t *testing.T) {
	g := newGraph(t, 4)
	vt, err := AddNewPublicVertexType[int](g)
	require.NoError(t, err)
	pt, err := AddNewPrivateVertexType[bool](g)
	require.NoError(t, err)
	et, err := AddNewEdgeType[float32](g)
	require.NoError(t, err)

	a, err := AddVertex(g, vt, 1)
	require.NoError(t, err)
	b, err := AddVertex(g, vt, 2)
	require.NoError(t, err)
	require.NoError(t, SetVertex(g, pt, a, true))
	require.NoError(t, SetEdge(g, et, a, b, float32(1)))
	require.NoError(t, SetEdge(g, et, b, a, float32(2)))
	require.NoError(t, SetEdge(g, et, b, b, float32(3)))

	require.NoError(t, g.DeleteVertexElement(a))
	assert.False(t, g.IsValidVertex(a))

	n, err := g.EdgeCount(et)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// the reused index exposes no stale data
	c, err := g.NewVertexIndex()
	require.NoError(t, err)
	require.Equal(t, a, c)
	for _, typ := range []uint32{vt, pt} {
		is, err := g.IsVertexElement(typ, c)
		require.NoError(t, err)
		assert.False(t, is)
	}
	is, err := g.IsEdge(et, c, b)
	require.NoError(t, err)
	assert.False(t, is)

	assert.ErrorIs(t, g.DeleteVertexElement(3), indexer.ErrIndexOutOfBounds)
}

func TestFanOutQueries(t *testing.T) {
	g := newGraph(t, 4)
	ctx := context.Background()

	v1, _ := AddNewPublicVertexType[int](g)
	v2, _ := AddNewPublicVertexType[int](g)
	v3, _ := AddNewPublicVertexType[int](g)
	e1, _ := AddNewEdgeType[bool](g)
	e2, _ := AddNewEdgeType[bool](g)
	e3, _ := AddNewEdgeType[bool](g)

	a, err := AddVertex(g, v1, 1)
	require.NoError(t, err)
	require.NoError(t, SetVertex(g, v3, a, 3))
	b, err := AddVertex(g, v2, 2)
	require.NoError(t, err)

	require.NoError(t, SetEdge(g, e1, a, b, true))
	require.NoError(t, SetEdge(g, e3, a, b, true))
	require.NoError(t, SetEdge(g, e3, b, a, true))

	types, err := g.VertexTypesOf(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, []uint32{v1, v3}, types)

	out, err := g.OutDegree(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	in, err := g.InDegree(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	incident, err := g.IncidentEdgeTypes(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, []uint32{e1, e3}, incident)
	assert.NotContains(t, incident, e2)

	stats, err := g.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Vertices: 2, VertexTypes: 3, EdgeTypes: 3, VertexValues: 3, Edges: 3, Capacity: 4}, stats)

	_, err = g.OutDegree(ctx, 3)
	assert.ErrorIs(t, err, indexer.ErrIndexOutOfBounds)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = g.VertexTypesOf(cancelled, a)
	assert.ErrorIs(t, err, context.Canceled)
}

type recordingJournal struct {
	nopJournal
	calls []string
}

func (r *recordingJournal) SlotChange(ix *indexer.Indexer, i uint32) {
	r.calls = append(r.calls, ix.Kind()+" slot")
}

func (r *recordingJournal) VertexValueChange(typ, i uint32) {
	r.calls = append(r.calls, "vertex value")
}

func (r *recordingJournal) EdgeValueChange(et uint32, k sparse.Coord) {
	r.calls = append(r.calls, "edge value")
}

func (r *recordingJournal) VertexVectorInstall(typ uint32) {
	r.calls = append(r.calls, "vector install")
}

func (r *recordingJournal) AdjacencyMatrixOverwrite(et uint32) {
	r.calls = append(r.calls, "matrix overwrite")
}

func TestJournalSeesEveryMutation(t *testing.T) {
	g := newGraph(t, 4)
	j := &recordingJournal{}
	g.SetJournal(j)

	vt, err := AddNewPublicVertexType[int](g)
	require.NoError(t, err)
	et, err := AddNewEdgeType[int](g)
	require.NoError(t, err)
	a, err := AddVertex(g, vt, 1)
	require.NoError(t, err)
	require.NoError(t, SetEdge(g, et, a, a, 1))
	require.NoError(t, ApplyToEdgeType(g, et, et, sparse.AdditiveInverse[int](), Options[int]{}))
	require.NoError(t, g.DeleteVertexElement(a))

	assert.Equal(t, []string{
		"vertex type slot", "vector install",
		"edge type slot",
		"vertex slot", "vertex value",
		"edge value",
		"matrix overwrite",
		"vertex value", "edge value", "vertex slot",
	}, j.calls)

	// unchecked variants report identically
	j.calls = nil
	b, err := g.AddVertexValueUnchecked(vt, value.Of(2))
	require.NoError(t, err)
	g.SetEdgeValueUnchecked(et, b, b, value.Of(2))
	g.DeleteEdgeWeightUnchecked(et, b, b)
	assert.Equal(t, []string{"vertex slot", "vertex value", "edge value", "edge value"}, j.calls)

	g.SetJournal(nil)
	_, err = g.NewVertexIndex()
	require.NoError(t, err)
	assert.Len(t, j.calls, 4)
}
