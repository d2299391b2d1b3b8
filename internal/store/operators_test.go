package store

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

// chain builds vertices 0 → 1 → 2 under edge type et with the given weights.
func chain(t *testing.T, g *Graph, et uint32, w ...int) {
	t.Helper()
	for range len(w) + 1 {
		_, err := g.NewVertexIndex()
		require.NoError(t, err)
	}
	for i, x := range w {
		require.NoError(t, SetEdge(g, et, uint32(i), uint32(i+1), x))
	}
}

func edgeMap(t *testing.T, g *Graph, et uint32) map[sparse.Coord]value.Value {
	t.Helper()
	seq, err := g.Edges(et)
	require.NoError(t, err)
	return maps.Collect(seq)
}

func vertexMap(t *testing.T, g *Graph, vt uint32) map[uint32]value.Value {
	t.Helper()
	seq, err := g.VertexEntries(vt)
	require.NoError(t, err)
	return maps.Collect(seq)
}

func TestMultiplyEdgeTypes(t *testing.T) {
	g := newGraph(t, 4)
	et, _ := AddNewEdgeType[int](g)
	two, _ := AddNewEdgeType[int](g)
	chain(t, g, et, 3, 4)

	require.NoError(t, MultiplyEdgeTypes(g, two, et, et, sparse.PlusTimes[int](), Options[int]{}))
	assert.Equal(t, map[sparse.Coord]value.Value{{Row: 0, Col: 2}: value.Of(12)}, edgeMap(t, g, two))

	require.NoError(t, MultiplyEdgeTypes(g, two, et, et, sparse.PlusTimes[int](), Options[int]{TransposeA: true}))
	assert.Equal(t, map[sparse.Coord]value.Value{
		{Row: 1, Col: 1}: value.Of(9),
		{Row: 2, Col: 2}: value.Of(16),
	}, edgeMap(t, g, two))

	wrong, _ := AddNewEdgeType[float64](g)
	err := MultiplyEdgeTypes(g, wrong, et, et, sparse.PlusTimes[int](), Options[int]{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestOperatorMasks(t *testing.T) {
	g := newGraph(t, 4)
	et, _ := AddNewEdgeType[int](g)
	maskType, _ := AddNewEdgeType[bool](g)
	out, _ := AddNewEdgeType[int](g)
	chain(t, g, et, 3, -4)

	require.NoError(t, SetEdge(g, maskType, 0, 1, true))
	require.NoError(t, SetEdge(g, maskType, 1, 2, false))

	require.NoError(t, ApplyToEdgeType(g, out, et, sparse.Abs[int](), Options[int]{Mask: EdgeTypeMask(maskType)}))
	assert.Equal(t, map[sparse.Coord]value.Value{{Row: 0, Col: 1}: value.Of(3)}, edgeMap(t, g, out))

	require.NoError(t, ApplyToEdgeType(g, out, et, sparse.Abs[int](), Options[int]{
		Mask: EdgeTypeMask(maskType), Structural: true, Accumulator: sparse.Plus[int](),
	}))
	assert.Equal(t, map[sparse.Coord]value.Value{
		{Row: 0, Col: 1}: value.Of(6),
		{Row: 1, Col: 2}: value.Of(4),
	}, edgeMap(t, g, out))

	require.NoError(t, ApplyToEdgeType(g, out, et, sparse.Identity[int](), Options[int]{
		Mask: EdgeTypeMask(maskType), Complement: true, Replace: true,
	}))
	assert.Equal(t, map[sparse.Coord]value.Value{{Row: 1, Col: 2}: value.Of(-4)}, edgeMap(t, g, out))

	vt, _ := AddNewPublicVertexType[int](g)
	err := ApplyToEdgeType(g, out, et, sparse.Abs[int](), Options[int]{Mask: VertexTypeMask(vt)})
	assert.ErrorIs(t, err, ErrInvalidMask)
	err = ApplyToVertexType(g, vt, vt, sparse.Abs[int](), Options[int]{Mask: EdgeTypeMask(et)})
	assert.ErrorIs(t, err, ErrInvalidMask)
}

func TestVertexEdgeProducts(t *testing.T) {
	g := newGraph(t, 4)
	et, _ := AddNewEdgeType[int](g)
	chain(t, g, et, 2, 5)
	score, _ := AddNewPublicVertexType[int](g)
	out, _ := AddNewPublicVertexType[int](g)
	require.NoError(t, SetVertex(g, score, 1, 10))
	require.NoError(t, SetVertex(g, score, 2, 100))

	// A·u: each tail sums weight × head value
	require.NoError(t, MultiplyEdgeTypeByVertexType(g, out, et, score, sparse.PlusTimes[int](), Options[int]{}))
	assert.Equal(t, map[uint32]value.Value{0: value.Of(20), 1: value.Of(500)}, vertexMap(t, g, out))

	// u·A: each head sums tail value × weight
	require.NoError(t, MultiplyVertexTypeByEdgeType(g, out, score, et, sparse.PlusTimes[int](), Options[int]{Replace: true}))
	assert.Equal(t, map[uint32]value.Value{2: value.Of(50)}, vertexMap(t, g, out))

	mask, _ := AddNewPublicVertexType[bool](g)
	require.NoError(t, SetVertex(g, mask, 0, true))
	require.NoError(t, MultiplyEdgeTypeByVertexType(g, out, et, score, sparse.PlusTimes[int](), Options[int]{
		Mask: VertexTypeMask(mask), Replace: true,
	}))
	assert.Equal(t, map[uint32]value.Value{0: value.Of(20)}, vertexMap(t, g, out))
}

func TestElementWiseOperators(t *testing.T) {
	g := newGraph(t, 4)
	a, _ := AddNewEdgeType[int](g)
	b, _ := AddNewEdgeType[uint8](g)
	sum, _ := AddNewEdgeType[int](g)
	chain(t, g, a, 1, 2)
	require.NoError(t, SetEdge(g, b, 0, 1, uint8(10)))
	require.NoError(t, SetEdge(g, b, 2, 0, uint8(20)))

	require.NoError(t, AddEdgeTypes(g, sum, a, b, sparse.Plus[int](), Options[int]{}))
	assert.Equal(t, map[sparse.Coord]value.Value{
		{Row: 0, Col: 1}: value.Of(11),
		{Row: 1, Col: 2}: value.Of(2),
		{Row: 2, Col: 0}: value.Of(20),
	}, edgeMap(t, g, sum))

	require.NoError(t, MultiplyElementWiseEdgeTypes(g, sum, a, b, sparse.Times[int](), Options[int]{Replace: true}))
	assert.Equal(t, map[sparse.Coord]value.Value{{Row: 0, Col: 1}: value.Of(10)}, edgeMap(t, g, sum))

	require.NoError(t, ApplyScalarToEdgeType(g, sum, a, sparse.Times[int](), 3, Options[int]{}))
	assert.Equal(t, map[sparse.Coord]value.Value{
		{Row: 0, Col: 1}: value.Of(3),
		{Row: 1, Col: 2}: value.Of(6),
	}, edgeMap(t, g, sum))

	require.NoError(t, SelectEdges(g, sum, a, sparse.ValueGT(1), Options[int]{}))
	assert.Equal(t, map[sparse.Coord]value.Value{{Row: 1, Col: 2}: value.Of(2)}, edgeMap(t, g, sum))

	u, _ := AddNewPublicVertexType[float64](g)
	v, _ := AddNewPublicVertexType[float64](g)
	require.NoError(t, SetVertex(g, u, 0, 1.5))
	require.NoError(t, SetVertex(g, v, 0, 2.0))
	require.NoError(t, SetVertex(g, v, 2, -1.0))

	require.NoError(t, AddVertexTypes(g, u, u, v, sparse.Plus[float64](), Options[float64]{}))
	assert.Equal(t, map[uint32]value.Value{0: value.Of(3.5), 2: value.Of(-1.0)}, vertexMap(t, g, u))

	require.NoError(t, MultiplyElementWiseVertexTypes(g, u, u, v, sparse.Times[float64](), Options[float64]{}))
	assert.Equal(t, map[uint32]value.Value{0: value.Of(7.0), 2: value.Of(1.0)}, vertexMap(t, g, u))

	require.NoError(t, SelectVertices(g, v, u, sparse.ValueLT(2.0), Options[float64]{Replace: true}))
	assert.Equal(t, map[uint32]value.Value{2: value.Of(1.0)}, vertexMap(t, g, v))

	require.NoError(t, ApplyToVertexType(g, v, v, sparse.AdditiveInverse[float64](), Options[float64]{}))
	assert.Equal(t, map[uint32]value.Value{2: value.Of(-1.0)}, vertexMap(t, g, v))
}
