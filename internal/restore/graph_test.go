package restore

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/propgraph/internal/indexer"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/value"
)

type indexerState struct {
	Valid, Private, Pending []uint32
	HighWater, Capacity     int
}

func indexerDump(ix *indexer.Indexer) indexerState {
	f := ix.FreeList()
	return indexerState{
		Valid:     slices.Collect(ix.ValidIndices()),
		Private:   slices.Collect(ix.PrivateIndices()),
		Pending:   f.Pending(),
		HighWater: f.HighWater(),
		Capacity:  ix.Capacity(),
	}
}

type graphState struct {
	VertexTypes, Vertices, EdgeTypes indexerState
	Vectors                          []string
	Matrices                         []string
}

// dump captures everything observable about g, including invalid slots.
func dump(g *store.Graph) graphState {
	s := graphState{
		VertexTypes: indexerDump(g.VertexTypeIndexer()),
		Vertices:    indexerDump(g.VertexIndexer()),
		EdgeTypes:   indexerDump(g.EdgeTypeIndexer()),
	}
	for i := range g.NumVertexVectorSlots() {
		v := g.VertexVectorSlot(uint32(i))
		entries := map[uint32]value.Value{}
		v.Entries(func(k uint32, x value.Value) bool { entries[k] = x; return true })
		s.Vectors = append(s.Vectors, fmt.Sprintf("%s/%d %v", v.TypeID(), v.Size(), entries))
	}
	for i := range g.NumAdjacencyMatrixSlots() {
		m := g.AdjacencyMatrixSlot(uint32(i))
		entries := map[sparse.Coord]value.Value{}
		m.Entries(func(k sparse.Coord, x value.Value) bool { entries[k] = x; return true })
		s.Matrices = append(s.Matrices, fmt.Sprintf("%s/%d %v", m.TypeID(), m.Dim(), entries))
	}
	return s
}

func seeded(t *testing.T) (*store.Graph, uint32, uint32, []uint32) {
	t.Helper()
	g := store.New(store.Config{VertexCapacity: 4, VertexTypeCapacity: 2, EdgeTypeCapacity: 2})
	vt, err := store.AddNewPublicVertexType[uint8](g)
	require.NoError(t, err)
	et, err := store.AddNewEdgeType[uint16](g)
	require.NoError(t, err)
	var vs []uint32
	for i := range 3 {
		v, err := store.AddVertex(g, vt, uint8(i+1))
		require.NoError(t, err)
		vs = append(vs, v)
	}
	require.NoError(t, store.SetEdge(g, et, vs[0], vs[1], uint16(7)))
	require.NoError(t, g.DeleteVertexElement(vs[2]))
	return g, vt, et, vs[:2]
}

func TestRollbackEquivalence(t *testing.T) {
	cases := map[string]func(t *testing.T, g *store.Graph, vt, et uint32, vs []uint32){
		"vertex add then delete": func(t *testing.T, g *store.Graph, vt, _ uint32, _ []uint32) {
			v, err := store.AddVertex(g, vt, uint8(9))
			require.NoError(t, err)
			require.NoError(t, g.DeleteVertexElement(v))
		},
		"edge set twice": func(t *testing.T, g *store.Graph, _, et uint32, vs []uint32) {
			require.NoError(t, store.SetEdge(g, et, vs[1], vs[0], uint16(5)))
			require.NoError(t, store.SetEdge(g, et, vs[1], vs[0], uint16(9)))
		},
		"multiple writes to one slot": func(t *testing.T, g *store.Graph, vt, _ uint32, vs []uint32) {
			for i := range 5 {
				require.NoError(t, store.SetVertex(g, vt, vs[0], uint8(100+i)))
			}
			require.NoError(t, g.DeleteVertexValue(vt, vs[0]))
		},
		"capacity expansion": func(t *testing.T, g *store.Graph, vt, et uint32, _ []uint32) {
			var last uint32
			for range 10 {
				v, err := store.AddVertex(g, vt, uint8(1))
				require.NoError(t, err)
				last = v
			}
			require.NoError(t, store.SetEdge(g, et, last, last, uint16(3)))
			_, err := store.AddNewPublicVertexType[float32](g)
			require.NoError(t, err)
		},
		"delete vertex with edges": func(t *testing.T, g *store.Graph, _, _ uint32, vs []uint32) {
			require.NoError(t, g.DeleteVertexElement(vs[0]))
		},
		"type deleted and slot reused": func(t *testing.T, g *store.Graph, vt, et uint32, vs []uint32) {
			require.NoError(t, store.SetVertex(g, vt, vs[1], uint8(50)))
			require.NoError(t, g.DeleteVertexType(vt))
			again, err := store.AddNewPublicVertexType[int64](g)
			require.NoError(t, err)
			require.Equal(t, vt, again)
			require.NoError(t, store.SetVertex(g, again, vs[1], int64(-1)))

			require.NoError(t, g.DeleteEdgeType(et))
			_, err = store.AddNewPrivateEdgeType[bool](g)
			require.NoError(t, err)
		},
		"operator overwrite": func(t *testing.T, g *store.Graph, _, et uint32, vs []uint32) {
			require.NoError(t, store.SetEdge(g, et, vs[1], vs[1], uint16(2)))
			require.NoError(t, store.ApplyScalarToEdgeType(g, et, et, sparse.Times[uint16](), 10, store.Options[uint16]{}))
			require.NoError(t, store.SetEdge(g, et, vs[0], vs[0], uint16(1)))
		},
		"vertex operator": func(t *testing.T, g *store.Graph, vt, et uint32, _ []uint32) {
			require.NoError(t, store.MultiplyEdgeTypeByVertexType(g, vt, et, vt, sparse.PlusTimes[uint8](), store.Options[uint8]{}))
		},
		"new types and private slots": func(t *testing.T, g *store.Graph, _, _ uint32, vs []uint32) {
			pt, err := store.AddNewPrivateVertexType[bool](g)
			require.NoError(t, err)
			require.NoError(t, store.SetVertex(g, pt, vs[0], true))
			et, err := store.AddNewEdgeType[float64](g)
			require.NoError(t, err)
			require.NoError(t, store.SetEdge(g, et, vs[0], vs[1], 1.5))
		},
		"reserve capacity": func(t *testing.T, g *store.Graph, _, _ uint32, _ []uint32) {
			require.NoError(t, g.ReserveVertexCapacity(64))
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			g, vt, et, vs := seeded(t)
			before := dump(g)

			r := NewGraphRestorer(g)
			g.SetJournal(r)
			mutate(t, g, vt, et, vs)
			assert.False(t, r.IsEmpty())

			require.NoError(t, r.Revert())
			assert.Equal(t, before, dump(g))
			assert.True(t, r.IsEmpty())
		})
	}
}

func TestRevertScenarios(t *testing.T) {
	t.Run("u8 vertex add and delete", func(t *testing.T) {
		g := store.New(store.Config{VertexCapacity: 4})
		vt, err := store.AddNewPublicVertexType[uint8](g)
		require.NoError(t, err)

		r := NewGraphRestorer(g)
		g.SetJournal(r)
		v, err := store.AddVertex(g, vt, uint8(1))
		require.NoError(t, err)
		require.NoError(t, g.DeleteVertexElement(v))
		require.NoError(t, r.Revert())

		assert.Equal(t, 0, g.NumberOfVertices())
		next, err := g.VertexIndexer().NextIndex()
		require.NoError(t, err)
		assert.Equal(t, uint32(0), next.Index)
		assert.False(t, next.Reused)
	})

	t.Run("u16 edge set twice", func(t *testing.T) {
		g := store.New(store.Config{VertexCapacity: 4})
		et, err := store.AddNewEdgeType[uint16](g)
		require.NoError(t, err)
		a, err := g.NewVertexIndex()
		require.NoError(t, err)
		b, err := g.NewVertexIndex()
		require.NoError(t, err)

		r := NewGraphRestorer(g)
		g.SetJournal(r)
		require.NoError(t, store.SetEdge(g, et, a, b, uint16(5)))
		require.NoError(t, store.SetEdge(g, et, a, b, uint16(9)))
		require.NoError(t, r.Revert())

		ok, err := g.IsEdge(et, a, b)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestResetKeepsChanges(t *testing.T) {
	g, vt, _, vs := seeded(t)
	r := NewGraphRestorer(g)
	g.SetJournal(r)

	require.NoError(t, store.SetVertex(g, vt, vs[0], uint8(42)))
	r.Reset()
	committed := dump(g)

	require.NoError(t, store.SetVertex(g, vt, vs[0], uint8(43)))
	require.NoError(t, r.Revert())
	assert.Equal(t, committed, dump(g))

	x, ok, err := store.GetVertex[uint8](g, vt, vs[0])
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint8(42), x)
}

func TestForeignIndexerPanics(t *testing.T) {
	g := store.New(store.Config{})
	r := NewGraphRestorer(g)
	assert.Panics(t, func() { r.TouchIndexer(indexer.New("other", 1)) })
}
