package store

import (
	"github.com/hupe1980/propgraph/internal/container"
	"github.com/hupe1980/propgraph/internal/indexer"
	"github.com/hupe1980/propgraph/internal/sparse"
)

// Config sizes a new graph.
type Config struct {
	// VertexCapacity is the initial number of vertex-element slots.
	VertexCapacity int
	// VertexTypeCapacity is the initial number of vertex type slots.
	VertexTypeCapacity int
	// EdgeTypeCapacity is the initial number of edge type slots.
	EdgeTypeCapacity int
	// Context carries worker limits and the logger. Nil uses defaults.
	Context *sparse.Context
}

// VertexStore holds the vertex types and vertex elements.
type VertexStore struct {
	types    *indexer.Indexer
	elements *indexer.Indexer
	vectors  []container.AnyVertexVector
}

// EdgeStore holds the edge types.
type EdgeStore struct {
	types    *indexer.Indexer
	matrices []container.AnyAdjacencyMatrix
}

// Graph composes a vertex store and an edge store sharing one set of
// vertex-element indices. It is not safe for concurrent mutation.
type Graph struct {
	vertices VertexStore
	edges    EdgeStore
	ctx      *sparse.Context
	journal  Journal
}

// New creates an empty graph.
func New(cfg Config) *Graph {
	ctx := cfg.Context
	if ctx == nil {
		ctx = sparse.NewContext()
	}
	return &Graph{
		vertices: VertexStore{
			types:    indexer.New("vertex type", cfg.VertexTypeCapacity),
			elements: indexer.New("vertex", cfg.VertexCapacity),
		},
		edges: EdgeStore{
			types: indexer.New("edge type", cfg.EdgeTypeCapacity),
		},
		ctx:     ctx,
		journal: nopJournal{},
	}
}

// Context returns the graph's execution context.
func (g *Graph) Context() *sparse.Context { return g.ctx }

// SetJournal installs j; nil restores the no-op journal.
func (g *Graph) SetJournal(j Journal) {
	if j == nil {
		j = nopJournal{}
	}
	g.journal = j
}

// VertexTypeIndexer returns the vertex type slot allocator.
func (g *Graph) VertexTypeIndexer() *indexer.Indexer { return g.vertices.types }

// VertexIndexer returns the vertex-element slot allocator.
func (g *Graph) VertexIndexer() *indexer.Indexer { return g.vertices.elements }

// EdgeTypeIndexer returns the edge type slot allocator.
func (g *Graph) EdgeTypeIndexer() *indexer.Indexer { return g.edges.types }

// VertexCapacity returns the current vertex-element capacity, which is the
// size of every vertex vector and the dimension of every adjacency matrix.
func (g *Graph) VertexCapacity() int { return g.vertices.elements.Capacity() }

// ReserveVertexCapacity grows the vertex-element capacity to at least n.
func (g *Graph) ReserveVertexCapacity(n int) error {
	if n <= g.VertexCapacity() {
		return nil
	}
	g.journal.TouchIndexer(g.vertices.elements)
	grew, err := g.vertices.elements.SetIndexCapacity(n)
	if err != nil {
		return err
	}
	if grew {
		g.resizeContainers(n)
	}
	return nil
}

func (g *Graph) resizeContainers(n int) {
	g.ctx.Logger().Debug("vertex capacity changed", "capacity", n,
		"vertex_types", len(g.vertices.vectors), "edge_types", len(g.edges.matrices))
	for _, v := range g.vertices.vectors {
		v.Resize(n)
	}
	for _, m := range g.edges.matrices {
		m.Resize(n)
	}
}

// ResizeContainers resizes every vector and matrix to n. Only rollback
// uses it; the vertex indexer's capacity is restored separately.
func (g *Graph) ResizeContainers(n int) { g.resizeContainers(n) }

// VertexVectorSlot returns the vector stored at a vertex type slot, valid or
// not, or nil past the end of the slot slice.
func (g *Graph) VertexVectorSlot(typ uint32) container.AnyVertexVector {
	if int(typ) >= len(g.vertices.vectors) {
		return nil
	}
	return g.vertices.vectors[typ]
}

// NumVertexVectorSlots returns the length of the vertex type slot slice.
func (g *Graph) NumVertexVectorSlots() int { return len(g.vertices.vectors) }

// RestoreVertexVectorSlot puts v back at a vertex type slot. Only rollback
// uses it.
func (g *Graph) RestoreVertexVectorSlot(typ uint32, v container.AnyVertexVector) {
	g.vertices.vectors = installSlot(g.vertices.vectors, typ, v)
}

// TruncateVertexVectorSlots shortens the vertex type slot slice to n. Only
// rollback uses it.
func (g *Graph) TruncateVertexVectorSlots(n int) {
	g.vertices.vectors = truncateSlots(g.vertices.vectors, n)
}

// AdjacencyMatrixSlot returns the matrix stored at an edge type slot, valid
// or not, or nil past the end of the slot slice.
func (g *Graph) AdjacencyMatrixSlot(et uint32) container.AnyAdjacencyMatrix {
	if int(et) >= len(g.edges.matrices) {
		return nil
	}
	return g.edges.matrices[et]
}

// NumAdjacencyMatrixSlots returns the length of the edge type slot slice.
func (g *Graph) NumAdjacencyMatrixSlots() int { return len(g.edges.matrices) }

// RestoreAdjacencyMatrixSlot puts m back at an edge type slot. Only rollback
// uses it.
func (g *Graph) RestoreAdjacencyMatrixSlot(et uint32, m container.AnyAdjacencyMatrix) {
	g.edges.matrices = installSlot(g.edges.matrices, et, m)
}

// TruncateAdjacencyMatrixSlots shortens the edge type slot slice to n. Only
// rollback uses it.
func (g *Graph) TruncateAdjacencyMatrixSlots(n int) {
	g.edges.matrices = truncateSlots(g.edges.matrices, n)
}

func installSlot[S any](slots []S, i uint32, v S) []S {
	for len(slots) <= int(i) {
		var zero S
		slots = append(slots, zero)
	}
	slots[i] = v
	return slots
}

func truncateSlots[S any](slots []S, n int) []S {
	if n >= len(slots) {
		return slots
	}
	clear(slots[n:])
	return slots[:n]
}

func claim(ix *indexer.Indexer, private bool) (indexer.AssignedIndex, error) {
	if private {
		return ix.NewPrivateIndex()
	}
	return ix.NewPublicIndex()
}
