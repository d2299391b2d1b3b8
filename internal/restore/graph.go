package restore

import (
	"fmt"

	"github.com/hupe1980/propgraph/internal/indexer"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/internal/store"
)

// VertexStoreRestorer groups the restorers of the vertex store.
type VertexStoreRestorer struct {
	Types    *IndexerRestorer
	Elements *IndexerRestorer
	Vectors  *VertexVectorsRestorer
}

// EdgeStoreRestorer groups the restorers of the edge store.
type EdgeStoreRestorer struct {
	Types    *IndexerRestorer
	Matrices *AdjacencyMatricesRestorer
}

// GraphRestorer records the undo information of every mutation of a graph.
// Install it with Graph.SetJournal.
type GraphRestorer struct {
	g        *store.Graph
	Vertices VertexStoreRestorer
	Edges    EdgeStoreRestorer
}

var _ store.Journal = (*GraphRestorer)(nil)

// NewGraphRestorer creates a restorer whose baseline is g's current state.
func NewGraphRestorer(g *store.Graph) *GraphRestorer {
	return &GraphRestorer{
		g: g,
		Vertices: VertexStoreRestorer{
			Types:    NewIndexerRestorer(g.VertexTypeIndexer()),
			Elements: NewIndexerRestorer(g.VertexIndexer()),
			Vectors:  NewVertexVectorsRestorer(g),
		},
		Edges: EdgeStoreRestorer{
			Types:    NewIndexerRestorer(g.EdgeTypeIndexer()),
			Matrices: NewAdjacencyMatricesRestorer(g),
		},
	}
}

func (r *GraphRestorer) indexer(ix *indexer.Indexer) *IndexerRestorer {
	switch ix {
	case r.Vertices.Types.Indexer():
		return r.Vertices.Types
	case r.Vertices.Elements.Indexer():
		return r.Vertices.Elements
	case r.Edges.Types.Indexer():
		return r.Edges.Types
	}
	panic(fmt.Sprintf("restore: indexer %q does not belong to the graph", ix.Kind()))
}

// TouchIndexer implements store.Journal.
func (r *GraphRestorer) TouchIndexer(ix *indexer.Indexer) { r.indexer(ix).Touch() }

// SlotChange implements store.Journal.
func (r *GraphRestorer) SlotChange(ix *indexer.Indexer, i uint32) { r.indexer(ix).LogSlot(i) }

// VertexVectorInstall implements store.Journal.
func (r *GraphRestorer) VertexVectorInstall(typ uint32) { r.Vertices.Vectors.LogInstall(typ) }

// AdjacencyMatrixInstall implements store.Journal.
func (r *GraphRestorer) AdjacencyMatrixInstall(et uint32) { r.Edges.Matrices.LogInstall(et) }

// VertexValueChange implements store.Journal.
func (r *GraphRestorer) VertexValueChange(typ, i uint32) { r.Vertices.Vectors.LogElement(typ, i) }

// EdgeValueChange implements store.Journal.
func (r *GraphRestorer) EdgeValueChange(et uint32, k sparse.Coord) {
	r.Edges.Matrices.LogElement(et, k)
}

// VertexVectorOverwrite implements store.Journal.
func (r *GraphRestorer) VertexVectorOverwrite(typ uint32) { r.Vertices.Vectors.LogOverwrite(typ) }

// AdjacencyMatrixOverwrite implements store.Journal.
func (r *GraphRestorer) AdjacencyMatrixOverwrite(et uint32) { r.Edges.Matrices.LogOverwrite(et) }

// IsEmpty reports whether no change was recorded since the baseline.
func (r *GraphRestorer) IsEmpty() bool {
	return r.Vertices.Types.IsEmpty() && r.Vertices.Elements.IsEmpty() &&
		r.Vertices.Vectors.IsEmpty() && r.Edges.Types.IsEmpty() && r.Edges.Matrices.IsEmpty()
}

// Revert restores the graph to the baseline and resets the restorer.
// Elements are undone first, then containers are resized to the baseline
// capacity, then appended type slots are truncated, then the indexers are
// restored.
func (r *GraphRestorer) Revert() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("restore: revert failed: %v", p)
		}
		r.Reset()
	}()

	r.Vertices.Vectors.ReplayElements()
	r.Edges.Matrices.ReplayElements()

	if capacity, ok := r.Vertices.Elements.BaselineCapacity(); ok && capacity != r.g.VertexCapacity() {
		r.g.ResizeContainers(capacity)
	}

	r.Vertices.Vectors.Truncate()
	r.Edges.Matrices.Truncate()

	r.Vertices.Types.Revert()
	r.Vertices.Elements.Revert()
	r.Edges.Types.Revert()
	return nil
}

// Reset discards the recorded changes, making the current state the
// baseline.
func (r *GraphRestorer) Reset() {
	r.Vertices.Types.Reset()
	r.Vertices.Elements.Reset()
	r.Vertices.Vectors.Reset()
	r.Edges.Types.Reset()
	r.Edges.Matrices.Reset()
}
