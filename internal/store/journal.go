package store

import (
	"github.com/hupe1980/propgraph/internal/indexer"
	"github.com/hupe1980/propgraph/internal/sparse"
)

// Journal is told about every mutation before it happens.
type Journal interface {
	// TouchIndexer precedes any change to ix's capacity or free list.
	TouchIndexer(ix *indexer.Indexer)
	// SlotChange precedes a claim or release of slot i of ix.
	SlotChange(ix *indexer.Indexer, i uint32)
	// VertexVectorInstall precedes installing a fresh vector at a vertex
	// type slot.
	VertexVectorInstall(typ uint32)
	// AdjacencyMatrixInstall precedes installing a fresh matrix at an edge
	// type slot.
	AdjacencyMatrixInstall(et uint32)
	// VertexValueChange precedes setting or dropping element i of a vertex
	// vector.
	VertexValueChange(typ, i uint32)
	// EdgeValueChange precedes setting or dropping element k of an
	// adjacency matrix.
	EdgeValueChange(et uint32, k sparse.Coord)
	// VertexVectorOverwrite precedes a bulk write into a vertex vector.
	VertexVectorOverwrite(typ uint32)
	// AdjacencyMatrixOverwrite precedes a bulk write into an adjacency
	// matrix.
	AdjacencyMatrixOverwrite(et uint32)
}

type nopJournal struct{}

func (nopJournal) TouchIndexer(*indexer.Indexer)        {}
func (nopJournal) SlotChange(*indexer.Indexer, uint32)  {}
func (nopJournal) VertexVectorInstall(uint32)           {}
func (nopJournal) AdjacencyMatrixInstall(uint32)        {}
func (nopJournal) VertexValueChange(uint32, uint32)     {}
func (nopJournal) EdgeValueChange(uint32, sparse.Coord) {}
func (nopJournal) VertexVectorOverwrite(uint32)         {}
func (nopJournal) AdjacencyMatrixOverwrite(uint32)      {}
