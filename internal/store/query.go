package store

import (
	"context"
	"slices"
	"sync/atomic"
)

// fanOut runs fn once per index in slots on the context's worker pool.
func (g *Graph) fanOut(ctx context.Context, slots []uint32, fn func(slot uint32) error) error {
	return g.ctx.Workers().Run(ctx, len(slots), func(_ context.Context, i int) error {
		return fn(slots[i])
	})
}

// VertexTypesOf returns the vertex types, public or private, for which
// vertex idx has a value, in ascending order.
func (g *Graph) VertexTypesOf(ctx context.Context, idx uint32) ([]uint32, error) {
	if err := g.vertices.elements.TryIndexValidity(idx); err != nil {
		return nil, err
	}
	types := slices.Collect(g.vertices.types.ValidIndices())
	hit := make([]bool, len(types))
	err := g.ctx.Workers().Run(ctx, len(types), func(_ context.Context, i int) error {
		hit[i] = g.vertices.vectors[types[i]].IsElement(idx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := types[:0]
	for i, typ := range types {
		if hit[i] {
			out = append(out, typ)
		}
	}
	return out, nil
}

// OutDegree returns the number of edges of any type with tail idx.
func (g *Graph) OutDegree(ctx context.Context, idx uint32) (int, error) {
	return g.degree(ctx, idx, true)
}

// InDegree returns the number of edges of any type with head idx.
func (g *Graph) InDegree(ctx context.Context, idx uint32) (int, error) {
	return g.degree(ctx, idx, false)
}

func (g *Graph) degree(ctx context.Context, idx uint32, out bool) (int, error) {
	if err := g.vertices.elements.TryIndexValidity(idx); err != nil {
		return 0, err
	}
	var total atomic.Int64
	err := g.fanOut(ctx, slices.Collect(g.edges.types.ValidIndices()), func(et uint32) error {
		m := g.edges.matrices[et]
		if out {
			total.Add(int64(m.OutDegree(idx)))
		} else {
			total.Add(int64(m.InDegree(idx)))
		}
		return nil
	})
	return int(total.Load()), err
}

// IncidentEdgeTypes returns the edge types, public or private, with at
// least one edge incident to idx, in ascending order.
func (g *Graph) IncidentEdgeTypes(ctx context.Context, idx uint32) ([]uint32, error) {
	if err := g.vertices.elements.TryIndexValidity(idx); err != nil {
		return nil, err
	}
	types := slices.Collect(g.edges.types.ValidIndices())
	hit := make([]bool, len(types))
	err := g.ctx.Workers().Run(ctx, len(types), func(_ context.Context, i int) error {
		hit[i] = g.edges.matrices[types[i]].IncidenceMask().Contains(idx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := types[:0]
	for i, et := range types {
		if hit[i] {
			out = append(out, et)
		}
	}
	return out, nil
}

// Stats summarises the contents of a graph.
type Stats struct {
	Vertices     int
	VertexTypes  int
	EdgeTypes    int
	VertexValues int
	Edges        int
	Capacity     int
}

// Stats counts the graph's contents, summing per-type counts in parallel.
func (g *Graph) Stats(ctx context.Context) (Stats, error) {
	s := Stats{
		Vertices:    g.NumberOfVertices(),
		VertexTypes: g.vertices.types.NumberOfIndexedElements(),
		EdgeTypes:   g.edges.types.NumberOfIndexedElements(),
		Capacity:    g.VertexCapacity(),
	}
	var values, edges atomic.Int64
	if err := g.fanOut(ctx, slices.Collect(g.vertices.types.ValidIndices()), func(typ uint32) error {
		values.Add(int64(g.vertices.vectors[typ].NVals()))
		return nil
	}); err != nil {
		return Stats{}, err
	}
	if err := g.fanOut(ctx, slices.Collect(g.edges.types.ValidIndices()), func(et uint32) error {
		edges.Add(int64(g.edges.matrices[et].NVals()))
		return nil
	}); err != nil {
		return Stats{}, err
	}
	s.VertexValues = int(values.Load())
	s.Edges = int(edges.Load())
	return s, nil
}
