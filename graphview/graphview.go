// Package graphview exposes one edge type of a propgraph graph as a gonum
// graph.WeightedDirected, so that gonum's path, traverse and topo
// algorithms can run on it.
//
// A view is a copy taken when New is called. It does not follow later
// changes to the graph and may be used after the View or transaction it was
// taken in has ended.
package graphview

import (
	"iter"
	"maps"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/hupe1980/propgraph"
	"github.com/hupe1980/propgraph/value"
)

// Source is implemented by *propgraph.Reader and *propgraph.Tx.
type Source interface {
	VertexIndices() ([]uint32, error)
	Edges(et uint32) (iter.Seq2[propgraph.Edge, value.Value], error)
}

// Options configure a view.
type Options struct {
	// Weight converts an edge weight to float64. Defaults to
	// value.Value.Float64, which maps bool weights to 0 and 1.
	Weight func(value.Value) float64
	// Self is the weight reported between a vertex and itself when no
	// self-loop exists.
	Self float64
	// Absent is the weight reported for missing edges.
	Absent float64
}

// Graph is a read-only snapshot of an edge type. Node IDs are vertex
// indices.
type Graph struct {
	opts  Options
	nodes []graph.Node
	valid map[int64]struct{}
	from  map[int64]map[int64]float64
	to    map[int64]map[int64]float64
}

var _ graph.WeightedDirected = (*Graph)(nil)

// New snapshots edge type et of src. Every vertex of the graph is a node,
// including vertices without edges of type et.
func New(src Source, et uint32, optFns ...func(o *Options)) (*Graph, error) {
	opts := Options{
		Weight: value.Value.Float64,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	vertices, err := src.VertexIndices()
	if err != nil {
		return nil, err
	}
	edges, err := src.Edges(et)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		opts:  opts,
		nodes: make([]graph.Node, 0, len(vertices)),
		valid: make(map[int64]struct{}, len(vertices)),
		from:  make(map[int64]map[int64]float64),
		to:    make(map[int64]map[int64]float64),
	}
	for _, v := range vertices {
		id := int64(v)
		g.nodes = append(g.nodes, simple.Node(id))
		g.valid[id] = struct{}{}
	}
	for e, w := range edges {
		u, v := int64(e.Tail), int64(e.Head)
		weight := opts.Weight(w)
		link(g.from, u, v, weight)
		link(g.to, v, u, weight)
	}
	return g, nil
}

func link(adj map[int64]map[int64]float64, u, v int64, w float64) {
	m, ok := adj[u]
	if !ok {
		m = make(map[int64]float64)
		adj[u] = m
	}
	m[v] = w
}

// Node returns the node with the given ID if it is a vertex, nil
// otherwise.
func (g *Graph) Node(id int64) graph.Node {
	if _, ok := g.valid[id]; !ok {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns all vertices in ascending order.
func (g *Graph) Nodes() graph.Nodes {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(g.nodes)
}

// From returns the heads of the edges leaving id in ascending order.
func (g *Graph) From(id int64) graph.Nodes { return neighbours(g.from[id]) }

// To returns the tails of the edges entering id in ascending order.
func (g *Graph) To(id int64) graph.Nodes { return neighbours(g.to[id]) }

func neighbours(adj map[int64]float64) graph.Nodes {
	if len(adj) == 0 {
		return graph.Empty
	}
	ids := slices.Sorted(maps.Keys(adj))
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = simple.Node(id)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether an edge exists between x and y in either
// direction.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports whether the edge u->v exists.
func (g *Graph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.from[uid][vid]
	return ok
}

// Edge returns the edge u->v, or nil.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	e := g.WeightedEdge(uid, vid)
	if e == nil {
		return nil
	}
	return e
}

// WeightedEdge returns the edge u->v with its weight, or nil.
func (g *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	w, ok := g.from[uid][vid]
	if !ok {
		return nil
	}
	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: w}
}

// Weight returns the weight of the edge x->y. Without such an edge it
// returns Self with ok=true when x == y, and Absent with ok=false
// otherwise.
func (g *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	if w, ok := g.from[xid][yid]; ok {
		return w, true
	}
	if xid == yid {
		return g.opts.Self, true
	}
	return g.opts.Absent, false
}
