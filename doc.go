// Package propgraph provides a typed, transactional, in-memory property
// graph built on sparse linear algebra.
//
// Vertices and edges are grouped into types. Every vertex type stores one
// value per vertex in a sparse vector; every edge type stores one weight per
// directed edge in a sparse square adjacency matrix. The value type of each
// vertex and edge type is one of 13 native Go types (see package value) and
// values are coerced between them on access.
//
// Vertex types, edge types and vertices are addressed by uint32 indices
// that are reused after deletion. All vertex types and edge types share the
// vertex index space: growing it resizes every vector and matrix.
//
// # Quick Start
//
//	g := propgraph.New()
//
//	err := g.Update(ctx, func(tx *propgraph.Tx) error {
//	    person, err := propgraph.AddNewVertexType[uint32](tx) // age
//	    if err != nil {
//	        return err
//	    }
//	    knows, err := propgraph.AddNewEdgeType[float64](tx) // affinity
//	    if err != nil {
//	        return err
//	    }
//	    alice, _ := propgraph.AddVertex(tx, person, uint32(34))
//	    bob, _ := propgraph.AddVertex(tx, person, uint32(29))
//	    return propgraph.SetEdge(tx, knows, alice, bob, 0.8)
//	})
//
// # Transactions
//
// All writes happen in a transaction. Update commits when its function
// returns nil and reverts on error or panic. Begin gives manual control:
//
//	tx := g.Begin(ctx)
//	defer tx.Close() // reverts anything not committed
//	...
//	if err := tx.Commit(); err != nil { ... }
//
// A transaction holds the graph's write lock until Close. Reads outside a
// transaction use View, which takes the read lock.
//
// Reverting restores the graph exactly: values, edges, types, the indices
// in use, the order in which freed indices are reused and the vertex
// capacity.
//
// # Operators
//
// GraphBLAS-style operators compute into an existing vertex or edge type:
// matrix multiplication over a semiring (MultiplyEdgeTypes,
// MultiplyEdgeTypeByVertexType, MultiplyVertexTypeByEdgeType), element-wise
// union and intersection, apply and select. Options add a mask, an
// accumulator and operand transposition.
//
//	// one Bellman-Ford relaxation step: dist = min(dist, dist min.+ roads)
//	err := propgraph.MultiplyVertexTypeByEdgeType(tx, dist, dist, roads,
//	    propgraph.MinPlus[float64](),
//	    propgraph.Options[float64]{Accumulator: propgraph.Min[float64]()})
//
// Packages graphview and metrics/prometheus adapt a graph to gonum's graph
// algorithms and to Prometheus.
package propgraph
