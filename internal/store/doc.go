// Package store implements the vertex store, the edge store and the graph
// that composes them.
//
// Vertex values live in one VertexVector per vertex type, edges in one
// AdjacencyMatrix per edge type. Vertex-element indices are shared by all of
// them: whenever claiming a vertex element grows the capacity, every vector
// and every matrix is resized before the claim returns.
//
// Every mutation first reports what it is about to change to the graph's
// Journal, then changes it. Transactions install a journal that records the
// undo information; outside a transaction the journal is a no-op.
//
// Operations come in checked and unchecked variants. Checked variants
// validate every index and return an error before mutating anything;
// unchecked variants skip validation and panic on indices beyond capacity.
package store
