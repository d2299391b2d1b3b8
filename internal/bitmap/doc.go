// Package bitmap provides Mask, a compressed index set built on Roaring
// bitmaps.
//
// Masks back every "which slots are set" question in the graph store:
//
//   - the indexer's valid and private slot sets
//   - the cached incidence masks of adjacency matrices (vertices with
//     outgoing, incoming or any edges)
//   - operator output masks, optionally complemented
//
// Roaring keeps sparse and dense regions compact at the same time, which
// matters because slot sets start small and grow by doubling.
package bitmap
