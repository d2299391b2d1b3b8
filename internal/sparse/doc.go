// Package sparse is the sparse linear-algebra engine the graph store is built
// on.
//
// It provides a sparse Vector and a sparse Matrix over any supported value
// type, plus the GraphBLAS-style operations the store needs: matrix-matrix
// and matrix-vector multiplication over a semiring, element-wise union and
// intersection, apply and select, each with an optional output mask,
// accumulator and descriptor.
//
// # Storage
//
// Elements are kept in copy-on-write B-trees (github.com/tidwall/btree)
// ordered by index (vectors) or by (row, col) (matrices). Clone is O(1):
// the clone shares nodes with the original until either side is written,
// which makes full-container snapshots cheap for transaction rollback.
//
// # Output semantics
//
// Every operation writes its result T into an existing output C:
//
//	Z = C ⊙ T   if an accumulator ⊙ is given, else Z = T
//	C⟨M⟩ = Z    inside the mask M (complemented if requested)
//	outside M:  C is kept, or cleared when Descriptor.Replace is set
//
// A nil mask selects everything.
package sparse
