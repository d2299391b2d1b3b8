// Package container wraps the sparse engine's vectors and matrices into the
// typed containers a property graph stores per vertex type and edge type.
//
// Each typed container also satisfies a type-erased interface whose values
// travel as value.Value, so stores and undo logs can handle every value type
// through one code path. Writes through the erased interface coerce to the
// container's native type.
package container
