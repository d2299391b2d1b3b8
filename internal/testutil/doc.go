// Package testutil provides testing utilities for propgraph.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and random mutation workloads.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	for _, op := range rng.Ops(100, testutil.Bounds{Vertices: 16, Types: 4}) {
//	    switch op.Kind { ... }
//	}
package testutil
