package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32n returns a pseudo-random number in [0,n).
func (r *RNG) Uint32n(n uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(r.rand.Int63n(int64(n)))
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// OpKind is a kind of graph mutation.
type OpKind uint8

const (
	AddVertex OpKind = iota
	SetVertex
	DeleteVertexValue
	DeleteVertex
	SetEdge
	DeleteEdge
	AddVertexType
	DeleteVertexType
	AddEdgeType
	DeleteEdgeType
	ReserveCapacity
	numOpKinds
)

var opNames = [...]string{
	"add_vertex", "set_vertex", "delete_vertex_value", "delete_vertex",
	"set_edge", "delete_edge", "add_vertex_type", "delete_vertex_type",
	"add_edge_type", "delete_edge_type", "reserve_capacity",
}

func (k OpKind) String() string {
	if k < numOpKinds {
		return opNames[k]
	}
	return "unknown"
}

// Op is one random mutation. Indices are drawn from Bounds and may address
// slots that are not in use; drivers are expected to ignore such errors.
type Op struct {
	Kind  OpKind
	Type  uint32
	Tail  uint32
	Head  uint32
	Value float64
}

// Bounds limit the indices drawn for a workload.
type Bounds struct {
	// Vertices bounds vertex indices and capacity reservations.
	Vertices uint32
	// Types bounds vertex type and edge type indices.
	Types uint32
}

// weights skew workloads towards element writes; type churn is rare.
var weights = [numOpKinds]int{
	AddVertex:         6,
	SetVertex:         6,
	DeleteVertexValue: 2,
	DeleteVertex:      2,
	SetEdge:           8,
	DeleteEdge:        2,
	AddVertexType:     1,
	DeleteVertexType:  1,
	AddEdgeType:       1,
	DeleteEdgeType:    1,
	ReserveCapacity:   1,
}

// Ops generates n random mutations.
func (r *RNG) Ops(n int, b Bounds) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, w := range weights {
		total += w
	}

	ops := make([]Op, n)
	for i := range ops {
		pick := r.rand.Intn(total)
		var kind OpKind
		for k, w := range weights {
			if pick < w {
				kind = OpKind(k)
				break
			}
			pick -= w
		}
		ops[i] = Op{
			Kind:  kind,
			Type:  uint32(r.rand.Int63n(int64(max(b.Types, 1)))),
			Tail:  uint32(r.rand.Int63n(int64(max(b.Vertices, 1)))),
			Head:  uint32(r.rand.Int63n(int64(max(b.Vertices, 1)))),
			Value: float64(r.rand.Intn(512)) - 128 + r.rand.Float64(),
		}
	}
	return ops
}
