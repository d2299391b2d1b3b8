package restore

import (
	"github.com/hupe1980/propgraph/internal/container"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/value"
)

type matrixLog = ElementLog[sparse.Coord, value.Value, container.AnyAdjacencyMatrix]

type matrixTarget struct{ m container.AnyAdjacencyMatrix }

func (t matrixTarget) RestoreValue(k sparse.Coord, x value.Value) { t.m.SetValue(k, x) }
func (t matrixTarget) RestoreEmpty(k sparse.Coord)                { t.m.Drop(k) }
func (t matrixTarget) RestoreSize(n int)                          { t.m.Resize(n) }

// AdjacencyMatricesRestorer undoes changes to the adjacency matrices of a
// graph, keyed by (tail, head).
type AdjacencyMatricesRestorer struct {
	g      *store.Graph
	logs   map[uint32]*matrixLog
	length int
	sized  bool
}

// NewAdjacencyMatricesRestorer creates a restorer for g's adjacency
// matrices.
func NewAdjacencyMatricesRestorer(g *store.Graph) *AdjacencyMatricesRestorer {
	return &AdjacencyMatricesRestorer{g: g, logs: make(map[uint32]*matrixLog)}
}

func (r *AdjacencyMatricesRestorer) appended(et uint32) bool {
	if !r.sized {
		r.length, r.sized = r.g.NumAdjacencyMatrixSlots(), true
	}
	return int(et) >= r.length
}

func (r *AdjacencyMatricesRestorer) log(et uint32, m container.AnyAdjacencyMatrix) *matrixLog {
	l, ok := r.logs[et]
	if !ok {
		l = NewElementLog[sparse.Coord, value.Value, container.AnyAdjacencyMatrix]()
		l.CapacityOrSize(m.Dim())
		r.logs[et] = l
	}
	return l
}

// LogElement records the current weight at k of edge type et.
func (r *AdjacencyMatricesRestorer) LogElement(et uint32, k sparse.Coord) {
	if r.appended(et) {
		return
	}
	m := r.g.AdjacencyMatrixSlot(et)
	l := r.log(et, m)
	if l.Touched(k) {
		return
	}
	if x, ok := m.GetValue(k); ok {
		l.ElementValue(k, x)
	} else {
		l.EmptyElement(k)
	}
}

// LogInstall records the matrix about to be replaced at slot et.
func (r *AdjacencyMatricesRestorer) LogInstall(et uint32) {
	if r.appended(et) {
		return
	}
	old := r.g.AdjacencyMatrixSlot(et)
	r.log(et, old).FullSnapshot(old, matrixTarget{old})
}

// LogOverwrite records a copy of the matrix at slot et before a bulk write.
func (r *AdjacencyMatricesRestorer) LogOverwrite(et uint32) {
	if r.appended(et) {
		return
	}
	cur := r.g.AdjacencyMatrixSlot(et)
	l := r.log(et, cur)
	if _, ok := l.Snapshot(); ok {
		return
	}
	snap := cur.CloneAny()
	l.FullSnapshot(snap, matrixTarget{snap})
}

// ReplayElements undoes every logged matrix change.
func (r *AdjacencyMatricesRestorer) ReplayElements() {
	for et, l := range r.logs {
		if snap, ok := l.Snapshot(); ok {
			r.g.RestoreAdjacencyMatrixSlot(et, snap)
			continue
		}
		l.Replay(matrixTarget{r.g.AdjacencyMatrixSlot(et)})
	}
}

// Truncate drops the slots appended since the baseline.
func (r *AdjacencyMatricesRestorer) Truncate() {
	if r.sized {
		r.g.TruncateAdjacencyMatrixSlots(r.length)
	}
}

// IsEmpty reports whether nothing was logged.
func (r *AdjacencyMatricesRestorer) IsEmpty() bool { return !r.sized && len(r.logs) == 0 }

// Reset discards the log.
func (r *AdjacencyMatricesRestorer) Reset() {
	clear(r.logs)
	r.length, r.sized = 0, false
}
