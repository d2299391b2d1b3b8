package restore

import (
	"github.com/hupe1980/propgraph/internal/container"
	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/value"
)

type vectorLog = ElementLog[uint32, value.Value, container.AnyVertexVector]

type vectorTarget struct{ v container.AnyVertexVector }

func (t vectorTarget) RestoreValue(i uint32, x value.Value) { t.v.SetValue(i, x) }
func (t vectorTarget) RestoreEmpty(i uint32)                { t.v.Drop(i) }
func (t vectorTarget) RestoreSize(n int)                    { t.v.Resize(n) }

// VertexVectorsRestorer undoes changes to the vertex vectors of a graph:
// element logs per vertex type slot, snapshots of replaced or overwritten
// vectors and the slot slice length.
type VertexVectorsRestorer struct {
	g      *store.Graph
	logs   map[uint32]*vectorLog
	length int
	sized  bool
}

// NewVertexVectorsRestorer creates a restorer for g's vertex vectors.
func NewVertexVectorsRestorer(g *store.Graph) *VertexVectorsRestorer {
	return &VertexVectorsRestorer{g: g, logs: make(map[uint32]*vectorLog)}
}

func (r *VertexVectorsRestorer) baseline() {
	if !r.sized {
		r.length, r.sized = r.g.NumVertexVectorSlots(), true
	}
}

// appended reports whether slot typ did not exist at the baseline, so
// truncation alone undoes it.
func (r *VertexVectorsRestorer) appended(typ uint32) bool {
	r.baseline()
	return int(typ) >= r.length
}

func (r *VertexVectorsRestorer) log(typ uint32, v container.AnyVertexVector) *vectorLog {
	l, ok := r.logs[typ]
	if !ok {
		l = NewElementLog[uint32, value.Value, container.AnyVertexVector]()
		l.CapacityOrSize(v.Size())
		r.logs[typ] = l
	}
	return l
}

// LogElement records the current value of element i of vertex type typ.
func (r *VertexVectorsRestorer) LogElement(typ, i uint32) {
	if r.appended(typ) {
		return
	}
	v := r.g.VertexVectorSlot(typ)
	l := r.log(typ, v)
	if l.Touched(i) {
		return
	}
	if x, ok := v.GetValue(i); ok {
		l.ElementValue(i, x)
	} else {
		l.EmptyElement(i)
	}
}

// LogInstall records the vector about to be replaced at slot typ. The
// replaced vector leaves the graph untouched from then on, so it becomes
// the snapshot itself.
func (r *VertexVectorsRestorer) LogInstall(typ uint32) {
	if r.appended(typ) {
		return
	}
	old := r.g.VertexVectorSlot(typ)
	r.log(typ, old).FullSnapshot(old, vectorTarget{old})
}

// LogOverwrite records a copy of the vector at slot typ before a bulk
// write.
func (r *VertexVectorsRestorer) LogOverwrite(typ uint32) {
	if r.appended(typ) {
		return
	}
	cur := r.g.VertexVectorSlot(typ)
	l := r.log(typ, cur)
	if _, ok := l.Snapshot(); ok {
		return
	}
	snap := cur.CloneAny()
	l.FullSnapshot(snap, vectorTarget{snap})
}

// ReplayElements undoes every logged vector change.
func (r *VertexVectorsRestorer) ReplayElements() {
	for typ, l := range r.logs {
		if snap, ok := l.Snapshot(); ok {
			r.g.RestoreVertexVectorSlot(typ, snap)
			continue
		}
		l.Replay(vectorTarget{r.g.VertexVectorSlot(typ)})
	}
}

// Truncate drops the slots appended since the baseline.
func (r *VertexVectorsRestorer) Truncate() {
	if r.sized {
		r.g.TruncateVertexVectorSlots(r.length)
	}
}

// IsEmpty reports whether nothing was logged.
func (r *VertexVectorsRestorer) IsEmpty() bool { return !r.sized && len(r.logs) == 0 }

// Reset discards the log.
func (r *VertexVectorsRestorer) Reset() {
	clear(r.logs)
	r.length, r.sized = 0, false
}
