package sparse

import (
	"fmt"
	"slices"

	"github.com/hupe1980/propgraph/value"
)

// rowAccumulator collects the partial products of one output row.
type rowAccumulator[T value.Type] struct {
	add  BinaryOp[T]
	vals map[uint32]T
}

func newRowAccumulator[T value.Type](add BinaryOp[T]) *rowAccumulator[T] {
	return &rowAccumulator[T]{add: add, vals: make(map[uint32]T)}
}

func (r *rowAccumulator[T]) add1(j uint32, p T) {
	if old, ok := r.vals[j]; ok {
		r.vals[j] = r.add(old, p)
		return
	}
	r.vals[j] = p
}

// flushRow moves the accumulated row into m and resets the accumulator.
func (r *rowAccumulator[T]) flushRow(m *Matrix[T], row uint32) {
	if len(r.vals) == 0 {
		return
	}
	cols := make([]uint32, 0, len(r.vals))
	for j := range r.vals {
		cols = append(cols, j)
	}
	slices.Sort(cols)
	for _, j := range cols {
		m.SetUnchecked(Coord{Row: row, Col: j}, r.vals[j])
	}
	clear(r.vals)
}

func (r *rowAccumulator[T]) flushVector(v *Vector[T]) {
	for j, x := range r.vals {
		v.SetUnchecked(j, x)
	}
	clear(r.vals)
}

// MxM computes C⟨M⟩ = accum(C, A ⊕.⊗ B).
func MxM[T value.Type](c *Matrix[T], mask MatrixMask, accum BinaryOp[T], s Semiring[T], a, b *Matrix[T], d Descriptor) error {
	if d.TransposeA {
		a = a.Transpose()
	}
	if d.TransposeB {
		b = b.Transpose()
	}
	if a.NCols() != b.NRows() {
		return dimensionError("mxm", fmt.Sprintf("%d inner rows", a.NCols()), fmt.Sprint(b.NRows()))
	}
	if c.NRows() != a.NRows() || c.NCols() != b.NCols() {
		return dimensionError("mxm",
			fmt.Sprintf("%dx%d output", a.NRows(), b.NCols()),
			fmt.Sprintf("%dx%d", c.NRows(), c.NCols()))
	}

	// Gustavson: row i of the product is the ⊕ of row k of B scaled by A(i,k).
	t := NewMatrix[T](a.NRows(), b.NCols())
	acc := newRowAccumulator(s.Add.Op)
	var cur uint32
	started := false
	a.Scan(func(ka Coord, x T) bool {
		if started && ka.Row != cur {
			acc.flushRow(t, cur)
		}
		cur, started = ka.Row, true
		b.ScanRow(ka.Col, func(j uint32, y T) bool {
			acc.add1(j, s.Multiply(x, y))
			return true
		})
		return true
	})
	if started {
		acc.flushRow(t, cur)
	}
	return writeMatrix(c, mask, accum, t, d)
}

// MxV computes w⟨m⟩ = accum(w, A ⊕.⊗ u).
func MxV[T value.Type](w *Vector[T], mask VectorMask, accum BinaryOp[T], s Semiring[T], a *Matrix[T], u *Vector[T], d Descriptor) error {
	if d.TransposeA {
		a = a.Transpose()
	}
	if a.NCols() != u.Size() {
		return dimensionError("mxv", fmt.Sprint(a.NCols()), fmt.Sprint(u.Size()))
	}
	if w.Size() != a.NRows() {
		return dimensionError("mxv", fmt.Sprint(a.NRows()), fmt.Sprint(w.Size()))
	}
	t := NewVector[T](a.NRows())
	acc := newRowAccumulator(s.Add.Op)
	a.Scan(func(k Coord, x T) bool {
		if y, ok := u.Get(k.Col); ok {
			acc.add1(k.Row, s.Multiply(x, y))
		}
		return true
	})
	acc.flushVector(t)
	return writeVector(w, mask, accum, t, d)
}

// VxM computes w⟨m⟩ = accum(w, u ⊕.⊗ B).
func VxM[T value.Type](w *Vector[T], mask VectorMask, accum BinaryOp[T], s Semiring[T], u *Vector[T], b *Matrix[T], d Descriptor) error {
	if d.TransposeB {
		b = b.Transpose()
	}
	if u.Size() != b.NRows() {
		return dimensionError("vxm", fmt.Sprint(b.NRows()), fmt.Sprint(u.Size()))
	}
	if w.Size() != b.NCols() {
		return dimensionError("vxm", fmt.Sprint(b.NCols()), fmt.Sprint(w.Size()))
	}
	t := NewVector[T](b.NCols())
	acc := newRowAccumulator(s.Add.Op)
	u.Scan(func(k uint32, x T) bool {
		b.ScanRow(k, func(j uint32, y T) bool {
			acc.add1(j, s.Multiply(x, y))
			return true
		})
		return true
	})
	acc.flushVector(t)
	return writeVector(w, mask, accum, t, d)
}

// ReduceRows computes w⟨m⟩ = accum(w, ⊕ⱼ A(:, j)), one value per non-empty
// row of A.
func ReduceRows[T value.Type](w *Vector[T], mask VectorMask, accum BinaryOp[T], monoid Monoid[T], a *Matrix[T], d Descriptor) error {
	if d.TransposeA {
		a = a.Transpose()
	}
	if w.Size() != a.NRows() {
		return dimensionError("reduce", fmt.Sprint(a.NRows()), fmt.Sprint(w.Size()))
	}
	t := NewVector[T](a.NRows())
	acc := newRowAccumulator(monoid.Op)
	a.Scan(func(k Coord, x T) bool {
		acc.add1(k.Row, x)
		return true
	})
	acc.flushVector(t)
	return writeVector(w, mask, accum, t, d)
}

// ReduceMatrix folds every element of a into one scalar.
func ReduceMatrix[T value.Type](monoid Monoid[T], a *Matrix[T]) T {
	out := monoid.Identity
	a.Scan(func(_ Coord, x T) bool {
		out = monoid.Op(out, x)
		return true
	})
	return out
}

// ReduceVector folds every element of u into one scalar.
func ReduceVector[T value.Type](monoid Monoid[T], u *Vector[T]) T {
	out := monoid.Identity
	u.Scan(func(_ uint32, x T) bool {
		out = monoid.Op(out, x)
		return true
	})
	return out
}
