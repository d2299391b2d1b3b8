package sparse

import (
	"fmt"

	"github.com/hupe1980/propgraph/value"
)

func sameShape[T value.Type](op string, a, b *Matrix[T]) error {
	if a.NRows() != b.NRows() || a.NCols() != b.NCols() {
		return dimensionError(op,
			fmt.Sprintf("%dx%d", a.NRows(), a.NCols()),
			fmt.Sprintf("%dx%d", b.NRows(), b.NCols()))
	}
	return nil
}

// EWiseAddMatrix computes C⟨M⟩ = accum(C, A ∪op B): elements present in
// both operands are combined with op, the others are copied.
func EWiseAddMatrix[T value.Type](c *Matrix[T], mask MatrixMask, accum BinaryOp[T], op BinaryOp[T], a, b *Matrix[T], d Descriptor) error {
	if d.TransposeA {
		a = a.Transpose()
	}
	if d.TransposeB {
		b = b.Transpose()
	}
	if err := sameShape("ewise add", a, b); err != nil {
		return err
	}
	t := a.Clone()
	b.Scan(func(k Coord, y T) bool {
		if x, ok := a.Get(k); ok {
			y = op(x, y)
		}
		t.SetUnchecked(k, y)
		return true
	})
	return writeMatrix(c, mask, accum, t, d)
}

// EWiseMultMatrix computes C⟨M⟩ = accum(C, A ∩op B): only elements present
// in both operands are produced.
func EWiseMultMatrix[T value.Type](c *Matrix[T], mask MatrixMask, accum BinaryOp[T], op BinaryOp[T], a, b *Matrix[T], d Descriptor) error {
	if d.TransposeA {
		a = a.Transpose()
	}
	if d.TransposeB {
		b = b.Transpose()
	}
	if err := sameShape("ewise mult", a, b); err != nil {
		return err
	}
	t := NewMatrix[T](a.NRows(), a.NCols())
	a.Scan(func(k Coord, x T) bool {
		if y, ok := b.Get(k); ok {
			t.SetUnchecked(k, op(x, y))
		}
		return true
	})
	return writeMatrix(c, mask, accum, t, d)
}

// EWiseAddVector is the vector form of EWiseAddMatrix.
func EWiseAddVector[T value.Type](w *Vector[T], mask VectorMask, accum BinaryOp[T], op BinaryOp[T], u, v *Vector[T], d Descriptor) error {
	if u.Size() != v.Size() {
		return dimensionError("ewise add", fmt.Sprint(u.Size()), fmt.Sprint(v.Size()))
	}
	t := u.Clone()
	v.Scan(func(i uint32, y T) bool {
		if x, ok := u.Get(i); ok {
			y = op(x, y)
		}
		t.SetUnchecked(i, y)
		return true
	})
	return writeVector(w, mask, accum, t, d)
}

// EWiseMultVector is the vector form of EWiseMultMatrix.
func EWiseMultVector[T value.Type](w *Vector[T], mask VectorMask, accum BinaryOp[T], op BinaryOp[T], u, v *Vector[T], d Descriptor) error {
	if u.Size() != v.Size() {
		return dimensionError("ewise mult", fmt.Sprint(u.Size()), fmt.Sprint(v.Size()))
	}
	t := NewVector[T](u.Size())
	u.Scan(func(i uint32, x T) bool {
		if y, ok := v.Get(i); ok {
			t.SetUnchecked(i, op(x, y))
		}
		return true
	})
	return writeVector(w, mask, accum, t, d)
}
