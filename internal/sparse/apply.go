package sparse

import "github.com/hupe1980/propgraph/value"

// ApplyMatrix computes C⟨M⟩ = accum(C, op(A)).
func ApplyMatrix[T value.Type](c *Matrix[T], mask MatrixMask, accum BinaryOp[T], op UnaryOp[T], a *Matrix[T], d Descriptor) error {
	if d.TransposeA {
		a = a.Transpose()
	}
	t := NewMatrix[T](a.NRows(), a.NCols())
	a.Scan(func(k Coord, x T) bool {
		t.SetUnchecked(k, op(x))
		return true
	})
	return writeMatrix(c, mask, accum, t, d)
}

// ApplyVector computes w⟨m⟩ = accum(w, op(u)).
func ApplyVector[T value.Type](w *Vector[T], mask VectorMask, accum BinaryOp[T], op UnaryOp[T], u *Vector[T], d Descriptor) error {
	t := NewVector[T](u.Size())
	u.Scan(func(i uint32, x T) bool {
		t.SetUnchecked(i, op(x))
		return true
	})
	return writeVector(w, mask, accum, t, d)
}

// SelectMatrix computes C⟨M⟩ = accum(C, A(pred)), keeping the elements for
// which pred returns true.
func SelectMatrix[T value.Type](c *Matrix[T], mask MatrixMask, accum BinaryOp[T], pred IndexUnaryOp[T], a *Matrix[T], d Descriptor) error {
	if d.TransposeA {
		a = a.Transpose()
	}
	t := NewMatrix[T](a.NRows(), a.NCols())
	a.Scan(func(k Coord, x T) bool {
		if pred(x, k.Row, k.Col) {
			t.SetUnchecked(k, x)
		}
		return true
	})
	return writeMatrix(c, mask, accum, t, d)
}

// SelectVector computes w⟨m⟩ = accum(w, u(pred)).
func SelectVector[T value.Type](w *Vector[T], mask VectorMask, accum BinaryOp[T], pred IndexUnaryOp[T], u *Vector[T], d Descriptor) error {
	t := NewVector[T](u.Size())
	u.Scan(func(i uint32, x T) bool {
		if pred(x, i, 0) {
			t.SetUnchecked(i, x)
		}
		return true
	})
	return writeVector(w, mask, accum, t, d)
}

// ConvertVector returns a copy of u with every element coerced to To.
func ConvertVector[To, From value.Type](u *Vector[From]) *Vector[To] {
	out := NewVector[To](u.Size())
	u.Scan(func(i uint32, x From) bool {
		out.SetUnchecked(i, value.Coerce[To](x))
		return true
	})
	return out
}

// ConvertMatrix returns a copy of a with every element coerced to To.
func ConvertMatrix[To, From value.Type](a *Matrix[From]) *Matrix[To] {
	out := NewMatrix[To](a.NRows(), a.NCols())
	a.Scan(func(k Coord, x From) bool {
		out.SetUnchecked(k, value.Coerce[To](x))
		return true
	})
	return out
}

// ApplyScalarMatrix computes C⟨M⟩ = accum(C, op(A, s)), binding s as the
// second operand.
func ApplyScalarMatrix[T value.Type](c *Matrix[T], mask MatrixMask, accum BinaryOp[T], op BinaryOp[T], a *Matrix[T], s T, d Descriptor) error {
	return ApplyMatrix(c, mask, accum, BindSecond(op, s), a, d)
}
