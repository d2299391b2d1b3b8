package sparse

import (
	"fmt"

	"github.com/hupe1980/propgraph/value"
)

// VectorMask restricts which vector elements an operation may write.
// *bitmap.Mask satisfies it.
type VectorMask interface {
	Contains(i uint32) bool
}

// MatrixMask restricts which matrix elements an operation may write.
// *Matrix satisfies it structurally.
type MatrixMask interface {
	Contains(row, col uint32) bool
}

// Descriptor modifies how an operation reads its inputs and writes its
// output. The zero value is the default behaviour.
type Descriptor struct {
	// Replace clears output elements outside the mask.
	Replace bool
	// Complement inverts the mask.
	Complement bool
	// TransposeA uses the transpose of the first matrix operand.
	TransposeA bool
	// TransposeB uses the transpose of the second matrix operand.
	TransposeB bool
}

func (d Descriptor) allowVector(mask VectorMask) func(i uint32) bool {
	if mask == nil {
		return func(uint32) bool { return !d.Complement }
	}
	return func(i uint32) bool { return mask.Contains(i) != d.Complement }
}

func (d Descriptor) allowMatrix(mask MatrixMask) func(c Coord) bool {
	if mask == nil {
		return func(Coord) bool { return !d.Complement }
	}
	return func(c Coord) bool { return mask.Contains(c.Row, c.Col) != d.Complement }
}

// writeVector merges the computed result t into c following the mask,
// accumulator and replace semantics documented on the package.
func writeVector[T value.Type](c *Vector[T], mask VectorMask, accum BinaryOp[T], t *Vector[T], d Descriptor) error {
	if c.Size() != t.Size() {
		return dimensionError("write vector", fmt.Sprint(t.Size()), fmt.Sprint(c.Size()))
	}
	allow := d.allowVector(mask)
	out := NewVector[T](c.Size())
	c.Scan(func(i uint32, x T) bool {
		if allow(i) {
			if accum != nil {
				out.SetUnchecked(i, x)
			}
		} else if !d.Replace {
			out.SetUnchecked(i, x)
		}
		return true
	})
	t.Scan(func(i uint32, y T) bool {
		if !allow(i) {
			return true
		}
		if accum != nil {
			if x, ok := c.Get(i); ok {
				y = accum(x, y)
			}
		}
		out.SetUnchecked(i, y)
		return true
	})
	c.tree = out.tree
	return nil
}

func writeMatrix[T value.Type](c *Matrix[T], mask MatrixMask, accum BinaryOp[T], t *Matrix[T], d Descriptor) error {
	if c.NRows() != t.NRows() || c.NCols() != t.NCols() {
		return dimensionError("write matrix",
			fmt.Sprintf("%dx%d", t.NRows(), t.NCols()),
			fmt.Sprintf("%dx%d", c.NRows(), c.NCols()))
	}
	allow := d.allowMatrix(mask)
	out := NewMatrix[T](c.NRows(), c.NCols())
	c.Scan(func(k Coord, x T) bool {
		if allow(k) {
			if accum != nil {
				out.SetUnchecked(k, x)
			}
		} else if !d.Replace {
			out.SetUnchecked(k, x)
		}
		return true
	})
	t.Scan(func(k Coord, y T) bool {
		if !allow(k) {
			return true
		}
		if accum != nil {
			if x, ok := c.Get(k); ok {
				y = accum(x, y)
			}
		}
		out.SetUnchecked(k, y)
		return true
	})
	c.tree = out.tree
	return nil
}
