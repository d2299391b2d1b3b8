package sparse

import (
	"fmt"
	"iter"
	"math"

	"github.com/tidwall/btree"

	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/value"
)

// Coord addresses one matrix element.
type Coord struct {
	Row uint32
	Col uint32
}

// String implements fmt.Stringer.
func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

type melem[T value.Type] struct {
	c Coord
	v T
}

func melemLess[T value.Type](a, b melem[T]) bool { return a.c.Less(b.c) }

// Matrix is a sparse NRows x NCols matrix.
type Matrix[T value.Type] struct {
	nrows int
	ncols int
	tree  *btree.BTreeG[melem[T]]
}

// NewMatrix creates an empty matrix.
func NewMatrix[T value.Type](nrows, ncols int) *Matrix[T] {
	return &Matrix[T]{
		nrows: nrows,
		ncols: ncols,
		tree:  btree.NewBTreeGOptions(melemLess[T], treeOptions),
	}
}

// NewSquareMatrix creates an empty n x n matrix.
func NewSquareMatrix[T value.Type](n int) *Matrix[T] {
	return NewMatrix[T](n, n)
}

// NRows returns the number of rows.
func (m *Matrix[T]) NRows() int { return m.nrows }

// NCols returns the number of columns.
func (m *Matrix[T]) NCols() int { return m.ncols }

// NVals returns the number of stored elements.
func (m *Matrix[T]) NVals() int { return m.tree.Len() }

func (m *Matrix[T]) inBounds(c Coord) bool {
	return int(c.Row) < m.nrows && int(c.Col) < m.ncols
}

// Get returns the element at c.
func (m *Matrix[T]) Get(c Coord) (T, bool) {
	e, ok := m.tree.Get(melem[T]{c: c})
	return e.v, ok
}

// GetOrDefault returns the element at c or the zero value.
func (m *Matrix[T]) GetOrDefault(c Coord) T {
	x, _ := m.Get(c)
	return x
}

// IsElement reports whether an element is stored at c.
func (m *Matrix[T]) IsElement(c Coord) bool {
	_, ok := m.tree.Get(melem[T]{c: c})
	return ok
}

// Contains reports whether an element is stored at (row, col).
// It lets a matrix act as a structural MatrixMask.
func (m *Matrix[T]) Contains(row, col uint32) bool {
	return m.IsElement(Coord{Row: row, Col: col})
}

// Set inserts or overwrites the element at c.
func (m *Matrix[T]) Set(c Coord, x T) error {
	if !m.inBounds(c) {
		return coordRangeError(c, m.nrows, m.ncols)
	}
	m.tree.Set(melem[T]{c: c, v: x})
	return nil
}

// SetUnchecked is Set without the bounds check.
func (m *Matrix[T]) SetUnchecked(c Coord, x T) {
	m.tree.Set(melem[T]{c: c, v: x})
}

// Drop removes the element at c and reports whether one was stored.
func (m *Matrix[T]) Drop(c Coord) bool {
	_, ok := m.tree.Delete(melem[T]{c: c})
	return ok
}

// Resize changes the shape. Elements outside the new shape are removed.
func (m *Matrix[T]) Resize(nrows, ncols int) {
	if nrows < m.nrows || ncols < m.ncols {
		var drop []Coord
		m.tree.Scan(func(e melem[T]) bool {
			if int(e.c.Row) >= nrows || int(e.c.Col) >= ncols {
				drop = append(drop, e.c)
			}
			return true
		})
		for _, c := range drop {
			m.tree.Delete(melem[T]{c: c})
		}
	}
	m.nrows, m.ncols = nrows, ncols
}

// Clear removes every element, keeping the shape.
func (m *Matrix[T]) Clear() {
	m.tree.Clear()
}

// Clone returns a copy sharing storage with m until either is written.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{nrows: m.nrows, ncols: m.ncols, tree: m.tree.Copy()}
}

// ReplaceWith makes m an exact copy of other.
func (m *Matrix[T]) ReplaceWith(other *Matrix[T]) {
	m.nrows, m.ncols = other.nrows, other.ncols
	m.tree = other.tree.Copy()
}

// Scan calls fn for every element in row-major order until fn returns false.
func (m *Matrix[T]) Scan(fn func(c Coord, x T) bool) {
	m.tree.Scan(func(e melem[T]) bool {
		return fn(e.c, e.v)
	})
}

// All iterates over the stored elements in row-major order.
func (m *Matrix[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		m.Scan(yield)
	}
}

// ScanRow calls fn for every element of row in ascending column order.
func (m *Matrix[T]) ScanRow(row uint32, fn func(col uint32, x T) bool) {
	m.tree.Ascend(melem[T]{c: Coord{Row: row}}, func(e melem[T]) bool {
		if e.c.Row != row {
			return false
		}
		return fn(e.c.Col, e.v)
	})
}

// Row returns row as a sparse vector of length NCols.
func (m *Matrix[T]) Row(row uint32) *Vector[T] {
	v := NewVector[T](m.ncols)
	m.ScanRow(row, func(col uint32, x T) bool {
		v.SetUnchecked(col, x)
		return true
	})
	return v
}

// Column returns col as a sparse vector of length NRows.
func (m *Matrix[T]) Column(col uint32) *Vector[T] {
	v := NewVector[T](m.nrows)
	m.Scan(func(c Coord, x T) bool {
		if c.Col == col {
			v.SetUnchecked(c.Row, x)
		}
		return true
	})
	return v
}

// DropRow removes every element of row and returns the removed coordinates
// with their values.
func (m *Matrix[T]) DropRow(row uint32) map[Coord]T {
	removed := make(map[Coord]T)
	m.ScanRow(row, func(col uint32, x T) bool {
		removed[Coord{Row: row, Col: col}] = x
		return true
	})
	for c := range removed {
		m.tree.Delete(melem[T]{c: c})
	}
	return removed
}

// DropColumn removes every element of col and returns the removed
// coordinates with their values.
func (m *Matrix[T]) DropColumn(col uint32) map[Coord]T {
	removed := make(map[Coord]T)
	m.Scan(func(c Coord, x T) bool {
		if c.Col == col {
			removed[c] = x
		}
		return true
	})
	for c := range removed {
		m.tree.Delete(melem[T]{c: c})
	}
	return removed
}

// Transpose returns a new matrix holding mᵀ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := NewMatrix[T](m.ncols, m.nrows)
	m.Scan(func(c Coord, x T) bool {
		t.tree.Set(melem[T]{c: Coord{Row: c.Col, Col: c.Row}, v: x})
		return true
	})
	return t
}

// RowStructure returns the rows holding at least one element.
func (m *Matrix[T]) RowStructure() *bitmap.Mask {
	out := bitmap.New()
	last := uint64(math.MaxUint64)
	m.Scan(func(c Coord, _ T) bool {
		if uint64(c.Row) != last {
			out.Add(c.Row)
			last = uint64(c.Row)
		}
		return true
	})
	return out
}

// ColumnStructure returns the columns holding at least one element.
func (m *Matrix[T]) ColumnStructure() *bitmap.Mask {
	out := bitmap.New()
	m.Scan(func(c Coord, _ T) bool {
		out.Add(c.Col)
		return true
	})
	return out
}

// ToMap returns the stored elements keyed by coordinate.
func (m *Matrix[T]) ToMap() map[Coord]T {
	out := make(map[Coord]T, m.tree.Len())
	m.Scan(func(c Coord, x T) bool {
		out[c] = x
		return true
	})
	return out
}
