package sparse

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/value"
)

// Containers are guarded by the owning graph's lock, so the trees skip their
// own locking.
var treeOptions = btree.Options{NoLocks: true}

type velem[T value.Type] struct {
	i uint32
	v T
}

func velemLess[T value.Type](a, b velem[T]) bool { return a.i < b.i }

// Vector is a sparse vector of length Size.
type Vector[T value.Type] struct {
	size int
	tree *btree.BTreeG[velem[T]]
}

// NewVector creates an empty vector of the given length.
func NewVector[T value.Type](size int) *Vector[T] {
	return &Vector[T]{
		size: size,
		tree: btree.NewBTreeGOptions(velemLess[T], treeOptions),
	}
}

// Size returns the vector length.
func (v *Vector[T]) Size() int { return v.size }

// NVals returns the number of stored elements.
func (v *Vector[T]) NVals() int { return v.tree.Len() }

// Get returns the element at i.
func (v *Vector[T]) Get(i uint32) (T, bool) {
	e, ok := v.tree.Get(velem[T]{i: i})
	return e.v, ok
}

// GetOrDefault returns the element at i or the zero value.
func (v *Vector[T]) GetOrDefault(i uint32) T {
	x, _ := v.Get(i)
	return x
}

// IsElement reports whether an element is stored at i.
func (v *Vector[T]) IsElement(i uint32) bool {
	_, ok := v.tree.Get(velem[T]{i: i})
	return ok
}

// Set inserts or overwrites the element at i.
func (v *Vector[T]) Set(i uint32, x T) error {
	if int(i) >= v.size {
		return rangeError(i, v.size)
	}
	v.tree.Set(velem[T]{i: i, v: x})
	return nil
}

// SetUnchecked is Set without the bounds check. Writing beyond Size leaves
// the vector in a state later operations do not expect.
func (v *Vector[T]) SetUnchecked(i uint32, x T) {
	v.tree.Set(velem[T]{i: i, v: x})
}

// Drop removes the element at i and reports whether one was stored.
func (v *Vector[T]) Drop(i uint32) bool {
	_, ok := v.tree.Delete(velem[T]{i: i})
	return ok
}

// Resize changes the vector length. Elements at or beyond n are removed.
func (v *Vector[T]) Resize(n int) {
	if n < v.size {
		var drop []uint32
		v.tree.Ascend(velem[T]{i: uint32(n)}, func(e velem[T]) bool {
			drop = append(drop, e.i)
			return true
		})
		for _, i := range drop {
			v.tree.Delete(velem[T]{i: i})
		}
	}
	v.size = n
}

// Clear removes every element, keeping the length.
func (v *Vector[T]) Clear() {
	v.tree.Clear()
}

// Clone returns a copy. The copy shares storage with v until either is
// written.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{size: v.size, tree: v.tree.Copy()}
}

// ReplaceWith makes v an exact copy of other.
func (v *Vector[T]) ReplaceWith(other *Vector[T]) {
	v.size = other.size
	v.tree = other.tree.Copy()
}

// Scan calls fn for every element in ascending index order until fn
// returns false.
func (v *Vector[T]) Scan(fn func(i uint32, x T) bool) {
	v.tree.Scan(func(e velem[T]) bool {
		return fn(e.i, e.v)
	})
}

// All iterates over the stored elements in ascending index order.
func (v *Vector[T]) All() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		v.Scan(yield)
	}
}

// Indices returns the stored indices in ascending order.
func (v *Vector[T]) Indices() []uint32 {
	out := make([]uint32, 0, v.tree.Len())
	v.Scan(func(i uint32, _ T) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Structure returns the set of stored indices.
func (v *Vector[T]) Structure() *bitmap.Mask {
	m := bitmap.New()
	v.Scan(func(i uint32, _ T) bool {
		m.Add(i)
		return true
	})
	return m
}

// Values returns the set of indices whose stored value is non-zero.
func (v *Vector[T]) Values() *bitmap.Mask {
	m := bitmap.New()
	v.Scan(func(i uint32, x T) bool {
		if value.As[bool](value.Of(x)) {
			m.Add(i)
		}
		return true
	})
	return m
}

// ToMap returns the stored elements keyed by index.
func (v *Vector[T]) ToMap() map[uint32]T {
	out := make(map[uint32]T, v.tree.Len())
	v.Scan(func(i uint32, x T) bool {
		out[i] = x
		return true
	})
	return out
}
