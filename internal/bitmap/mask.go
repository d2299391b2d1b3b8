package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mask is a set of uint32 indices backed by a Roaring bitmap.
//
// Masks are long-lived: the indexer keeps its valid and private slots in
// masks, adjacency matrices memoise their incidence masks, and operators use
// them to restrict which output elements are written.
//
// A Mask is not safe for concurrent mutation.
type Mask struct {
	rb *roaring.Bitmap
}

// New creates an empty mask.
func New() *Mask {
	return &Mask{rb: roaring.New()}
}

// Of creates a mask holding the given indices.
func Of(indices ...uint32) *Mask {
	return &Mask{rb: roaring.BitmapOf(indices...)}
}

// Add inserts i.
func (m *Mask) Add(i uint32) {
	m.rb.Add(i)
}

// CheckedAdd inserts i and reports whether it was absent before.
func (m *Mask) CheckedAdd(i uint32) bool {
	return m.rb.CheckedAdd(i)
}

// Remove deletes i.
func (m *Mask) Remove(i uint32) {
	m.rb.Remove(i)
}

// CheckedRemove deletes i and reports whether it was present before.
func (m *Mask) CheckedRemove(i uint32) bool {
	return m.rb.CheckedRemove(i)
}

// Set adds or removes i depending on present.
func (m *Mask) Set(i uint32, present bool) {
	if present {
		m.rb.Add(i)
		return
	}
	m.rb.Remove(i)
}

// Contains reports whether i is in the mask.
// A nil mask contains nothing.
func (m *Mask) Contains(i uint32) bool {
	if m == nil {
		return false
	}
	return m.rb.Contains(i)
}

// Cardinality returns the number of indices in the mask.
func (m *Mask) Cardinality() int {
	if m == nil {
		return 0
	}
	return int(m.rb.GetCardinality())
}

// IsEmpty reports whether the mask holds no indices.
func (m *Mask) IsEmpty() bool {
	return m == nil || m.rb.IsEmpty()
}

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	if m == nil {
		return New()
	}
	return &Mask{rb: m.rb.Clone()}
}

// Clear removes all indices.
func (m *Mask) Clear() {
	m.rb.Clear()
}

// Truncate removes every index >= n.
func (m *Mask) Truncate(n int) {
	if m.rb.IsEmpty() {
		return
	}
	m.rb.RemoveRange(uint64(n), uint64(m.rb.Maximum())+1)
}

// And intersects m with other in place.
func (m *Mask) And(other *Mask) {
	m.rb.And(other.rb)
}

// Or unions m with other in place.
func (m *Mask) Or(other *Mask) {
	m.rb.Or(other.rb)
}

// AndNot removes every index of other from m.
func (m *Mask) AndNot(other *Mask) {
	m.rb.AndNot(other.rb)
}

// Complement returns the indices in [0, n) that are not in m.
func (m *Mask) Complement(n int) *Mask {
	out := New()
	if n <= 0 {
		return out
	}
	out.rb.AddRange(0, uint64(n))
	if m != nil {
		out.rb.AndNot(m.rb)
	}
	return out
}

// Equals reports whether both masks hold the same indices.
func (m *Mask) Equals(other *Mask) bool {
	if m.IsEmpty() || other.IsEmpty() {
		return m.IsEmpty() && other.IsEmpty()
	}
	return m.rb.Equals(other.rb)
}

// Indices iterates over the mask in ascending order.
func (m *Mask) Indices() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if m == nil {
			return
		}
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToSlice returns the indices in ascending order.
func (m *Mask) ToSlice() []uint32 {
	if m == nil {
		return nil
	}
	return m.rb.ToArray()
}

// GetSizeInBytes returns the serialized size of the mask in bytes.
func (m *Mask) GetSizeInBytes() uint64 {
	return m.rb.GetSizeInBytes()
}
