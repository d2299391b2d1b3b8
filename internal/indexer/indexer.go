package indexer

import (
	"fmt"
	"iter"

	"github.com/hupe1980/propgraph/internal/bitmap"
	"github.com/hupe1980/propgraph/internal/queue"
)

// MaxCapacity is the number of representable uint32 indices.
const MaxCapacity = 1 << 32

// AssignedIndex describes the outcome of a claim.
type AssignedIndex struct {
	Index uint32
	// NewCapacity is the capacity after the claim, or 0 if it did not change.
	NewCapacity int
	// Reused is true if the index came from the free queue.
	Reused bool
}

// HasNewCapacity reports whether the claim grew the capacity.
func (a AssignedIndex) HasNewCapacity() bool { return a.NewCapacity > 0 }

// Indexer hands out and tracks slot indices. It is not safe for concurrent
// mutation; the owning store serialises writers.
type Indexer struct {
	kind      string
	valid     *bitmap.Mask
	private   *bitmap.Mask
	free      *queue.FIFO[uint32]
	capacity  int
	highWater int
}

// New creates an indexer with the given initial capacity. kind names the
// indexed entity in error messages. Capacities below one are raised to one.
func New(kind string, capacity int) *Indexer {
	capacity = max(capacity, 1)
	capacity = min(capacity, MaxCapacity)
	return &Indexer{
		kind:     kind,
		valid:    bitmap.New(),
		private:  bitmap.New(),
		free:     queue.NewFIFO[uint32](8),
		capacity: capacity,
	}
}

// Kind returns the entity name used in error messages.
func (ix *Indexer) Kind() string { return ix.kind }

// NewPublicIndex claims a public slot.
func (ix *Indexer) NewPublicIndex() (AssignedIndex, error) {
	return ix.claim(false)
}

// NewPrivateIndex claims a private slot.
func (ix *Indexer) NewPrivateIndex() (AssignedIndex, error) {
	return ix.claim(true)
}

// NextIndex reports the index the next claim would return without claiming
// it.
func (ix *Indexer) NextIndex() (AssignedIndex, error) {
	if i, ok := ix.free.Peek(); ok {
		return AssignedIndex{Index: i, Reused: true}, nil
	}
	if ix.highWater >= MaxCapacity {
		return AssignedIndex{}, fmt.Errorf("%s: %w", ix.kind, ErrIndexSpaceExhausted)
	}
	a := AssignedIndex{Index: uint32(ix.highWater)}
	if ix.highWater >= ix.capacity {
		a.NewCapacity = ix.grownCapacity()
	}
	return a, nil
}

func (ix *Indexer) grownCapacity() int {
	return min(ix.capacity*2, MaxCapacity)
}

func (ix *Indexer) claim(private bool) (AssignedIndex, error) {
	a, err := ix.NextIndex()
	if err != nil {
		return a, err
	}
	if a.Reused {
		ix.free.Pop()
	} else {
		ix.highWater++
	}
	if a.HasNewCapacity() {
		ix.capacity = a.NewCapacity
	}
	ix.valid.Add(a.Index)
	if private {
		ix.private.Add(a.Index)
	}
	return a, nil
}

// FreePublicIndex releases a public slot. Freeing an invalid slot is a
// no-op; freeing a private slot is an error. The slot's data is untouched.
func (ix *Indexer) FreePublicIndex(i uint32) error {
	if !ix.valid.Contains(i) {
		return nil
	}
	if ix.private.Contains(i) {
		return &OutOfBoundsError{Kind: ix.kind, Index: i, Class: "public"}
	}
	ix.release(i)
	return nil
}

// FreePrivateIndex releases a private slot. Freeing an invalid slot is a
// no-op; freeing a public slot is an error.
func (ix *Indexer) FreePrivateIndex(i uint32) error {
	if !ix.valid.Contains(i) {
		return nil
	}
	if !ix.private.Contains(i) {
		return &OutOfBoundsError{Kind: ix.kind, Index: i, Class: "private"}
	}
	ix.release(i)
	return nil
}

// FreeValidIndex releases a slot regardless of its visibility class. It
// reports whether the slot was valid.
func (ix *Indexer) FreeValidIndex(i uint32) bool {
	if !ix.valid.Contains(i) {
		return false
	}
	ix.release(i)
	return true
}

func (ix *Indexer) release(i uint32) {
	ix.valid.Remove(i)
	ix.private.Remove(i)
	ix.free.Push(i)
}

// IsValidIndex reports whether i holds live data.
func (ix *Indexer) IsValidIndex(i uint32) bool { return ix.valid.Contains(i) }

// IsValidPublicIndex reports whether i is valid and public.
func (ix *Indexer) IsValidPublicIndex(i uint32) bool {
	return ix.valid.Contains(i) && !ix.private.Contains(i)
}

// IsValidPrivateIndex reports whether i is valid and private.
func (ix *Indexer) IsValidPrivateIndex(i uint32) bool { return ix.private.Contains(i) }

// TryIndexValidity returns an *OutOfBoundsError if i is not valid.
func (ix *Indexer) TryIndexValidity(i uint32) error {
	if !ix.IsValidIndex(i) {
		return &OutOfBoundsError{Kind: ix.kind, Index: i}
	}
	return nil
}

// TryPublicIndexValidity returns an *OutOfBoundsError if i is not a valid
// public index.
func (ix *Indexer) TryPublicIndexValidity(i uint32) error {
	if !ix.IsValidPublicIndex(i) {
		e := &OutOfBoundsError{Kind: ix.kind, Index: i}
		if ix.valid.Contains(i) {
			e.Class = "public"
		}
		return e
	}
	return nil
}

// TryPrivateIndexValidity returns an *OutOfBoundsError if i is not a valid
// private index.
func (ix *Indexer) TryPrivateIndexValidity(i uint32) error {
	if !ix.IsValidPrivateIndex(i) {
		e := &OutOfBoundsError{Kind: ix.kind, Index: i}
		if ix.valid.Contains(i) {
			e.Class = "private"
		}
		return e
	}
	return nil
}

// Capacity returns the number of slots containers must be sized for.
func (ix *Indexer) Capacity() int { return ix.capacity }

// SetIndexCapacity grows the capacity to n. It reports whether the capacity
// changed; smaller values are ignored.
func (ix *Indexer) SetIndexCapacity(n int) (bool, error) {
	if n > MaxCapacity {
		return false, fmt.Errorf("%s capacity %d: %w", ix.kind, n, ErrIndexSpaceExhausted)
	}
	if n <= ix.capacity {
		return false, nil
	}
	ix.capacity = n
	return true, nil
}

// NumberOfIndexedElements returns the number of valid slots.
func (ix *Indexer) NumberOfIndexedElements() int { return ix.valid.Cardinality() }

// NumberOfPublicIndices returns the number of valid public slots.
func (ix *Indexer) NumberOfPublicIndices() int {
	return ix.valid.Cardinality() - ix.private.Cardinality()
}

// NumberOfPrivateIndices returns the number of valid private slots.
func (ix *Indexer) NumberOfPrivateIndices() int { return ix.private.Cardinality() }

// ValidIndices yields every valid index in ascending order.
func (ix *Indexer) ValidIndices() iter.Seq[uint32] { return ix.valid.Indices() }

// PublicIndices yields every valid public index in ascending order.
func (ix *Indexer) PublicIndices() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := range ix.valid.Indices() {
			if ix.private.Contains(i) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// PrivateIndices yields every valid private index in ascending order.
func (ix *Indexer) PrivateIndices() iter.Seq[uint32] { return ix.private.Indices() }

// Mask returns a copy of the valid bitmap.
func (ix *Indexer) Mask() *bitmap.Mask { return ix.valid.Clone() }

// PublicMask returns a bitmap of the valid public indices.
func (ix *Indexer) PublicMask() *bitmap.Mask {
	m := ix.valid.Clone()
	m.AndNot(ix.private)
	return m
}
