// Package queue implements the FIFO free-list used by the indexer.
package queue

import "iter"

// FIFO is a first-in first-out queue backed by a growable ring buffer.
// The zero value is an empty queue ready to use.
type FIFO[T any] struct {
	items []T
	head  int // position of the oldest item
	size  int
}

// NewFIFO creates a queue with room for capacity items before growing.
func NewFIFO[T any](capacity int) *FIFO[T] {
	return &FIFO[T]{items: make([]T, capacity)}
}

// Len returns the number of queued items.
func (q *FIFO[T]) Len() int { return q.size }

// Push appends v at the tail.
func (q *FIFO[T]) Push(v T) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = v
	q.size++
}

// Pop removes and returns the oldest item.
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return v, true
}

// Peek returns the oldest item without removing it.
func (q *FIFO[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// All iterates from oldest to newest.
func (q *FIFO[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(q.items[(q.head+i)%len(q.items)]) {
				return
			}
		}
	}
}

// ToSlice returns the items from oldest to newest.
func (q *FIFO[T]) ToSlice() []T {
	out := make([]T, 0, q.size)
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}

// Clone returns an independent copy of the queue.
func (q *FIFO[T]) Clone() *FIFO[T] {
	items := q.ToSlice()
	c := &FIFO[T]{items: make([]T, max(len(items), 1))}
	copy(c.items, items)
	c.size = len(items)
	return c
}

// Reset empties the queue, keeping its buffer.
func (q *FIFO[T]) Reset() {
	clear(q.items)
	q.head = 0
	q.size = 0
}

func (q *FIFO[T]) grow() {
	newCap := len(q.items) * 2
	if newCap == 0 {
		newCap = 8
	}
	items := make([]T, newCap)
	for i := 0; i < q.size; i++ {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items = items
	q.head = 0
}
