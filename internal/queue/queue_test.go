package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	var q FIFO[uint32]

	_, ok := q.Pop()
	assert.False(t, ok)

	for i := uint32(0); i < 20; i++ {
		q.Push(i)
	}
	assert.Equal(t, 20, q.Len())

	for i := uint32(0); i < 20; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestFIFOWrapAround(t *testing.T) {
	q := NewFIFO[int](4)
	q.Push(1)
	q.Push(2)
	q.Push(3)
	v, _ := q.Pop()
	assert.Equal(t, 1, v)
	q.Push(4)
	q.Push(5)
	q.Push(6) // grows while wrapped

	assert.Equal(t, []int{2, 3, 4, 5, 6}, q.ToSlice())

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, head)
}

func TestFIFOClone(t *testing.T) {
	q := NewFIFO[int](2)
	q.Push(7)
	q.Push(8)

	c := q.Clone()
	q.Pop()
	c.Push(9)

	assert.Equal(t, []int{8}, q.ToSlice())
	assert.Equal(t, []int{7, 8, 9}, c.ToSlice())

	empty := NewFIFO[int](0).Clone()
	empty.Push(1)
	assert.Equal(t, 1, empty.Len())

	q.Reset()
	assert.Equal(t, 0, q.Len())
}
