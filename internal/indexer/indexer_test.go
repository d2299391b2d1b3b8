package indexer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claim(t *testing.T, ix *Indexer) AssignedIndex {
	t.Helper()
	a, err := ix.NewPublicIndex()
	require.NoError(t, err)
	return a
}

func TestFIFOReuse(t *testing.T) {
	ix := New("vertex", 4)
	for i := range 4 {
		a := claim(t, ix)
		assert.Equal(t, uint32(i), a.Index)
		assert.False(t, a.Reused)
		assert.False(t, a.HasNewCapacity())
	}

	require.NoError(t, ix.FreePublicIndex(0))
	require.NoError(t, ix.FreePublicIndex(2))
	assert.False(t, ix.IsValidIndex(0))

	a := claim(t, ix)
	assert.Equal(t, uint32(0), a.Index)
	assert.True(t, a.Reused)

	a = claim(t, ix)
	assert.Equal(t, uint32(2), a.Index)
	assert.True(t, a.Reused)

	a = claim(t, ix)
	assert.Equal(t, uint32(4), a.Index)
	assert.False(t, a.Reused)
	assert.Equal(t, 8, a.NewCapacity)
}

func TestCapacityDoubling(t *testing.T) {
	ix := New("vertex", 10)
	for range 10 {
		claim(t, ix)
	}
	assert.Equal(t, 10, ix.Capacity())

	next, err := ix.NextIndex()
	require.NoError(t, err)
	assert.Equal(t, uint32(10), next.Index)
	assert.Equal(t, 20, next.NewCapacity)
	assert.Equal(t, 10, ix.Capacity(), "peeking must not grow")

	a := claim(t, ix)
	assert.Equal(t, uint32(10), a.Index)
	assert.True(t, a.HasNewCapacity())
	assert.Equal(t, 20, a.NewCapacity)
	assert.Equal(t, 20, ix.Capacity())

	prev := ix.Capacity()
	for range 25 {
		claim(t, ix)
		assert.GreaterOrEqual(t, ix.Capacity(), prev)
		prev = ix.Capacity()
	}
	assert.Equal(t, 40, ix.Capacity())
}

func TestMinimumCapacity(t *testing.T) {
	ix := New("edge type", 0)
	assert.Equal(t, 1, ix.Capacity())
	claim(t, ix)
	a := claim(t, ix)
	assert.Equal(t, 2, a.NewCapacity)
}

func TestVisibility(t *testing.T) {
	ix := New("vertex type", 4)
	pub := claim(t, ix)
	priv, err := ix.NewPrivateIndex()
	require.NoError(t, err)

	assert.True(t, ix.IsValidPublicIndex(pub.Index))
	assert.False(t, ix.IsValidPrivateIndex(pub.Index))
	assert.True(t, ix.IsValidPrivateIndex(priv.Index))
	assert.False(t, ix.IsValidPublicIndex(priv.Index))
	assert.True(t, ix.IsValidIndex(priv.Index))

	assert.Equal(t, 2, ix.NumberOfIndexedElements())
	assert.Equal(t, 1, ix.NumberOfPublicIndices())
	assert.Equal(t, 1, ix.NumberOfPrivateIndices())
	assert.Equal(t, []uint32{0, 1}, slices.Collect(ix.ValidIndices()))
	assert.Equal(t, []uint32{0}, slices.Collect(ix.PublicIndices()))
	assert.Equal(t, []uint32{1}, slices.Collect(ix.PrivateIndices()))
	assert.Equal(t, []uint32{0}, ix.PublicMask().ToSlice())

	err = ix.FreePublicIndex(priv.Index)
	var oob *OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, "public", oob.Class)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.True(t, ix.IsValidIndex(priv.Index))

	assert.ErrorIs(t, ix.FreePrivateIndex(pub.Index), ErrIndexOutOfBounds)
	require.NoError(t, ix.FreePrivateIndex(priv.Index))
	assert.False(t, ix.IsValidIndex(priv.Index))
	assert.False(t, ix.IsPrivateBit(priv.Index))

	// freeing an invalid slot is a no-op
	require.NoError(t, ix.FreePublicIndex(priv.Index))
	require.NoError(t, ix.FreePublicIndex(99))
	assert.False(t, ix.FreeValidIndex(99))
	assert.True(t, ix.FreeValidIndex(pub.Index))
	assert.Equal(t, []uint32{1, 0}, ix.FreeList().Pending())
}

func TestTryValidity(t *testing.T) {
	ix := New("edge type", 2)
	pub := claim(t, ix)
	priv, err := ix.NewPrivateIndex()
	require.NoError(t, err)

	require.NoError(t, ix.TryIndexValidity(pub.Index))
	require.NoError(t, ix.TryPublicIndexValidity(pub.Index))
	require.NoError(t, ix.TryPrivateIndexValidity(priv.Index))

	err = ix.TryIndexValidity(7)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.EqualError(t, err, "edge type index 7 is not valid")

	err = ix.TryPublicIndexValidity(priv.Index)
	assert.EqualError(t, err, "edge type index 1 is not a valid public index")

	err = ix.TryPrivateIndexValidity(pub.Index)
	assert.EqualError(t, err, "edge type index 0 is not a valid private index")
}

func TestSetIndexCapacity(t *testing.T) {
	ix := New("vertex", 4)

	grew, err := ix.SetIndexCapacity(16)
	require.NoError(t, err)
	assert.True(t, grew)
	assert.Equal(t, 16, ix.Capacity())

	grew, err = ix.SetIndexCapacity(8)
	require.NoError(t, err)
	assert.False(t, grew)
	assert.Equal(t, 16, ix.Capacity())

	_, err = ix.SetIndexCapacity(MaxCapacity + 1)
	assert.ErrorIs(t, err, ErrIndexSpaceExhausted)
}

func TestIndexSpaceExhausted(t *testing.T) {
	ix := New("vertex", MaxCapacity)
	ix.highWater = MaxCapacity

	_, err := ix.NewPublicIndex()
	assert.ErrorIs(t, err, ErrIndexSpaceExhausted)

	ix.highWater = MaxCapacity - 1
	a := claim(t, ix)
	assert.Equal(t, uint32(MaxCapacity-1), a.Index)
	assert.False(t, a.HasNewCapacity())

	require.NoError(t, ix.FreePublicIndex(a.Index))
	a = claim(t, ix)
	assert.True(t, a.Reused)
}

func TestRestoreHooks(t *testing.T) {
	ix := New("vertex", 2)
	claim(t, ix)
	claim(t, ix)
	require.NoError(t, ix.FreePublicIndex(0))

	saved := ix.FreeList()
	assert.Equal(t, []uint32{0}, saved.Pending())
	assert.Equal(t, 2, saved.HighWater())

	a := claim(t, ix) // reuses 0
	b := claim(t, ix) // grows to 4
	assert.True(t, a.Reused)
	assert.Equal(t, 4, b.NewCapacity)

	ix.RestoreFreeList(saved)
	ix.RestoreSlot(a.Index, false, false)
	ix.RestoreSlot(b.Index, false, false)
	ix.RestoreCapacity(2)

	assert.Equal(t, 2, ix.Capacity())
	assert.Equal(t, []uint32{1}, slices.Collect(ix.ValidIndices()))

	again := claim(t, ix)
	assert.Equal(t, uint32(0), again.Index)
	assert.True(t, again.Reused)

	// the captured snapshot is not aliased by the restored queue
	assert.Equal(t, []uint32{0}, saved.Pending())
}
