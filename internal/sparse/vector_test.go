package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	v := NewVector[uint8](4)
	assert.Equal(t, 4, v.Size())
	assert.Equal(t, 0, v.NVals())

	require.NoError(t, v.Set(1, 10))
	require.NoError(t, v.Set(3, 30))
	assert.ErrorIs(t, v.Set(4, 1), ErrIndexOutOfRange)

	x, ok := v.Get(1)
	assert.True(t, ok)
	assert.Equal(t, uint8(10), x)

	_, ok = v.Get(2)
	assert.False(t, ok)
	assert.Equal(t, uint8(0), v.GetOrDefault(2))
	assert.True(t, v.IsElement(3))

	require.NoError(t, v.Set(1, 11))
	assert.Equal(t, uint8(11), v.GetOrDefault(1))
	assert.Equal(t, 2, v.NVals())

	assert.True(t, v.Drop(1))
	assert.False(t, v.Drop(1))
	assert.Equal(t, []uint32{3}, v.Indices())
}

func TestVectorResize(t *testing.T) {
	v := NewVector[int32](8)
	for i := uint32(0); i < 8; i++ {
		require.NoError(t, v.Set(i, int32(i)))
	}
	v.Resize(4)
	assert.Equal(t, 4, v.Size())
	assert.Equal(t, []uint32{0, 1, 2, 3}, v.Indices())

	v.Resize(16)
	require.NoError(t, v.Set(15, -1))
	assert.Equal(t, 5, v.NVals())
}

func TestVectorCloneIsCopyOnWrite(t *testing.T) {
	v := NewVector[float64](3)
	require.NoError(t, v.Set(0, 1.5))

	c := v.Clone()
	require.NoError(t, v.Set(0, 2.5))
	require.NoError(t, c.Set(2, 9))

	assert.Equal(t, map[uint32]float64{0: 2.5}, v.ToMap())
	assert.Equal(t, map[uint32]float64{0: 1.5, 2: 9}, c.ToMap())

	v.ReplaceWith(c)
	assert.Equal(t, c.ToMap(), v.ToMap())

	v.Clear()
	assert.Equal(t, 0, v.NVals())
	assert.Equal(t, 2, c.NVals())
}

func TestVectorMasks(t *testing.T) {
	v := NewVector[int8](5)
	require.NoError(t, v.Set(0, 0))
	require.NoError(t, v.Set(2, 3))

	assert.Equal(t, []uint32{0, 2}, v.Structure().ToSlice())
	assert.Equal(t, []uint32{2}, v.Values().ToSlice())

	count := 0
	for range v.All() {
		count++
	}
	assert.Equal(t, 2, count)
}
