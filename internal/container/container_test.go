package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

func TestVertexVector(t *testing.T) {
	c := NewVertexVector[uint8](4)
	assert.Equal(t, value.Uint8, c.TypeID())

	c.Set(1, 255)
	v, ok := c.GetValue(1)
	require.True(t, ok)
	assert.Equal(t, value.Of[uint8](255), v)

	c.SetValue(2, value.Of(float32(1000)))
	x, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, uint8(255), x)

	b, ok := GetVectorAs[bool](c, 1)
	require.True(t, ok)
	assert.True(t, b)

	_, ok = GetVectorAs[bool](c, 0)
	assert.False(t, ok)

	snap := c.CloneAny()
	assert.True(t, c.Drop(1))
	c.Resize(2)
	assert.Equal(t, 0, c.NVals())

	c.RestoreFrom(snap)
	assert.Equal(t, []uint32{1, 2}, c.Indices())
	assert.Equal(t, 4, c.Size())
}

func TestFactories(t *testing.T) {
	for _, id := range value.AllTypes() {
		v, err := NewVertexVectorOf(id, 3)
		require.NoError(t, err)
		assert.Equal(t, id, v.TypeID())
		assert.Equal(t, 3, v.Size())

		m, err := NewAdjacencyMatrixOf(id, 3)
		require.NoError(t, err)
		assert.Equal(t, id, m.TypeID())
		assert.Equal(t, 3, m.Dim())
	}

	_, err := NewVertexVectorOf(value.TypeID(200), 1)
	assert.Error(t, err)
	_, err = NewAdjacencyMatrixOf(value.TypeID(200), 1)
	assert.Error(t, err)
}

func TestAdjacencyMatrixCache(t *testing.T) {
	c := NewAdjacencyMatrix[uint16](4)
	c.Set(0, 1, 5)
	c.Set(2, 1, 7)

	assert.Equal(t, []uint32{0, 2}, c.OutgoingMask().ToSlice())
	assert.Equal(t, []uint32{1}, c.IncomingMask().ToSlice())
	assert.Equal(t, []uint32{0, 1, 2}, c.IncidenceMask().ToSlice())
	assert.Equal(t, 2, c.InDegree(1))
	assert.Equal(t, 1, c.OutDegree(0))

	tr := c.Transposed()
	assert.Same(t, tr, c.Transposed())
	assert.Equal(t, uint16(7), tr.GetOrDefault(sparse.Coord{Row: 1, Col: 2}))

	c.Set(3, 3, 1)
	assert.NotSame(t, tr, c.Transposed())
	assert.Equal(t, []uint32{0, 2, 3}, c.OutgoingMask().ToSlice())

	// returned masks are copies
	m := c.IncomingMask()
	m.Add(0)
	assert.False(t, c.IncomingMask().Contains(0))

	require.True(t, c.Drop(sparse.Coord{Row: 3, Col: 3}))
	assert.Equal(t, []uint32{1}, c.IncomingMask().ToSlice())

	require.NoError(t, c.Mutate(func(m *sparse.Matrix[uint16]) error {
		return m.Set(sparse.Coord{Row: 1, Col: 0}, 9)
	}))
	assert.Equal(t, []uint32{0, 1}, c.IncomingMask().ToSlice())

	c.Resize(2)
	assert.Equal(t, 2, c.Dim())
	assert.Equal(t, 2, c.NVals())
	assert.Equal(t, []uint32{0, 1}, c.IncidenceMask().ToSlice())

	c.Clear()
	assert.True(t, c.IncidenceMask().IsEmpty())
}

func TestAdjacencyMatrixIncident(t *testing.T) {
	c := NewAdjacencyMatrix[int](3)
	c.Set(0, 1, 1)
	c.Set(1, 2, 2)
	c.Set(2, 0, 3)
	c.Set(1, 1, 4)

	inc := c.Incident(1)
	assert.Equal(t, map[sparse.Coord]value.Value{
		{Row: 0, Col: 1}: value.Of(1),
		{Row: 1, Col: 2}: value.Of(2),
		{Row: 1, Col: 1}: value.Of(4),
	}, inc)

	assert.Equal(t, 3, c.DropIncident(1))
	assert.Equal(t, 1, c.NVals())
	assert.Equal(t, 0, c.InDegree(1))
	assert.Equal(t, 0, c.DropIncident(1))
}

func TestAdjacencyMatrixSnapshot(t *testing.T) {
	c := NewAdjacencyMatrix[float64](2)
	c.SetValue(sparse.Coord{Row: 0, Col: 1}, value.Of(true))
	snap := c.CloneAny()

	c.Set(1, 0, 2.5)
	_ = c.OutgoingMask()
	c.RestoreFrom(snap)

	assert.Equal(t, 1, c.NVals())
	assert.Equal(t, []uint32{0}, c.OutgoingMask().ToSlice())
	w, ok := GetMatrixAs[int8](c, sparse.Coord{Row: 0, Col: 1})
	require.True(t, ok)
	assert.Equal(t, int8(1), w)
}

func TestConversions(t *testing.T) {
	c := NewAdjacencyMatrix[uint8](3)
	c.Set(0, 2, 200)

	same := MatrixAs[uint8](c, false)
	assert.Same(t, c.Matrix(), same)
	assert.Same(t, c.Transposed(), MatrixAs[uint8](c, true))

	conv := MatrixAs[int8](c, true)
	assert.Equal(t, map[sparse.Coord]int8{{Row: 2, Col: 0}: 127}, conv.ToMap())

	v := NewVertexVector[float64](2)
	v.Set(1, -3.7)
	assert.Same(t, v.Vector(), VectorAs[float64](v))
	assert.Equal(t, map[uint32]uint32{1: 0}, VectorAs[uint32](v).ToMap())
	assert.Equal(t, map[uint32]int{1: -3}, VectorAs[int](v).ToMap())
}

func TestSetBeyondSizePanics(t *testing.T) {
	v := NewVertexVector[int](2)
	assert.Panics(t, func() { v.Set(2, 1) })

	m := NewAdjacencyMatrix[int](2)
	assert.Panics(t, func() { m.SetValue(sparse.Coord{Row: 0, Col: 5}, value.Of(1)) })
}
