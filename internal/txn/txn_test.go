package txn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/propgraph/internal/store"
)

func TestCommitIsDurable(t *testing.T) {
	var mu sync.RWMutex
	g := store.New(store.Config{VertexCapacity: 2})
	vt, err := store.AddNewPublicVertexType[int32](g)
	require.NoError(t, err)

	tx := Begin(g, &mu)
	sg, err := tx.Graph()
	require.NoError(t, err)
	v, err := store.AddVertex(sg, vt, int32(7))
	require.NoError(t, err)
	assert.True(t, tx.Dirty())

	require.NoError(t, tx.Commit())
	assert.False(t, tx.Dirty())

	require.NoError(t, store.SetVertex(sg, vt, v, int32(8)))
	require.NoError(t, tx.Close())

	x, ok, err := store.GetVertex[int32](g, vt, v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(7), x, "uncommitted write is reverted on close")
}

func TestRevertKeepsTransactionOpen(t *testing.T) {
	var mu sync.Mutex
	g := store.New(store.Config{VertexCapacity: 2})
	et, err := store.AddNewEdgeType[uint16](g)
	require.NoError(t, err)
	a, err := g.NewVertexIndex()
	require.NoError(t, err)

	tx := Begin(g, &mu)
	require.NoError(t, store.SetEdge(g, et, a, a, uint16(5)))
	require.NoError(t, tx.Revert())

	ok, err := g.IsEdge(et, a, a)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetEdge(g, et, a, a, uint16(6)))
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Close())

	w, ok, err := store.GetEdgeWeight[uint16](g, et, a, a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint16(6), w)
}

func TestClosedTransaction(t *testing.T) {
	var mu sync.Mutex
	g := store.New(store.Config{})
	tx := Begin(g, &mu)
	require.NoError(t, tx.Close())
	require.NoError(t, tx.Close(), "close is idempotent")

	assert.True(t, tx.Closed())
	assert.False(t, tx.Dirty())
	assert.ErrorIs(t, tx.Commit(), ErrTxClosed)
	assert.ErrorIs(t, tx.Revert(), ErrTxClosed)
	_, err := tx.Graph()
	assert.ErrorIs(t, err, ErrTxClosed)

	// the lock was released and the journal detached
	require.True(t, mu.TryLock())
	mu.Unlock()
	_, err = store.AddNewPublicVertexType[bool](g)
	require.NoError(t, err)
}

func TestBeginWaitsForLock(t *testing.T) {
	var mu sync.Mutex
	g := store.New(store.Config{})
	first := Begin(g, &mu)

	started := make(chan *Transaction)
	go func() { started <- Begin(g, &mu) }()

	select {
	case <-started:
		t.Fatal("second transaction began while the first was open")
	default:
	}

	require.NoError(t, first.Close())
	second := <-started
	require.NoError(t, second.Close())
}
