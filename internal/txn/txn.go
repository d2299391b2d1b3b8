// Package txn implements atomic in-memory transactions over a store.Graph.
//
// A transaction holds the graph's write lock from Begin until Close and
// installs a restore.GraphRestorer as the graph's journal, so every
// mutation made through the graph while the transaction is open can be
// undone. Commit makes the current state the new baseline; Revert returns
// to the baseline; Close reverts whatever was not committed.
package txn

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/propgraph/internal/restore"
	"github.com/hupe1980/propgraph/internal/store"
)

// ErrTxClosed is returned by every method of a closed transaction.
var ErrTxClosed = errors.New("transaction closed")

// Transaction is an open transaction. It is not safe for concurrent use.
type Transaction struct {
	g        *store.Graph
	mu       sync.Locker
	restorer *restore.GraphRestorer
	closed   bool
}

// Begin locks mu, which must guard g, and starts a transaction.
func Begin(g *store.Graph, mu sync.Locker) *Transaction {
	mu.Lock()
	r := restore.NewGraphRestorer(g)
	g.SetJournal(r)
	return &Transaction{g: g, mu: mu, restorer: r}
}

// Graph returns the graph for reads and writes within the transaction.
func (t *Transaction) Graph() (*store.Graph, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	return t.g, nil
}

// Closed reports whether Close was called.
func (t *Transaction) Closed() bool { return t.closed }

// Dirty reports whether there are uncommitted changes.
func (t *Transaction) Dirty() bool { return !t.closed && !t.restorer.IsEmpty() }

// Commit keeps every change made so far. The transaction stays open.
func (t *Transaction) Commit() error {
	if t.closed {
		return ErrTxClosed
	}
	t.restorer.Reset()
	return nil
}

// Revert undoes every change since Begin or the last Commit. The
// transaction stays open.
func (t *Transaction) Revert() error {
	if t.closed {
		return ErrTxClosed
	}
	return t.restorer.Revert()
}

// Close reverts uncommitted changes and releases the graph. It returns the
// revert error, if any. Closing twice is a no-op.
func (t *Transaction) Close() error {
	if t.closed {
		return nil
	}
	var err error
	if !t.restorer.IsEmpty() {
		if rerr := t.restorer.Revert(); rerr != nil {
			err = fmt.Errorf("close: %w", rerr)
		}
	}
	t.closed = true
	t.g.SetJournal(nil)
	t.mu.Unlock()
	return err
}
