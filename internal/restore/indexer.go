package restore

import "github.com/hupe1980/propgraph/internal/indexer"

type slotBits struct {
	valid   bool
	private bool
}

type slotTarget struct{ ix *indexer.Indexer }

func (t slotTarget) RestoreValue(i uint32, b slotBits) { t.ix.RestoreSlot(i, b.valid, b.private) }
func (t slotTarget) RestoreEmpty(i uint32)             { t.ix.RestoreSlot(i, false, false) }

// IndexerRestorer undoes changes to one indexer: bit-level logs of the
// valid and private masks, a one-shot snapshot of the free list and the
// capacity baseline.
type IndexerRestorer struct {
	ix       *indexer.Indexer
	slots    *ElementLog[uint32, slotBits, struct{}]
	touched  bool
	freeList indexer.FreeList
	capacity int
}

// NewIndexerRestorer creates a restorer for ix.
func NewIndexerRestorer(ix *indexer.Indexer) *IndexerRestorer {
	return &IndexerRestorer{ix: ix, slots: NewElementLog[uint32, slotBits, struct{}]()}
}

// Indexer returns the restored indexer.
func (r *IndexerRestorer) Indexer() *indexer.Indexer { return r.ix }

// Touch captures the free list and capacity the first time it is called.
func (r *IndexerRestorer) Touch() {
	if r.touched {
		return
	}
	r.touched = true
	r.freeList = r.ix.FreeList()
	r.capacity = r.ix.Capacity()
}

// LogSlot records the current bits of slot i.
func (r *IndexerRestorer) LogSlot(i uint32) {
	r.Touch()
	if r.slots.Touched(i) {
		return
	}
	if r.ix.IsValidIndex(i) {
		r.slots.ElementValue(i, slotBits{valid: true, private: r.ix.IsPrivateBit(i)})
	} else {
		r.slots.EmptyElement(i)
	}
}

// BaselineCapacity returns the capacity captured by Touch.
func (r *IndexerRestorer) BaselineCapacity() (int, bool) { return r.capacity, r.touched }

// IsEmpty reports whether nothing was logged.
func (r *IndexerRestorer) IsEmpty() bool { return !r.touched }

// Revert restores the indexer and resets the restorer.
func (r *IndexerRestorer) Revert() {
	if r.touched {
		r.slots.Replay(slotTarget{r.ix})
		r.ix.RestoreFreeList(r.freeList)
		r.ix.RestoreCapacity(r.capacity)
	}
	r.Reset()
}

// Reset discards the log, making the current state the baseline.
func (r *IndexerRestorer) Reset() {
	r.slots = NewElementLog[uint32, slotBits, struct{}]()
	r.touched = false
	r.freeList = indexer.FreeList{}
	r.capacity = 0
}
