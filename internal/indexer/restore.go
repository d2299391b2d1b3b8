package indexer

import "github.com/hupe1980/propgraph/internal/queue"

// FreeList is a snapshot of the allocation cursor: the queued free slots
// and the first never-used index.
type FreeList struct {
	queue     *queue.FIFO[uint32]
	highWater int
}

// Pending returns the queued free slots in pop order.
func (f FreeList) Pending() []uint32 { return f.queue.ToSlice() }

// HighWater returns the first never-used index.
func (f FreeList) HighWater() int { return f.highWater }

// FreeList captures the allocation cursor.
func (ix *Indexer) FreeList() FreeList {
	return FreeList{queue: ix.free.Clone(), highWater: ix.highWater}
}

// RestoreFreeList resets the allocation cursor to a captured state.
func (ix *Indexer) RestoreFreeList(f FreeList) {
	ix.free = f.queue.Clone()
	ix.highWater = f.highWater
}

// IsPrivateBit reports the raw private bit, which is only meaningful while
// the slot is valid.
func (ix *Indexer) IsPrivateBit(i uint32) bool { return ix.private.Contains(i) }

// RestoreSlot sets the valid and private bits of i without touching the free
// queue. Only rollback uses it.
func (ix *Indexer) RestoreSlot(i uint32, valid, private bool) {
	ix.valid.Set(i, valid)
	ix.private.Set(i, private)
}

// RestoreCapacity sets the capacity to n, including shrinking. Only rollback
// uses it.
func (ix *Indexer) RestoreCapacity(n int) {
	ix.capacity = max(n, 1)
}
