package pqueue

import "errors"

// Sentinel errors returned by Queue operations.
var (
	// ErrEmpty indicates PopMin was called with no live entries left.
	ErrEmpty = errors.New("pqueue: pop from an empty queue")

	// ErrNotFound indicates Remove was called for a key with no live entry.
	ErrNotFound = errors.New("pqueue: key not found")
)

// entry is a single heap slot. An entry whose removed flag is set is a
// tombstone: it still occupies the heap but no longer represents its key.
type entry[K comparable] struct {
	key      K
	priority float64
	tie      uint64
	removed  bool
}

// entryHeap orders entries by (priority, tie) ascending.
// It implements heap.Interface and is never used directly by callers.
type entryHeap[K comparable] []*entry[K]

// Len returns the number of slots, tombstones included.
func (h entryHeap[K]) Len() int { return len(h) }

// Less compares by priority, then by tie-breaker.
func (h entryHeap[K]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].tie < h[j].tie
}

// Swap swaps two slots.
func (h entryHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entryHeap[K]) Push(x any) { *h = append(*h, x.(*entry[K])) }

// Pop removes the last slot; called by heap.Pop only.
func (h *entryHeap[K]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
