package pqueue

import (
	"container/heap"
	"math"
)

// Queue is a min-priority queue keyed by K with lazy deletion.
//
// live maps each key to its single live entry; every other entry in the heap
// for that key is a tombstone.
type Queue[K comparable] struct {
	heap    entryHeap[K]
	live    map[K]*entry[K]
	counter uint64
}

// New returns an empty Queue.
func New[K comparable]() *Queue[K] {
	return &Queue[K]{
		heap: make(entryHeap[K], 0),
		live: make(map[K]*entry[K]),
	}
}

// NewWithCapacity returns an empty Queue with room for n entries before
// the heap slice or the index map need to grow.
func NewWithCapacity[K comparable](n int) *Queue[K] {
	if n < 0 {
		n = 0
	}

	return &Queue[K]{
		heap: make(entryHeap[K], 0, n),
		live: make(map[K]*entry[K], n),
	}
}

// Contains reports whether key has a live entry. O(1).
func (q *Queue[K]) Contains(key K) bool {
	_, ok := q.live[key]

	return ok
}

// Len returns the number of live entries. Tombstones are not counted.
func (q *Queue[K]) Len() int { return len(q.live) }

// Stale returns the number of tombstones still held by the heap.
func (q *Queue[K]) Stale() int { return len(q.heap) - len(q.live) }

// Priority returns the priority of key's live entry.
func (q *Queue[K]) Priority(key K) (float64, bool) {
	e, ok := q.live[key]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Upsert inserts key with the given priority, or replaces the priority of
// its live entry. The tie-breaker is the next value of the insertion
// counter, so equal priorities pop in FIFO order.
func (q *Queue[K]) Upsert(key K, priority float64) {
	q.UpsertTie(key, priority, q.next())
}

// UpsertTie is Upsert with an explicit tie-breaker. Smaller ties pop first
// among equal priorities. The insertion counter still advances, keeping
// implicit ties monotonic for later calls; a tie of math.MaxUint64 leaves it
// untouched, so such an entry pops after every implicit one.
func (q *Queue[K]) UpsertTie(key K, priority float64, tie uint64) {
	if old, ok := q.live[key]; ok {
		old.removed = true
	}
	if tie >= q.counter && tie < math.MaxUint64 {
		q.counter = tie + 1
	}
	e := &entry[K]{key: key, priority: priority, tie: tie}
	q.live[key] = e
	heap.Push(&q.heap, e)
}

// Remove tombstones the live entry of key. The heap slot is reclaimed
// later by PopMin. Returns ErrNotFound if key has no live entry.
func (q *Queue[K]) Remove(key K) error {
	e, ok := q.live[key]
	if !ok {
		return ErrNotFound
	}
	e.removed = true
	delete(q.live, key)

	return nil
}

// PopMin removes and returns the live key with the smallest
// (priority, tie). Tombstones reaching the top are discarded on the way.
// Returns ErrEmpty when no live entries remain; any tombstones left are
// dropped in that case.
func (q *Queue[K]) PopMin() (K, error) {
	var e *entry[K]
	for q.heap.Len() > 0 {
		e = heap.Pop(&q.heap).(*entry[K])
		if e.removed {
			continue
		}
		delete(q.live, e.key)

		return e.key, nil
	}

	var zero K

	return zero, ErrEmpty
}

// Reset drops all entries, live and stale. The insertion counter restarts.
func (q *Queue[K]) Reset() {
	q.heap = q.heap[:0]
	q.live = make(map[K]*entry[K])
	q.counter = 0
}

// next returns the current counter value and advances it.
func (q *Queue[K]) next() uint64 {
	c := q.counter
	q.counter++

	return c
}
