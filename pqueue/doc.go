// Package pqueue provides an indexed min-priority queue with lazy deletion,
// built for shortest-path frontiers.
//
// Overview:
//
//   - Each key has at most one live entry. Upsert on a present key tombstones
//     the old entry and pushes a fresh one, so a decrease-key never rebuilds
//     the heap.
//   - Tombstoned entries stay in the heap and are discarded when they reach
//     the top during PopMin.
//   - Ties on priority are broken by an insertion counter, giving FIFO order
//     among equal priorities and fully deterministic output.
//
// Complexity:
//
//   - Contains, Len, Priority: O(1)
//   - Upsert:                  O(log n) amortized
//   - Remove:                  O(1) (lazy)
//   - PopMin:                  O(log n) amortized, tombstones included
//   - Space:                   O(L + S), L live entries plus S tombstones
//     not yet reclaimed.
//
// Errors (sentinel):
//
//   - ErrEmpty:    PopMin on a queue without live entries.
//   - ErrNotFound: Remove of a key that has no live entry.
//
// Thread safety:
//
//   - A Queue is not safe for concurrent use. Search controllers own their
//     queues exclusively for the duration of one call.
package pqueue
