// Package search implements one generalized best-first search that
// specializes into Dijkstra, A*, greedy Best-First, Breadth-First and the
// bidirectional variant of each, over any graph exposing a read-only
// adjacency view.
//
// Overview:
//
//   - Every variant uses the same relaxation rule. A node v reached from u
//     gets cost g = g(u) + w(u, v) and score α·g + (2−α)·h(v, goal) when g
//     strictly improves its record.
//   - α = 2 is Dijkstra, α = 1 is A*, α = 0 is greedy best-first; values in
//     between are valid and honored as a continuous blend.
//   - Breadth-First behavior on unweighted grids is obtained by setting
//     Config.StepCost, which replaces edge weights by a per-step cost.
//   - The frontier is a pqueue.Queue: decrease-key tombstones the stale
//     entry instead of rebuilding the heap.
//
// Controllers:
//
//   - Unidirectional (default): INIT → RUNNING → {FOUND, EXHAUSTED}. Pops
//     until the target is popped; reconstructs by walking predecessors.
//   - Bidirectional (Config.Bidirectional): a forward frontier from the
//     source and a backward frontier from the target advance in lock-step,
//     one pop each per round. The first node closed by both sides is the
//     meeting point and the two half-paths are stitched there.
//   - MultiPlan: sequential batch over one fixed graph, fresh state per pair,
//     fail-fast on the first error.
//
// Known limitation:
//
//   - The bidirectional controller stops at the first mutual closure rather
//     than the provably optimal condition. For any α, Dijkstra included, it
//     may return a longer route than the unidirectional search.
//
// Complexity (V nodes touched, E edges relaxed):
//
//   - Time:  O((V + E) log(V + E)); every relaxation may push one entry.
//   - Space: O(V + E) for tables, open entries and tombstones.
//
// Error handling (sentinel errors):
//
//   - ErrBadAlpha:        Config.Alpha outside [0, 2] or NaN.
//   - ErrNilGraph:        nil Graph.
//   - ErrInvalidEndpoint: source or target not in the graph; raised before
//     any search state is allocated.
//   - ErrInvariant:       internal frontier misuse; unreachable in practice.
//   - ctx.Err():          the context was canceled mid-search.
//
// An unreachable target is not an error: Result.Found is false.
//
// Thread safety:
//
//   - A call owns all of its state. Concurrent calls over the same graph are
//     safe as long as nobody mutates the graph meanwhile.
package search
