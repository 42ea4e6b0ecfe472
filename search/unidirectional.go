package search

import (
	"context"
)

// unidirectional drives a single frontier from src until dst is popped
// (FOUND) or the frontier runs dry (EXHAUSTED).
//
// Nodes are not closed: a popped node whose cost later improves is
// re-inserted by relax and expanded again.
func (e *engine[N]) unidirectional(ctx context.Context, src, dst N) (Result[N], error) {
	f := newFrontier(Forward, src, dst, false)
	res := Result[N]{}

	var u N
	var err error
	for f.open.Len() > 0 {
		// 1) Cooperative cancellation, once per popped node.
		if err = canceled(ctx); err != nil {
			return Result[N]{Expanded: res.Expanded}, err
		}

		// 2) Pop the cheapest frontier node.
		if u, err = f.pop(); err != nil {
			return Result[N]{Expanded: res.Expanded}, err
		}
		res.Expanded++

		// 3) Target reached: walk predecessors back to the source.
		if u == dst {
			res.Path = reconstruct(f.nodes, dst)
			res.Cost = f.nodes.cost(dst)
			res.Found = true

			return res, nil
		}

		// 4) Relax every outgoing edge.
		e.expand(f, u)
	}

	return res, nil
}
