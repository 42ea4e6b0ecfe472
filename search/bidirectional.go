package search

import (
	"context"
)

// bidirectional runs a forward frontier from src (goal dst) and a backward
// frontier from dst (goal src) in lock-step.
//
// Each round pops one node from each side and closes it. The search stops at
// the first mutual closure: the forward node already closed backward, or else
// the backward node already closed forward. That node m is the meeting point;
// the route is forward(src → m) followed by backward(m → dst) and its cost is
// the sum of both partial costs at m.
//
// First mutual closure is not the optimal stopping rule (top keys summing
// past the best meeting estimate): for any α, α = 2 included, the route can
// be longer than the unidirectional one.
func (e *engine[N]) bidirectional(ctx context.Context, src, dst N) (Result[N], error) {
	fwd := newFrontier(Forward, src, dst, true)
	bwd := newFrontier(Backward, dst, src, true)
	res := Result[N]{}

	var u, v N
	var err error
	for fwd.open.Len() > 0 && bwd.open.Len() > 0 {
		// 1) Cooperative cancellation, once per round.
		if err = canceled(ctx); err != nil {
			return Result[N]{Expanded: res.Expanded}, err
		}

		// 2) Pop one node per direction and settle it.
		if u, err = fwd.pop(); err != nil {
			return Result[N]{Expanded: res.Expanded}, err
		}
		if v, err = bwd.pop(); err != nil {
			return Result[N]{Expanded: res.Expanded}, err
		}
		res.Expanded += 2
		fwd.close(u)
		bwd.close(v)

		// 3) Meeting checks; forward first.
		if bwd.isClosed(u) {
			return e.meet(res, fwd, bwd, u), nil
		}
		if fwd.isClosed(v) {
			return e.meet(res, fwd, bwd, v), nil
		}

		// 4) Expand both sides.
		e.expand(fwd, u)
		e.expand(bwd, v)
	}

	return res, nil
}

// meet fills res with the stitched route through m.
func (e *engine[N]) meet(res Result[N], fwd, bwd *frontier[N], m N) Result[N] {
	res.Path, res.Cost = stitch(fwd.nodes, bwd.nodes, m)
	res.Found = true

	return res
}
