package search

import (
	"context"
)

// MultiPlan runs Plan for every pair, in order, on the same graph.
//
// Each pair gets fresh state; nothing is shared between pairs but g, which
// stays fixed for the whole batch regardless of cfg.Bidirectional.
//
// Error policy is fail-fast: the first failing pair stops the batch. The
// results of the pairs before it are returned together with a *PairError
// carrying the failing index; errors.Is still matches the cause.
// Unreachable pairs are not errors and yield Found == false.
func MultiPlan[N comparable](ctx context.Context, g Graph[N], pairs []Pair[N], cfg Config[N]) ([]Result[N], error) {
	results := make([]Result[N], 0, len(pairs))

	var p Pair[N]
	for i := range pairs {
		p = pairs[i]
		res, err := Plan(ctx, g, p.Source, p.Target, cfg)
		if err != nil {
			return results, &PairError[N]{Index: i, Pair: p, Err: err}
		}
		results = append(results, res)
	}

	return results, nil
}
