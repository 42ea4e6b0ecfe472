package search

import (
	"fmt"
)

// reconstruct walks predecessor links from n back to the origin of t and
// returns the nodes in origin → n order.
func reconstruct[N comparable](t table[N], n N) []N {
	path := []N{n}
	for cur := t[n]; cur != nil && cur.hasPred; cur = t[cur.pred] {
		path = append(path, cur.pred)
	}
	reverse(path)

	return path
}

// stitch joins the forward path source → m and the backward path target → m
// into source → m → target. m appears once.
func stitch[N comparable](fwd, bwd table[N], m N) ([]N, float64) {
	head := reconstruct(fwd, m)
	tail := reconstruct(bwd, m)
	reverse(tail)

	path := make([]N, 0, len(head)+len(tail)-1)
	path = append(path, head[:len(head)-1]...)
	path = append(path, tail...)

	return path, fwd.cost(m) + bwd.cost(m)
}

// PathWeight sums edge weights along path in order. Between parallel edges
// the cheapest one counts. An empty or single-node path weighs 0.
// Returns ErrNotAdjacent if two consecutive nodes share no edge.
func PathWeight[N comparable](g Graph[N], path []N) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := edgeWeight(g, path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v → %v at position %d", ErrNotAdjacent, path[i-1], path[i], i)
		}
		total += w
	}

	return total, nil
}

// edgeWeight returns the cheapest weight of u → v.
func edgeWeight[N comparable](g Graph[N], u, v N) (float64, bool) {
	found := false
	best := 0.0
	for _, nb := range g.Neighbors(u) {
		if nb.Node != v {
			continue
		}
		if !found || nb.Weight < best {
			best = nb.Weight
			found = true
		}
	}

	return best, found
}

// reverse reverses s in place.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
