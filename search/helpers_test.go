package search_test

import (
	"github.com/katalvlaran/gridroute/search"
)

// digraph is a small directed adjacency map for hand-built cases.
// Every node must appear as a key, sinks with a nil slice.
type digraph map[string][]search.Neighbor[string]

func (g digraph) Neighbors(n string) []search.Neighbor[string] { return g[n] }

func (g digraph) Contains(n string) bool {
	_, ok := g[n]
	return ok
}

// reversible adds InNeighbors to a digraph by scanning every edge.
type reversible struct{ digraph }

func (g reversible) InNeighbors(n string) []search.Neighbor[string] {
	var in []search.Neighbor[string]
	for tail, out := range g.digraph {
		for _, nb := range out {
			if nb.Node == n {
				in = append(in, search.Neighbor[string]{Node: tail, Weight: nb.Weight})
			}
		}
	}

	return in
}

func edge(n string, w float64) search.Neighbor[string] {
	return search.Neighbor[string]{Node: n, Weight: w}
}

// table heuristic: fixed estimate per node, independent of the goal.
func estimates(h map[string]float64) search.Heuristic[string] {
	return func(from, _ string) float64 { return h[from] }
}
