package search

import (
	"math"

	"github.com/katalvlaran/gridroute/pqueue"
)

// record is the per-node bookkeeping of one direction.
// cost and score start at +Inf; pred is meaningful only when hasPred is set.
type record[N comparable] struct {
	cost    float64
	score   float64
	pred    N
	hasPred bool
}

// table maps nodes to records, populated on first reference.
type table[N comparable] map[N]*record[N]

// get returns the record of n, creating a default one if needed.
func (t table[N]) get(n N) *record[N] {
	r, ok := t[n]
	if !ok {
		r = &record[N]{cost: math.Inf(1), score: math.Inf(1)}
		t[n] = r
	}

	return r
}

// cost returns the best-known cost of n without allocating a record.
func (t table[N]) cost(n N) float64 {
	if r, ok := t[n]; ok {
		return r.cost
	}

	return math.Inf(1)
}

// frontier bundles one direction's table, open queue and closed set.
// closed is nil for unidirectional searches.
type frontier[N comparable] struct {
	dir    Direction
	origin N
	goal   N
	nodes  table[N]
	open   *pqueue.Queue[N]
	closed map[N]struct{}
}

// newFrontier seeds origin with cost 0 and score 0.
func newFrontier[N comparable](dir Direction, origin, goal N, withClosed bool) *frontier[N] {
	f := &frontier[N]{
		dir:    dir,
		origin: origin,
		goal:   goal,
		nodes:  make(table[N]),
		open:   pqueue.New[N](),
	}
	if withClosed {
		f.closed = make(map[N]struct{})
	}
	seed := f.nodes.get(origin)
	seed.cost = 0
	seed.score = 0
	f.open.Upsert(origin, 0)

	return f
}

// pop removes the cheapest open node.
func (f *frontier[N]) pop() (N, error) {
	n, err := f.open.PopMin()
	if err != nil {
		var zero N
		return zero, wrapInvariant(err)
	}

	return n, nil
}

// close marks n settled for this direction.
func (f *frontier[N]) close(n N) {
	if f.closed != nil {
		f.closed[n] = struct{}{}
	}
}

// isClosed reports whether n is settled for this direction.
func (f *frontier[N]) isClosed(n N) bool {
	_, ok := f.closed[n]

	return ok
}

// engine applies the generalized relaxation rule for one search call.
type engine[N comparable] struct {
	graph Graph[N]
	cfg   Config[N]
}

// heuristic evaluates the configured heuristic, treating nil as null.
func (e *engine[N]) heuristic(from, goal N) float64 {
	if e.cfg.Heuristic == nil {
		return 0
	}

	return e.cfg.Heuristic(from, goal)
}

// edges returns the edges to relax from u in direction dir.
func (e *engine[N]) edges(u N, dir Direction) []Neighbor[N] {
	if dir == Backward {
		if rg, ok := e.graph.(ReverseGraph[N]); ok {
			return rg.InNeighbors(u)
		}
	}

	return e.graph.Neighbors(u)
}

// expand relaxes every edge leaving u in f's direction.
func (e *engine[N]) expand(f *frontier[N], u N) {
	if e.cfg.OnExpand != nil {
		e.cfg.OnExpand(u, f.dir)
	}
	for _, nb := range e.edges(u, f.dir) {
		e.relax(f, u, nb.Node, nb.Weight)
	}
}

// relax is the single rule behind every variant:
//
//  1. tentative = cost(u) + w(u, v)        (w replaced by StepCost when set)
//  2. only a strictly lower tentative proceeds
//  3. score = α·tentative + (2−α)·h(v, goal)
//  4. record {tentative, score, u} for v
//  5. upsert v into the open queue (insert, or refresh a stale priority)
//  6. evict v from the closed set so it can be settled again
//
// Costs only ever decrease, so each node reopens a bounded number of times.
func (e *engine[N]) relax(f *frontier[N], u, v N, w float64) {
	if e.cfg.StepCost != nil {
		w = e.cfg.StepCost(u, v)
	}
	tentative := f.nodes.cost(u) + w
	rv := f.nodes.get(v)
	if !(tentative < rv.cost) {
		return
	}

	alpha := e.cfg.Alpha
	score := alpha * tentative
	if alpha < 2 {
		score += (2 - alpha) * e.heuristic(v, f.goal)
	}

	rv.cost = tentative
	rv.score = score
	rv.pred = u
	rv.hasPred = true

	f.open.Upsert(v, score)
	if f.closed != nil {
		delete(f.closed, v)
	}
}
