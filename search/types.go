// Package search defines the graph contract, configuration, results and
// sentinel errors of the generalized best-first search.
package search

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the search controllers.
var (
	// ErrNilGraph indicates a nil Graph was passed to a controller.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidEndpoint indicates the source or target is absent from the graph.
	ErrInvalidEndpoint = errors.New("search: endpoint not in graph")

	// ErrBadAlpha indicates a blend factor outside [0, 2] or NaN.
	ErrBadAlpha = errors.New("search: alpha must be within [0, 2]")

	// ErrNotAdjacent indicates two consecutive path nodes share no edge.
	ErrNotAdjacent = errors.New("search: consecutive path nodes are not adjacent")

	// ErrInvariant indicates the controller misused its frontier. It wraps the
	// underlying pqueue error and is unreachable under correct controller logic.
	ErrInvariant = errors.New("search: frontier invariant violated")
)

// Neighbor is one outgoing edge of a node: its head and a finite, non-negative weight.
type Neighbor[N comparable] struct {
	Node   N
	Weight float64
}

// Graph is the read-only adjacency view consumed by the controllers.
// Unwalkable nodes and edges are simply absent: Neighbors never yields them
// and Contains reports false.
type Graph[N comparable] interface {
	// Neighbors lists the outgoing edges of n.
	Neighbors(n N) []Neighbor[N]

	// Contains reports whether n is a node of the graph.
	Contains(n N) bool
}

// ReverseGraph is implemented by graphs whose adjacency is not symmetric.
// The bidirectional controller expands its backward frontier through
// InNeighbors when available, and through Neighbors otherwise.
type ReverseGraph[N comparable] interface {
	Graph[N]

	// InNeighbors lists the incoming edges of n, each reported by its tail.
	InNeighbors(n N) []Neighbor[N]
}

// Heuristic estimates the remaining cost from a node to a goal.
// A nil Heuristic behaves as the null heuristic (always 0).
type Heuristic[N comparable] func(from, goal N) float64

// StepCost replaces the edge weight of u→v during relaxation when set
// (breadth-first mode on unweighted grids).
type StepCost[N comparable] func(u, v N) float64

// Direction selects which frontier a relaxation belongs to.
type Direction int

const (
	// Forward expands from the source toward the target.
	Forward Direction = iota
	// Backward expands from the target toward the source.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Config parameterizes a search. The same controller realizes every variant:
//
//	Alpha = 2 → Dijkstra (the heuristic term vanishes)
//	Alpha = 1 → A*
//	Alpha = 0 → greedy best-first
//
// Any value in between is honored: score = Alpha·cost + (2−Alpha)·h.
type Config[N comparable] struct {
	// Heuristic estimates remaining distance; nil means null.
	Heuristic Heuristic[N]

	// Alpha is the blend factor in [0, 2].
	Alpha float64

	// StepCost, if non-nil, replaces edge weights during relaxation.
	StepCost StepCost[N]

	// Bidirectional runs two lock-step frontiers from source and target.
	Bidirectional bool

	// OnExpand is called for each popped node before it is expanded.
	OnExpand func(node N, dir Direction)
}

// DefaultConfig returns a Dijkstra configuration: no heuristic, Alpha = 2,
// graph weights, unidirectional.
func DefaultConfig[N comparable]() Config[N] {
	return Config[N]{Alpha: 2}
}

// Validate checks Alpha against [0, 2].
func (c Config[N]) Validate() error {
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 2 {
		return fmt.Errorf("%w: got %v", ErrBadAlpha, c.Alpha)
	}

	return nil
}

// Result is the outcome of one source/target search.
//
// Found == false is the "no path" outcome: Path is empty and Cost is
// meaningless. Expanded counts popped nodes over all frontiers.
type Result[N comparable] struct {
	Path     []N
	Cost     float64
	Found    bool
	Expanded int
}

// Weight returns the total path weight, or false when no path exists.
func (r Result[N]) Weight() (float64, bool) {
	if !r.Found {
		return 0, false
	}

	return r.Cost, true
}

// Pair is one source/target query of a batch.
type Pair[N comparable] struct {
	Source N
	Target N
}

// PairError reports the batch position of the pair that aborted MultiPlan.
type PairError[N comparable] struct {
	Index int
	Pair  Pair[N]
	Err   error
}

// Error formats the failing index, endpoints and cause.
func (e *PairError[N]) Error() string {
	return fmt.Sprintf("search: pair %d (%v → %v): %v", e.Index, e.Pair.Source, e.Pair.Target, e.Err)
}

// Unwrap returns the underlying error.
func (e *PairError[N]) Unwrap() error { return e.Err }
