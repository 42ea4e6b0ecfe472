// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a weighted graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Per-cell weights averaged along each edge
//   - The search.Graph and search.ReverseGraph adjacency contracts
//   - Identification of connected components of walkable cells
//
// Cells with value < WalkableThreshold are blocked; cells with value ≥ WalkableThreshold are walkable.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/search"
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// opts is used as given; build it from DefaultGridOptions() rather than a
// zero GridOptions literal, whose WalkableThreshold of 0 opens 0-valued cells.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrWeightShape if opts.Weights
// does not match, ErrBadWeight for invalid weights or diagonal factor.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	diag := opts.DiagonalFactor
	if diag == 0 {
		diag = DefaultDiagonalFactor
	}
	if !validWeight(diag) {
		return nil, fmt.Errorf("%w: diagonal factor %v", ErrBadWeight, diag)
	}
	if opts.Weights != nil {
		if len(opts.Weights) != h {
			return nil, fmt.Errorf("%w: %d weight rows for %d grid rows", ErrWeightShape, len(opts.Weights), h)
		}
		for r, row := range opts.Weights {
			if len(row) != w {
				return nil, fmt.Errorf("%w: weight row %d has %d columns, want %d", ErrWeightShape, r, len(row), w)
			}
		}
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	walkable := make([]bool, h*w)
	weight := make([]float64, h*w)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
		for c := 0; c < w; c++ {
			i := r*w + c
			walkable[i] = values[r][c] >= opts.WalkableThreshold
			weight[i] = 1
			if opts.Weights != nil {
				wt := opts.Weights[r][c]
				if walkable[i] && !validWeight(wt) {
					return nil, fmt.Errorf("%w: cell (%d,%d) weight %v", ErrBadWeight, r, c, wt)
				}
				weight[i] = wt
			}
		}
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	gg := &GridGraph{
		Rows:              h,
		Cols:              w,
		CellValues:        cells,
		Conn:              opts.Conn,
		WalkableThreshold: opts.WalkableThreshold,
		DiagonalFactor:    diag,
		walkable:          walkable,
		weight:            weight,
		neighborOffsets:   offsets,
	}

	return gg, nil
}

// From2D builds a uniformly weighted GridGraph with default options and the
// given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// validWeight reports whether w is finite and non-negative.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// Walkable reports whether c is inside the grid and not blocked.
func (gg *GridGraph) Walkable(c Cell) bool {
	return gg.InBounds(c.Row, c.Col) && gg.walkable[gg.index(c.Row, c.Col)]
}

// Contains reports whether c is a node of the graph, i.e. a walkable cell.
func (gg *GridGraph) Contains(c Cell) bool {
	return gg.Walkable(c)
}

// NeighborOffsets returns the precomputed (dRow, dCol) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors lists the walkable neighbors of c with their edge weights, in
// N, (NE,) E, (SE,) S, (SW,) W, (NW) order. A blocked or out-of-bounds c
// has no neighbors.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c Cell) []search.Neighbor[Cell] {
	if !gg.Walkable(c) {
		return nil
	}
	out := make([]search.Neighbor[Cell], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		v := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !gg.Walkable(v) {
			continue
		}
		out = append(out, search.Neighbor[Cell]{Node: v, Weight: gg.weightBetween(c, v, d)})
	}

	return out
}

// InNeighbors equals Neighbors: grid edges are symmetric.
func (gg *GridGraph) InNeighbors(c Cell) []search.Neighbor[Cell] {
	return gg.Neighbors(c)
}

// EdgeWeight returns the weight of the edge u–v, or false if u and v are not
// adjacent walkable cells under the grid's connectivity.
func (gg *GridGraph) EdgeWeight(u, v Cell) (float64, bool) {
	if !gg.Walkable(u) || !gg.Walkable(v) {
		return 0, false
	}
	d := [2]int{v.Row - u.Row, v.Col - u.Col}
	for _, o := range gg.neighborOffsets {
		if o == d {
			return gg.weightBetween(u, v, d), true
		}
	}

	return 0, false
}

// WalkableCount returns the number of walkable cells (graph nodes).
func (gg *GridGraph) WalkableCount() int {
	n := 0
	for _, ok := range gg.walkable {
		if ok {
			n++
		}
	}

	return n
}

// weightBetween is the mean endpoint weight, scaled for diagonal steps.
func (gg *GridGraph) weightBetween(u, v Cell, d [2]int) float64 {
	w := (gg.weight[gg.index(u.Row, u.Col)] + gg.weight[gg.index(v.Row, v.Col)]) / 2
	if d[0] != 0 && d[1] != 0 {
		w *= gg.DiagonalFactor
	}

	return w
}

// index maps (row,col) to a row‑major index: row*Cols + col.
// Complexity: O(1).
func (gg *GridGraph) index(row, col int) int {
	return row*gg.Cols + col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Cols, Col: idx % gg.Cols}
}
