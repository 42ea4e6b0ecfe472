// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridroute.
package gridgraph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrWeightShape indicates a weight matrix whose shape differs from the grid.
	ErrWeightShape = errors.New("gridgraph: weights must have the same shape as the grid")
	// ErrBadWeight indicates a negative, NaN or infinite weight or diagonal factor.
	ErrBadWeight = errors.New("gridgraph: weights must be finite and non-negative")
	// ErrDecodeImage indicates the image input could not be decoded.
	ErrDecodeImage = errors.New("gridgraph: cannot decode image")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultDiagonalFactor is the cost multiplier of a diagonal step.
const DefaultDiagonalFactor = 1.414

// Cell identifies a grid cell by row and column. It is the node type of the graph.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// WalkableThreshold specifies the minimum cell value considered walkable.
	// Unlike DiagonalFactor its zero value is taken literally: 0 makes every
	// non-negative cell walkable, so start from DefaultGridOptions() to keep
	// 0 as the blocked value.
	WalkableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Weights optionally assigns a traversal weight to each cell (Weights[row][col]).
	// Nil means every cell weighs 1.
	Weights [][]float64
	// DiagonalFactor multiplies diagonal edge weights. Zero selects DefaultDiagonalFactor.
	DiagonalFactor float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// WalkableThreshold=1 (values ≥1 are walkable), Conn=Conn4, uniform weights,
// DiagonalFactor=1.414.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WalkableThreshold: 1,
		Conn:              Conn4,
		DiagonalFactor:    DefaultDiagonalFactor,
	}
}

// GridGraph treats a 2D integer grid as a weighted graph. It is immutable once built.
// Rows and Cols define dimensions; CellValues[row][col] holds the original input value.
// walkable and weight are row-major copies used by adjacency queries.
// neighborOffsets is precomputed (dRow, dCol) pairs for the chosen connectivity.
type GridGraph struct {
	Rows, Cols        int
	CellValues        [][]int
	Conn              Connectivity
	WalkableThreshold int
	DiagonalFactor    float64

	walkable        []bool
	weight          []float64
	neighborOffsets [][2]int

	labelOnce sync.Once
	labels    []int
	compCount int
}
