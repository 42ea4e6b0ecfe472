// Package gridgraph turns a 2D occupancy grid (an array or an image) into
// the weighted adjacency view consumed by package search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Cells with value ≥
//     WalkableThreshold are walkable; all others are removed from the graph
//     together with their edges.
//   - Conn4 links the four orthogonal neighbors, Conn8 adds the diagonals.
//     Diagonal moves are allowed past blocked orthogonal corners.
//   - Each cell carries a weight (default 1). An edge costs the mean of its
//     two endpoint weights; diagonal edges are scaled by DiagonalFactor
//     (default 1.414).
//   - FromImage binarizes a PNG, JPEG or GIF: only pure-white pixels
//     (luminance > 254) are walkable.
//   - ConnectedComponents and Connected label walkable regions so callers
//     can reject unreachable queries before searching.
//
// Why:
//
//   - Robot and game maps: route on occupancy images with terrain costs.
//   - Any 2D raster where "blocked" is a property of a cell, not of an edge.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory.
//   - Neighbors:           O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d) on first call, labels are cached.
//
// Options:
//
//   - GridOptions.WalkableThreshold: minimum value considered walkable.
//   - GridOptions.Conn:              Conn4 or Conn8.
//   - GridOptions.Weights:           optional per-cell weights, same shape as the grid.
//   - GridOptions.DiagonalFactor:    diagonal edge multiplier.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrWeightShape:    Weights does not match the grid shape.
//   - ErrBadWeight:      a weight or DiagonalFactor is negative, NaN or infinite.
//   - ErrDecodeImage:    FromImage could not decode its input.
//
// A GridGraph is immutable once built and safe for concurrent readers.
package gridgraph
