// Package heuristic provides distance estimates between grid cells for the
// informed variants of package search.
//
// What:
//
//   - Null:      always 0 (turns A* into Dijkstra).
//   - Manhattan: Step·(|Δr|+|Δc|).
//   - Chebyshev: Step·max(|Δr|,|Δc|).
//   - Octile:    Step·max + (Diagonal−Step)·min.
//   - Euclidean: Step·√(Δr²+Δc²).
//
// A Provider carries the Step and Diagonal constants and hands out plain
// functions, so the search engine never depends on this package.
//
// Functions are pure and non-negative for non-negative constants.
// Admissibility is the caller's concern: Manhattan overestimates on an
// 8-connected grid, and any estimate in Step units is inadmissible when
// edge weights drop below Step.
package heuristic
