// Package gridroute plans shortest routes on weighted occupancy grids with
// one generalized best-first search.
//
// 🚀 What is gridroute?
//
//	A small, generic route planning stack:
//		• search:    one relaxation rule, score = α·g + (2−α)·h, driving
//		             unidirectional and bidirectional controllers
//		• pqueue:    lazy-deletion indexed priority queue with FIFO ties
//		• heuristic: null, manhattan, chebyshev, octile, euclidean
//		• gridgraph: arrays or images → walkable, weighted 4/8-connected grids
//		• planner:   Dijkstra, A*, Best-First, Breadth-First and their
//		             bidirectional variants as presets, with logging and tracing
//		• metrics:   Prometheus recorder for planner outcomes
//
// ✨ Choosing α:
//
//   - α = 2: Dijkstra, optimal, expands the most.
//   - α = 1: A*, optimal with an admissible heuristic.
//   - α = 0: greedy best-first, fast, no optimality guarantee.
//
// Under the hood:
//
//	search/       generic controllers over any Graph[N]
//	pqueue/       frontier queue
//	heuristic/    grid distance estimates
//	gridgraph/    grid construction and connected components
//	planner/      presets, options, logrus, OpenTelemetry
//	metrics/      Prometheus collectors
//	cmd/          gridroute CLI (cobra, YAML scenarios)
//	examples/     runnable programs
//
// Quick start:
//
//	g, _ := gridgraph.From2D(grid, gridgraph.Conn8)
//	p, _ := planner.New(planner.AStar)
//	route, err := p.Plan(ctx, g, gridgraph.Cell{Row: 2, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
package gridroute
