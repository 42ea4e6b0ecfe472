// Package planner binds the generalized search of package search to grid
// graphs: named presets, heuristic selection, structured logging, tracing
// and outcome recording.
//
// What:
//
//   - One Planner type parameterized by Config. The seven presets of the
//     classic planners are plain Config values:
//
//     Dijkstra      null heuristic,      α = 2
//     AStar         manhattan,           α = 1
//     BestFirst     manhattan,           α = 0
//     BreadthFirst  octile step costs,   α = 2
//     BiDijkstra    manhattan,           α = 2, bidirectional
//     BiAStar       manhattan,           α = 1, bidirectional
//     BiBestFirst   manhattan,           α = 0, bidirectional
//
//   - BreadthFirst replaces every edge weight by the heuristic distance
//     between its endpoints, so Route.Cost counts steps while Route.Weight
//     still reports the grid weight of the returned path.
//
// Ambient behavior:
//
//   - Logging: logrus, from WithLogger or from the context (WithContextLogger),
//     else logrus.StandardLogger(). One debug entry per plan.
//   - Tracing: one OpenTelemetry span "gridroute.plan" per plan, child of
//     "gridroute.multiplan" in batches.
//   - Recording: an optional Recorder receives a PlanEvent per plan
//     (package metrics provides a Prometheus one).
//
// Errors:
//
//   - ErrOptionViolation: an Option was invalid; returned by New.
//   - ErrUnknownPreset:   ParsePreset could not match a name.
//   - ErrNilGrid:         Plan was called with a nil grid.
//   - search errors (ErrInvalidEndpoint, ctx.Err(), *search.PairError) pass through.
//
// A Planner is immutable after New and safe for concurrent use.
package planner
