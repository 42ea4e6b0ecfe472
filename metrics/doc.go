// Package metrics exports planner outcomes as Prometheus metrics.
//
// PlanMetrics implements planner.Recorder:
//
//	gridroute_plans_total{algorithm,outcome}    counter, outcome ∈ found|unreachable|error
//	gridroute_expanded_nodes{algorithm}         histogram of popped nodes per plan
//	gridroute_plan_duration_seconds{algorithm}  histogram of wall time per plan
//	gridroute_path_cost{algorithm}              histogram of route cost, found plans only
//
// Register on a private registry for isolation:
//
//	reg := prometheus.NewRegistry()
//	p, _ := planner.New(planner.AStar, planner.WithRecorder(metrics.NewPlanMetrics(reg)))
package metrics
