package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridroute/planner"
)

const namespace = "gridroute"

// PlanMetrics records PlanEvents into Prometheus collectors.
type PlanMetrics struct {
	plans    *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	cost     *prometheus.HistogramVec
}

var _ planner.Recorder = (*PlanMetrics)(nil)

// NewPlanMetrics registers the collectors on registry, or on
// prometheus.DefaultRegisterer when registry is nil. It panics if the
// collectors are already registered there.
func NewPlanMetrics(registry prometheus.Registerer) *PlanMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &PlanMetrics{
		plans: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Planned source/target pairs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expanded_nodes",
			Help:      "Nodes popped from the frontiers per plan",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_duration_seconds",
			Help:      "Wall time of a single plan",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
		cost: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_cost",
			Help:      "Cost of found routes",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"algorithm"}),
	}
}

// RecordPlan implements planner.Recorder.
func (m *PlanMetrics) RecordPlan(e planner.PlanEvent) {
	m.plans.WithLabelValues(e.Algorithm, e.Outcome()).Inc()
	if e.Err != nil {
		return
	}
	m.expanded.WithLabelValues(e.Algorithm).Observe(float64(e.Expanded))
	m.duration.WithLabelValues(e.Algorithm).Observe(e.Duration.Seconds())
	if e.Found {
		m.cost.WithLabelValues(e.Algorithm).Observe(e.Cost)
	}
}
