package planner

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/heuristic"
	"github.com/katalvlaran/gridroute/search"
)

// Option configures a Planner. An invalid Option is recorded and surfaced
// as ErrOptionViolation by New.
type Option func(*Planner)

// WithHeuristic selects the distance estimate.
func WithHeuristic(k heuristic.Kind) Option {
	return func(p *Planner) {
		if _, err := heuristic.DefaultProvider().Func(k); err != nil {
			p.fail(err)
			return
		}
		p.cfg.Heuristic = k
	}
}

// WithAlpha sets the blend factor; it must lie in [0, 2].
func WithAlpha(alpha float64) Option {
	return func(p *Planner) {
		if math.IsNaN(alpha) || alpha < 0 || alpha > 2 {
			p.fail(fmt.Errorf("%w: got %v", search.ErrBadAlpha, alpha))
			return
		}
		p.cfg.Alpha = alpha
	}
}

// WithBidirectional toggles the meet-in-the-middle controller.
func WithBidirectional(on bool) Option {
	return func(p *Planner) { p.cfg.Bidirectional = on }
}

// WithBreadthFirst toggles heuristic step costs in place of edge weights.
func WithBreadthFirst(on bool) Option {
	return func(p *Planner) { p.cfg.BreadthFirst = on }
}

// WithHeuristicCosts sets the orthogonal and diagonal heuristic constants.
// Both must be finite and non-negative.
func WithHeuristicCosts(step, diagonal float64) Option {
	return func(p *Planner) {
		for _, v := range []float64{step, diagonal} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				p.fail(fmt.Errorf("heuristic costs must be finite and non-negative (step=%v, diagonal=%v)", step, diagonal))
				return
			}
		}
		p.cfg.Step, p.cfg.Diagonal = step, diagonal
	}
}

// WithLogger fixes the logger, overriding any logger carried by the context.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Planner) { p.logger = l }
}

// WithTracer replaces the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(p *Planner) { p.tracer = t }
}

// WithRecorder installs a Recorder fed after every plan.
func WithRecorder(r Recorder) Option {
	return func(p *Planner) { p.recorder = r }
}

// WithName overrides the algorithm label used by logs, spans and recorders.
func WithName(name string) Option {
	return func(p *Planner) {
		if name == "" {
			p.fail(fmt.Errorf("name cannot be empty"))
			return
		}
		p.name = name
	}
}

// WithComponentPrecheck rejects pairs lying in different connected
// components before running the search. The grid labels its components on
// first use.
func WithComponentPrecheck(on bool) Option {
	return func(p *Planner) { p.precheck = on }
}

// fail records the first option error.
func (p *Planner) fail(err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
}
