package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
	"github.com/katalvlaran/gridroute/search"
)

// TracerName is the instrumentation name of the default tracer.
const TracerName = "github.com/katalvlaran/gridroute/planner"

// Planner plans routes on grid graphs with a fixed Config.
type Planner struct {
	name     string
	cfg      Config
	logger   logrus.FieldLogger
	tracer   trace.Tracer
	recorder Recorder
	precheck bool

	search search.Config[gridgraph.Cell]
	err    error
}

// New builds a Planner from preset, then applies opts in order.
// Returns ErrOptionViolation wrapping the first invalid option.
func New(preset Preset, opts ...Option) (*Planner, error) {
	p := &Planner{
		name: preset.String(),
		cfg:  PresetConfig(preset),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.tracer == nil {
		p.tracer = otel.Tracer(TracerName)
	}

	h, err := heuristic.NewProvider(p.cfg.Step, p.cfg.Diagonal).Func(p.cfg.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
	if p.cfg.BreadthFirst && p.cfg.Heuristic == heuristic.Null {
		return nil, fmt.Errorf("%w: breadth-first step costs need a non-null heuristic", ErrOptionViolation)
	}

	p.search = search.Config[gridgraph.Cell]{
		Alpha:         p.cfg.Alpha,
		Bidirectional: p.cfg.Bidirectional,
	}
	if p.cfg.Heuristic != heuristic.Null {
		p.search.Heuristic = search.Heuristic[gridgraph.Cell](h)
	}
	if p.cfg.BreadthFirst {
		p.search.StepCost = search.StepCost[gridgraph.Cell](h)
	}

	return p, nil
}

// Name returns the algorithm label.
func (p *Planner) Name() string { return p.name }

// Config returns a copy of the planner's parameters.
func (p *Planner) Config() Config { return p.cfg }

// Plan routes src → dst on g.
//
// An unreachable target yields Route{Found: false} and a nil error. Invalid
// endpoints and cancellation are returned as errors from package search.
func (p *Planner) Plan(ctx context.Context, g *gridgraph.GridGraph, src, dst gridgraph.Cell) (Route, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := p.tracer.Start(ctx, "gridroute.plan", trace.WithAttributes(
		attribute.String("gridroute.algorithm", p.name),
		attribute.String("gridroute.source", src.String()),
		attribute.String("gridroute.target", dst.String()),
	))
	defer span.End()

	start := time.Now()
	route, err := p.plan(ctx, g, src, dst)
	route.Duration = time.Since(start)

	p.finish(ctx, span, src, dst, route, err)

	return route, err
}

func (p *Planner) plan(ctx context.Context, g *gridgraph.GridGraph, src, dst gridgraph.Cell) (Route, error) {
	if g == nil {
		return Route{}, ErrNilGrid
	}
	if p.precheck && g.Contains(src) && g.Contains(dst) && !g.Connected(src, dst) {
		p.log(ctx).WithFields(logrus.Fields{"source": src.String(), "target": dst.String()}).
			Debug("pair spans two components, search skipped")
		return Route{}, nil
	}

	res, err := search.Plan[gridgraph.Cell](ctx, g, src, dst, p.search)
	if err != nil {
		return Route{Expanded: res.Expanded}, err
	}
	route := Route{Found: res.Found, Expanded: res.Expanded}
	if !res.Found {
		return route, nil
	}
	route.Path, route.Cost = res.Path, res.Cost
	if route.Weight, err = search.PathWeight[gridgraph.Cell](g, res.Path); err != nil {
		return Route{Expanded: res.Expanded}, err
	}

	return route, nil
}

// finish logs, annotates the span and notifies the recorder.
func (p *Planner) finish(ctx context.Context, span trace.Span, src, dst gridgraph.Cell, r Route, err error) {
	span.SetAttributes(
		attribute.Bool("gridroute.found", r.Found),
		attribute.Float64("gridroute.cost", r.Cost),
		attribute.Int("gridroute.expanded", r.Expanded),
	)
	entry := p.log(ctx).WithFields(logrus.Fields{
		"algorithm": p.name,
		"source":    src.String(),
		"target":    dst.String(),
		"found":     r.Found,
		"cost":      r.Cost,
		"expanded":  r.Expanded,
		"duration":  r.Duration,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Debug("plan failed")
	} else {
		entry.Debug("plan finished")
	}

	if p.recorder != nil {
		p.recorder.RecordPlan(PlanEvent{
			Algorithm: p.name,
			Source:    src,
			Target:    dst,
			Found:     r.Found,
			Cost:      r.Cost,
			Expanded:  r.Expanded,
			Duration:  r.Duration,
			Err:       err,
		})
	}
}

// MultiPlan routes every pair in order on the same grid, failing fast.
// On error it returns the routes of the pairs before the failing one and a
// *search.PairError[gridgraph.Cell] naming it.
func (p *Planner) MultiPlan(ctx context.Context, g *gridgraph.GridGraph, pairs []search.Pair[gridgraph.Cell]) ([]Route, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := p.tracer.Start(ctx, "gridroute.multiplan", trace.WithAttributes(
		attribute.String("gridroute.algorithm", p.name),
		attribute.Int("gridroute.pairs", len(pairs)),
	))
	defer span.End()

	routes := make([]Route, 0, len(pairs))
	for i, pair := range pairs {
		r, err := p.Plan(ctx, g, pair.Source, pair.Target)
		if err != nil {
			err = &search.PairError[gridgraph.Cell]{Index: i, Pair: pair, Err: err}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return routes, err
		}
		routes = append(routes, r)
	}

	return routes, nil
}

func (p *Planner) log(ctx context.Context) logrus.FieldLogger {
	if p.logger != nil {
		return p.logger
	}

	return Logger(ctx)
}
