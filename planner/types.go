package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
)

// Sentinel errors for planner operations.
var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")

	// ErrUnknownPreset indicates a preset name that ParsePreset cannot match.
	ErrUnknownPreset = errors.New("planner: unknown preset")

	// ErrNilGrid indicates Plan was called without a grid.
	ErrNilGrid = errors.New("planner: grid is nil")
)

// Preset names one of the classic planner configurations.
type Preset int

// Presets of the classic grid planners; see PresetConfig.
const (
	Dijkstra Preset = iota
	AStar
	BestFirst
	BreadthFirst
	BiDijkstra
	BiAStar
	BiBestFirst
)

var presetNames = [...]string{
	Dijkstra:     "dijkstra",
	AStar:        "astar",
	BestFirst:    "bestfirst",
	BreadthFirst: "breadthfirst",
	BiDijkstra:   "bidijkstra",
	BiAStar:      "biastar",
	BiBestFirst:  "bibestfirst",
}

// Presets lists every preset in declaration order.
func Presets() []Preset {
	return []Preset{Dijkstra, AStar, BestFirst, BreadthFirst, BiDijkstra, BiAStar, BiBestFirst}
}

// String returns the canonical lower-case name.
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("preset(%d)", int(p))
	}

	return presetNames[p]
}

var nameFolder = strings.NewReplacer("-", "", "_", "", " ", "", "*", "star")

// ParsePreset matches a preset name case-insensitively, ignoring dashes,
// underscores and spaces ("A*", "bi-astar" and "Breadth_First" all parse).
func ParsePreset(name string) (Preset, error) {
	n := nameFolder.Replace(strings.ToLower(strings.TrimSpace(name)))
	for p, s := range presetNames {
		if s == n {
			return Preset(p), nil
		}
	}

	return Dijkstra, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Config is the full parameter set of a Planner.
type Config struct {
	// Heuristic selects the distance estimate.
	Heuristic heuristic.Kind
	// Alpha blends cost and heuristic: 2 Dijkstra, 1 A*, 0 greedy.
	Alpha float64
	// Bidirectional runs the meet-in-the-middle controller.
	Bidirectional bool
	// BreadthFirst replaces edge weights by Heuristic(u, v).
	BreadthFirst bool
	// Step and Diagonal are the heuristic constants.
	Step, Diagonal float64
}

// PresetConfig returns the Config of preset p.
func PresetConfig(p Preset) Config {
	cfg := Config{
		Heuristic: heuristic.Manhattan,
		Step:      heuristic.DefaultStep,
		Diagonal:  heuristic.DefaultDiagonal,
	}
	switch p {
	case Dijkstra:
		cfg.Heuristic, cfg.Alpha = heuristic.Null, 2
	case AStar:
		cfg.Alpha = 1
	case BestFirst:
		cfg.Alpha = 0
	case BreadthFirst:
		cfg.Heuristic, cfg.Alpha, cfg.BreadthFirst = heuristic.Octile, 2, true
	case BiDijkstra:
		cfg.Alpha, cfg.Bidirectional = 2, true
	case BiAStar:
		cfg.Alpha, cfg.Bidirectional = 1, true
	case BiBestFirst:
		cfg.Alpha, cfg.Bidirectional = 0, true
	}

	return cfg
}

// Route is the result of one planned pair.
//
// Cost is measured in the search cost model (steps when BreadthFirst).
// Weight is always the grid weight of Path. Both are zero when !Found.
type Route struct {
	Path     []gridgraph.Cell
	Cost     float64
	Weight   float64
	Found    bool
	Expanded int
	Duration time.Duration
}

// Outcome labels of a PlanEvent.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// PlanEvent describes one finished plan.
type PlanEvent struct {
	Algorithm string
	Source    gridgraph.Cell
	Target    gridgraph.Cell
	Found     bool
	Cost      float64
	Expanded  int
	Duration  time.Duration
	Err       error
}

// Outcome returns OutcomeError, OutcomeFound or OutcomeUnreachable.
func (e PlanEvent) Outcome() string {
	switch {
	case e.Err != nil:
		return OutcomeError
	case e.Found:
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}

// Recorder receives a PlanEvent after every plan.
type Recorder interface {
	RecordPlan(PlanEvent)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(PlanEvent)

// RecordPlan calls f(e).
func (f RecorderFunc) RecordPlan(e PlanEvent) { f(e) }
