package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
	"github.com/katalvlaran/gridroute/planner"
	"github.com/katalvlaran/gridroute/search"
)

// ErrBadScenario indicates a scenario file that parses but cannot be planned.
var ErrBadScenario = errors.New("gridroute: invalid scenario")

// Scenario is the YAML description of one planning run.
//
//	grid: [[1, 1, 1], [1, 0, 1], [1, 0, 1]]   # or image: map.png
//	diagonal: true
//	algorithm: astar
//	heuristic: octile                        # optional override
//	alpha: 1.5                               # optional override
//	pairs:
//	  - source: [2, 0]
//	    target: [2, 2]
type Scenario struct {
	Grid           [][]int     `yaml:"grid"`
	Image          string      `yaml:"image"`
	Threshold      *int        `yaml:"threshold"`
	Diagonal       bool        `yaml:"diagonal"`
	DiagonalFactor float64     `yaml:"diagonal_factor"`
	Weights        [][]float64 `yaml:"weights"`
	Algorithm      string      `yaml:"algorithm"`
	Heuristic      string      `yaml:"heuristic"`
	Alpha          *float64    `yaml:"alpha"`
	Pairs          []PairSpec  `yaml:"pairs"`
}

// PairSpec is one source/target query as [row, col] coordinates.
type PairSpec struct {
	Source []int `yaml:"source"`
	Target []int `yaml:"target"`
}

// LoadScenario reads and validates a scenario file. Unknown keys are rejected.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var s Scenario
	if err = dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadScenario, path, err)
	}
	if err = s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Scenario) validate() error {
	switch {
	case len(s.Grid) == 0 && s.Image == "":
		return fmt.Errorf("%w: one of grid or image is required", ErrBadScenario)
	case len(s.Grid) != 0 && s.Image != "":
		return fmt.Errorf("%w: grid and image are mutually exclusive", ErrBadScenario)
	case len(s.Pairs) == 0:
		return fmt.Errorf("%w: no pairs to plan", ErrBadScenario)
	}
	for i, p := range s.Pairs {
		if len(p.Source) != 2 || len(p.Target) != 2 {
			return fmt.Errorf("%w: pair %d: source and target must be [row, col]", ErrBadScenario, i)
		}
	}

	return nil
}

// gridOptions translates the scenario into grid construction options.
func (s *Scenario) gridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if s.Threshold != nil {
		opts.WalkableThreshold = *s.Threshold
	}
	if s.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	opts.Weights = s.Weights
	if s.DiagonalFactor != 0 {
		opts.DiagonalFactor = s.DiagonalFactor
	}

	return opts
}

// Graph builds the grid, loading the image relative to the scenario file.
func (s *Scenario) Graph(in *Input) (*gridgraph.GridGraph, error) {
	if s.Image == "" {
		return gridgraph.NewGridGraph(s.Grid, s.gridOptions())
	}
	f, err := os.Open(in.resolve(s.Image))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gridgraph.FromImage(f, s.gridOptions())
}

// PlannerOptions returns the preset and overrides selected by the scenario
// and the --algorithm flag, which wins over the file.
func (s *Scenario) PlannerOptions(in *Input) (planner.Preset, []planner.Option, error) {
	name := s.Algorithm
	if in.algorithm != "" {
		name = in.algorithm
	}
	if name == "" {
		name = planner.AStar.String()
	}
	preset, err := planner.ParsePreset(name)
	if err != nil {
		return 0, nil, err
	}

	var opts []planner.Option
	if s.Heuristic != "" {
		k, err := heuristic.ParseKind(s.Heuristic)
		if err != nil {
			return 0, nil, err
		}
		opts = append(opts, planner.WithHeuristic(k))
	}
	if s.Alpha != nil {
		opts = append(opts, planner.WithAlpha(*s.Alpha))
	}
	if in.precheck {
		opts = append(opts, planner.WithComponentPrecheck(true))
	}

	return preset, opts, nil
}

// Queries converts the pair specs into search pairs.
func (s *Scenario) Queries() []search.Pair[gridgraph.Cell] {
	pairs := make([]search.Pair[gridgraph.Cell], len(s.Pairs))
	for i, p := range s.Pairs {
		pairs[i] = search.Pair[gridgraph.Cell]{
			Source: gridgraph.Cell{Row: p.Source[0], Col: p.Source[1]},
			Target: gridgraph.Cell{Row: p.Target[0], Col: p.Target[1]},
		}
	}

	return pairs
}
