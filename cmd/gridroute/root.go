package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
	"github.com/katalvlaran/gridroute/metrics"
	"github.com/katalvlaran/gridroute/planner"
)

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gridroute",
		Short:        "Plan shortest routes on occupancy grids",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan every pair of a scenario file",
		Args:  cobra.NoArgs,
		RunE:  newPlanCommand(ctx, input),
	}
	planCmd.Flags().StringVarP(&input.scenarioPath, "file", "f", "scenario.yml", "path to scenario file")
	planCmd.Flags().StringVarP(&input.algorithm, "algorithm", "a", "", "planner preset, overrides the scenario (dijkstra, astar, bestfirst, breadthfirst, bidijkstra, biastar, bibestfirst)")
	planCmd.Flags().DurationVar(&input.timeout, "timeout", 0, "abort planning after this duration (0 disables)")
	planCmd.Flags().BoolVar(&input.precheck, "precheck", false, "skip pairs lying in different connected components")
	planCmd.Flags().BoolVar(&input.showMetrics, "metrics", false, "print plan counters after the run")

	rootCmd.AddCommand(planCmd,
		&cobra.Command{
			Use:   "heuristics",
			Short: "List available heuristics",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				for _, k := range heuristic.Kinds() {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
			},
		},
		&cobra.Command{
			Use:   "presets",
			Short: "List planner presets and their parameters",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				for _, p := range planner.Presets() {
					c := planner.PresetConfig(p)
					fmt.Fprintf(cmd.OutOrStdout(), "%-13s heuristic=%-9s alpha=%g bidirectional=%t breadthfirst=%t\n",
						p, c.Heuristic, c.Alpha, c.Bidirectional, c.BreadthFirst)
				}
			},
		},
	)

	return rootCmd
}

func newPlanCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		log.Debugf("Loading scenario from %s", input.scenarioPath)
		s, err := LoadScenario(input.scenarioPath)
		if err != nil {
			return err
		}
		g, err := s.Graph(input)
		if err != nil {
			return err
		}
		preset, opts, err := s.PlannerOptions(input)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		opts = append(opts, planner.WithRecorder(metrics.NewPlanMetrics(reg)))
		p, err := planner.New(preset, opts...)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"algorithm": p.Name(),
			"rows":      g.Rows,
			"cols":      g.Cols,
			"walkable":  g.WalkableCount(),
		}).Debug("grid ready")

		runCtx := ctx
		if input.timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, input.timeout)
			defer cancel()
		}

		out := cmd.OutOrStdout()
		pairs := s.Queries()
		routes, err := p.MultiPlan(runCtx, g, pairs)
		for i, r := range routes {
			printRoute(out, pairs[i].Source, pairs[i].Target, r)
		}
		if input.showMetrics {
			if merr := printCounters(out, reg); merr != nil {
				return merr
			}
		}

		return err
	}
}

func printRoute(w io.Writer, src, dst gridgraph.Cell, r planner.Route) {
	if !r.Found {
		fmt.Fprintf(w, "%v -> %v: unreachable (expanded=%d)\n", src, dst, r.Expanded)
		return
	}
	cells := make([]string, len(r.Path))
	for i, c := range r.Path {
		cells[i] = c.String()
	}
	fmt.Fprintf(w, "%v -> %v: cost=%.3f weight=%.3f expanded=%d path=%s\n",
		src, dst, r.Cost, r.Weight, r.Expanded, strings.Join(cells, " "))
}

// printCounters writes gridroute_plans_total samples, one per label set.
func printCounters(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, f := range families {
		if f.GetName() != "gridroute_plans_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", f.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}

	return nil
}
