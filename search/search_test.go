package search_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
	"github.com/katalvlaran/gridroute/search"
)

type Cell = gridgraph.Cell

// scenarioGrid is the reference 3×3 map: the direct column route is walled.
var scenarioGrid = [][]int{
	{1, 1, 1},
	{1, 0, 1},
	{1, 0, 1},
}

func mustGrid(t testing.TB, values [][]int, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.From2D(values, conn)
	require.NoError(t, err)

	return gg
}

func cellHeuristic(kind heuristic.Kind) search.Heuristic[Cell] {
	fn, err := heuristic.DefaultProvider().Func(kind)
	if err != nil {
		panic(err)
	}

	return search.Heuristic[Cell](fn)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestPlan_Validation(t *testing.T) {
	g := mustGrid(t, scenarioGrid, gridgraph.Conn8)
	ok := Cell{Row: 0, Col: 0}
	blocked := Cell{Row: 1, Col: 1}

	cases := []struct {
		name  string
		graph search.Graph[Cell]
		src   Cell
		dst   Cell
		alpha float64
		err   error
	}{
		{"AlphaNegative", g, ok, ok, -0.1, search.ErrBadAlpha},
		{"AlphaTooLarge", g, ok, ok, 2.1, search.ErrBadAlpha},
		{"AlphaNaN", g, ok, ok, math.NaN(), search.ErrBadAlpha},
		{"AlphaBeforeGraph", nil, ok, ok, 3, search.ErrBadAlpha},
		{"NilGraph", nil, ok, ok, 2, search.ErrNilGraph},
		{"TypedNilGraph", (*gridgraph.GridGraph)(nil), ok, ok, 2, search.ErrNilGraph},
		{"SourceBlocked", g, blocked, ok, 2, search.ErrInvalidEndpoint},
		{"TargetOutside", g, ok, Cell{Row: 7, Col: 0}, 2, search.ErrInvalidEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := search.DefaultConfig[Cell]()
			cfg.Alpha = tc.alpha
			_, err := search.Plan(context.Background(), tc.graph, tc.src, tc.dst, cfg)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestPlan_InvalidEndpointNamesSide(t *testing.T) {
	g := mustGrid(t, scenarioGrid, gridgraph.Conn8)
	_, err := search.Plan(context.Background(), g, Cell{Row: 0, Col: 0}, Cell{Row: 2, Col: 1}, search.DefaultConfig[Cell]())
	require.ErrorIs(t, err, search.ErrInvalidEndpoint)
	assert.Contains(t, err.Error(), "target (2,1)")
}

// ------------------------------------------------------------------------
// 2. Reference scenario and degenerate cases
// ------------------------------------------------------------------------

func TestPlan_Scenario(t *testing.T) {
	g := mustGrid(t, scenarioGrid, gridgraph.Conn8)
	src, dst := Cell{Row: 2, Col: 0}, Cell{Row: 2, Col: 2}

	for _, bi := range []bool{false, true} {
		cfg := search.DefaultConfig[Cell]()
		cfg.Bidirectional = bi
		res, err := search.Plan(context.Background(), g, src, dst, cfg)
		require.NoError(t, err)
		require.True(t, res.Found)

		assert.Equal(t, []Cell{{Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, res.Path, "bidirectional=%v", bi)
		assert.InDelta(t, 4.828, res.Cost, 1e-9)

		w, err := search.PathWeight[Cell](g, res.Path)
		require.NoError(t, err)
		assert.InDelta(t, res.Cost, w, 1e-9)
	}
}

func TestPlan_SameEndpoints(t *testing.T) {
	g := mustGrid(t, scenarioGrid, gridgraph.Conn8)
	c := Cell{Row: 0, Col: 2}

	for _, bi := range []bool{false, true} {
		cfg := search.DefaultConfig[Cell]()
		cfg.Bidirectional = bi
		res, err := search.Plan(context.Background(), g, c, c, cfg)
		require.NoError(t, err)
		assert.Equal(t, []Cell{c}, res.Path)
		assert.Zero(t, res.Cost)
		assert.Zero(t, res.Expanded)
		assert.True(t, res.Found)
	}
}

func TestPlan_Unreachable(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 1},
		{1, 0, 1},
	}, gridgraph.Conn8)

	for _, bi := range []bool{false, true} {
		cfg := search.DefaultConfig[Cell]()
		cfg.Bidirectional = bi
		res, err := search.Plan(context.Background(), g, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 2}, cfg)
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Empty(t, res.Path)
		_, ok := res.Weight()
		assert.False(t, ok)
		assert.Positive(t, res.Expanded)
	}
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

func TestPlan_Idempotent(t *testing.T) {
	g := mustGrid(t, scenarioGrid, gridgraph.Conn8)
	cfg := search.Config[Cell]{Heuristic: cellHeuristic(heuristic.Manhattan), Alpha: 1, Bidirectional: true}
	src, dst := Cell{Row: 2, Col: 0}, Cell{Row: 2, Col: 2}

	first, err := search.Plan(context.Background(), g, src, dst, cfg)
	require.NoError(t, err)
	second, err := search.Plan(context.Background(), g, src, dst, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestPlan_AlphaOrdering: with an admissible heuristic, Dijkstra ≤ A* ≤ greedy.
func TestPlan_AlphaOrdering(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 0, 1},
		{0, 0, 0, 1, 0, 1},
		{1, 1, 1, 1, 0, 1},
		{1, 0, 0, 0, 0, 1},
	}, gridgraph.Conn4)
	src, dst := Cell{Row: 5, Col: 0}, Cell{Row: 5, Col: 5}
	h := cellHeuristic(heuristic.Manhattan)

	weight := func(alpha float64) float64 {
		res, err := search.Plan(context.Background(), g, src, dst, search.Config[Cell]{Heuristic: h, Alpha: alpha})
		require.NoError(t, err)
		require.True(t, res.Found)
		w, err := search.PathWeight[Cell](g, res.Path)
		require.NoError(t, err)
		assert.InDelta(t, res.Cost, w, 1e-9)

		return w
	}

	dijkstra, astar, greedy := weight(2), weight(1), weight(0)
	assert.Equal(t, dijkstra, astar)
	assert.LessOrEqual(t, astar, greedy)
	assert.LessOrEqual(t, weight(1.5), weight(0.5))
}

func TestPlan_BidirectionalMatchesUnidirectionalOnOpenGrid(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, gridgraph.Conn8)
	src, dst := Cell{Row: 2, Col: 0}, Cell{Row: 2, Col: 2}

	for _, alpha := range []float64{2, 1, 0} {
		cfg := search.Config[Cell]{Heuristic: cellHeuristic(heuristic.Manhattan), Alpha: alpha}
		uni, err := search.Plan(context.Background(), g, src, dst, cfg)
		require.NoError(t, err)
		cfg.Bidirectional = true
		bi, err := search.Plan(context.Background(), g, src, dst, cfg)
		require.NoError(t, err)

		require.True(t, uni.Found)
		require.True(t, bi.Found)
		assert.InDelta(t, uni.Cost, bi.Cost, 1e-9, "alpha=%v", alpha)
		assert.InDelta(t, 2.0, bi.Cost, 1e-9)
	}
}

// ------------------------------------------------------------------------
// 4. Reopening, step costs and directed graphs
// ------------------------------------------------------------------------

// TestPlan_ReopensImprovedNode: A is popped at cost 3, then improved to 2
// through B and expanded again.
func TestPlan_ReopensImprovedNode(t *testing.T) {
	g := digraph{
		"S": {edge("A", 3), edge("B", 1)},
		"B": {edge("A", 1)},
		"A": {edge("T", 10)},
		"T": nil,
	}
	expanded := map[string]int{}
	cfg := search.Config[string]{
		Heuristic: estimates(map[string]float64{"B": 5}),
		Alpha:     1,
		OnExpand:  func(n string, dir search.Direction) { expanded[n]++ },
	}

	res, err := search.Plan(context.Background(), g, "S", "T", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "A", "T"}, res.Path)
	assert.Equal(t, 12.0, res.Cost)
	assert.Equal(t, 2, expanded["A"])
	assert.Equal(t, 5, res.Expanded)
}

// TestPlan_BidirectionalReopensClosedNode: forward closes A at cost 3, B then
// improves it to 2, A leaves the closed set and is expanded a second time
// before the frontiers meet at C.
func TestPlan_BidirectionalReopensClosedNode(t *testing.T) {
	g := reversible{digraph{
		"S": {edge("A", 3), edge("B", 1)},
		"B": {edge("A", 1)},
		"A": {edge("C", 10)},
		"C": {edge("D", 1)},
		"D": {edge("E", 1)},
		"E": {edge("T", 1)},
		"T": nil,
	}}
	expanded := map[search.Direction]map[string]int{
		search.Forward:  {},
		search.Backward: {},
	}
	cfg := search.Config[string]{
		Heuristic:     estimates(map[string]float64{"B": 5}),
		Alpha:         1,
		Bidirectional: true,
		OnExpand:      func(n string, dir search.Direction) { expanded[dir][n]++ },
	}

	res, err := search.Plan(context.Background(), g, "S", "T", cfg)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"S", "B", "A", "C", "D", "E", "T"}, res.Path)
	assert.Equal(t, 15.0, res.Cost)
	assert.Equal(t, 2, expanded[search.Forward]["A"])
	assert.Zero(t, expanded[search.Backward]["A"])

	w, err := search.PathWeight[string](g, res.Path)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, w)
}

// TestPlan_BidirectionalFirstMeetingCanBeLonger: even with α = 2 the first
// mutual closure (A) is not on the shortest route S B C T.
func TestPlan_BidirectionalFirstMeetingCanBeLonger(t *testing.T) {
	g := digraph{
		"S": {edge("A", 3), edge("B", 2)},
		"A": {edge("S", 3), edge("T", 3)},
		"B": {edge("S", 2), edge("C", 1)},
		"C": {edge("B", 1), edge("T", 2)},
		"T": {edge("A", 3), edge("C", 2)},
	}
	cfg := search.Config[string]{Heuristic: estimates(nil), Alpha: 2}

	uni, err := search.Plan(context.Background(), g, "S", "T", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "C", "T"}, uni.Path)
	assert.Equal(t, 5.0, uni.Cost)

	cfg.Bidirectional = true
	bi, err := search.Plan(context.Background(), g, "S", "T", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "T"}, bi.Path)
	assert.Equal(t, 6.0, bi.Cost)
}

func TestPlan_StepCost(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Weights = [][]float64{
		{1, 9, 1},
		{1, 1, 1},
	}
	g, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, opts)
	require.NoError(t, err)
	src, dst := Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 2}

	weighted, err := search.Plan(context.Background(), g, src, dst, search.DefaultConfig[Cell]())
	require.NoError(t, err)
	assert.Equal(t, 4.0, weighted.Cost) // detour through row 1

	cfg := search.DefaultConfig[Cell]()
	cfg.StepCost = func(_, _ Cell) float64 { return 1 }
	hops, err := search.Plan(context.Background(), g, src, dst, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2.0, hops.Cost)
	assert.Equal(t, []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, hops.Path)

	w, err := search.PathWeight[Cell](g, hops.Path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)
}

func TestPlan_BidirectionalUsesInNeighbors(t *testing.T) {
	g := digraph{
		"S": {edge("A", 1)},
		"A": {edge("T", 1)},
		"T": nil,
	}
	cfg := search.DefaultConfig[string]()
	cfg.Bidirectional = true

	res, err := search.Plan(context.Background(), reversible{g}, "S", "T", cfg)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"S", "A", "T"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)

	// Without InNeighbors the backward side follows outgoing edges of T: none.
	res, err = search.Plan(context.Background(), search.Graph[string](g), "S", "T", cfg)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestPlan_OnExpandDirections(t *testing.T) {
	g := mustGrid(t, scenarioGrid, gridgraph.Conn8)
	seen := map[search.Direction]int{}
	cfg := search.DefaultConfig[Cell]()
	cfg.Bidirectional = true
	cfg.OnExpand = func(_ Cell, dir search.Direction) { seen[dir]++ }

	_, err := search.Plan(context.Background(), g, Cell{Row: 2, Col: 0}, Cell{Row: 2, Col: 2}, cfg)
	require.NoError(t, err)
	assert.Positive(t, seen[search.Forward])
	assert.Equal(t, seen[search.Forward], seen[search.Backward])
	assert.Equal(t, "forward", search.Forward.String())
	assert.Equal(t, "backward", search.Backward.String())
}

// ------------------------------------------------------------------------
// 5. Cancellation and path validation
// ------------------------------------------------------------------------

func TestPlan_Canceled(t *testing.T) {
	g := mustGrid(t, scenarioGrid, gridgraph.Conn8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, bi := range []bool{false, true} {
		cfg := search.DefaultConfig[Cell]()
		cfg.Bidirectional = bi
		_, err := search.Plan(ctx, g, Cell{Row: 2, Col: 0}, Cell{Row: 2, Col: 2}, cfg)
		assert.True(t, errors.Is(err, context.Canceled), "bidirectional=%v: %v", bi, err)
	}
}

func TestPathWeight(t *testing.T) {
	g := digraph{
		"A": {edge("B", 5), edge("B", 2)},
		"B": {edge("C", 1)},
		"C": nil,
	}
	w, err := search.PathWeight[string](g, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	w, err = search.PathWeight[string](g, nil)
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = search.PathWeight[string](g, []string{"A", "C"})
	assert.ErrorIs(t, err, search.ErrNotAdjacent)

	_, err = search.PathWeight[string](nil, []string{"A"})
	assert.ErrorIs(t, err, search.ErrNilGraph)
}
