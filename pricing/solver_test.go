package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
	"github.com/pcpbnp/solver/pricing"
)

func trivialGraph(t *testing.T) *pcpgraph.Graph {
	t.Helper()
	assign := []pcpgraph.ClusterID{0, 0, 1, 1, 2, 2}
	edges := []pcpgraph.Edge{{U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}, {U: 0, V: 4}}
	g, err := pcpgraph.NewGraph(assign, 3, edges)
	require.NoError(t, err)
	return g
}

func TestSolve_FindsBestIndependentSetAboveThreshold(t *testing.T) {
	g := trivialGraph(t)
	ag := auxgraph.New(g)
	duals := []float64{1, 1, 1} // best: one representative per cluster, weight 3

	var ctr column.Counter
	s := pricing.New(5)
	cols, err := s.Solve(g, ag, duals, &ctr, time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, cols)

	best := cols[0]
	require.Len(t, best.Clusters(g), 3, "best column should cover all three clusters")
}

func TestSolve_DiscardsSolutionsAtOrBelowThreshold(t *testing.T) {
	g := trivialGraph(t)
	ag := auxgraph.New(g)
	// a single vertex has weight 1 at most; 1 <= 1+epsilon so nothing qualifies
	// unless multiple non-adjacent vertices combine above threshold.
	duals := []float64{0.3, 0.3, 0.3}

	var ctr column.Counter
	s := pricing.New(5)
	cols, err := s.Solve(g, ag, duals, &ctr, time.Time{})
	require.NoError(t, err)
	require.Empty(t, cols)
}

func TestSolve_ReturnsAtMostPoolSizeDistinctColumns(t *testing.T) {
	g := trivialGraph(t)
	ag := auxgraph.New(g)
	duals := []float64{5, 5, 5}

	var ctr column.Counter
	s := pricing.New(2)
	cols, err := s.Solve(g, ag, duals, &ctr, time.Time{})
	require.NoError(t, err)
	require.LessOrEqual(t, len(cols), 2)

	if len(cols) == 2 {
		require.GreaterOrEqual(t, weightOf(g, cols[0], duals), weightOf(g, cols[1], duals))
	}
}

func TestSolve_RejectsMismatchedDualsLength(t *testing.T) {
	g := trivialGraph(t)
	ag := auxgraph.New(g)
	var ctr column.Counter
	s := pricing.New(5)

	_, err := s.Solve(g, ag, []float64{1, 1}, &ctr, time.Time{})
	require.Error(t, err)
}

func TestSolve_PastDeadlineReturnsTimeout(t *testing.T) {
	g := trivialGraph(t)
	ag := auxgraph.New(g)
	duals := []float64{1, 1, 1}

	var ctr column.Counter
	s := pricing.New(5)
	_, err := s.Solve(g, ag, duals, &ctr, time.Now().Add(-time.Hour))
	require.Error(t, err)
	require.True(t, pcperr.Is(err, pcperr.KindTimeout))
}

func weightOf(g *pcpgraph.Graph, c *column.Column, duals []float64) float64 {
	sum := 0.0
	for _, cid := range c.Clusters(g) {
		sum += duals[cid]
	}
	return sum
}
