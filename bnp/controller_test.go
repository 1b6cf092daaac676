package bnp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pcpbnp/solver/bnp"
	"github.com/pcpbnp/solver/genbuilder"
	"github.com/pcpbnp/solver/pcpgraph"
)

// trivialInstance mirrors spec scenario 1: three clusters of two vertices
// each, where every pair of clusters shares at least one conflict edge.
func trivialInstance(t *testing.T) *pcpgraph.Graph {
	t.Helper()
	assign := []pcpgraph.ClusterID{0, 0, 1, 1, 2, 2}
	edges := []pcpgraph.Edge{{U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}, {U: 0, V: 4}}
	g, err := pcpgraph.NewGraph(assign, 3, edges)
	require.NoError(t, err)
	return g
}

func emptyEdgeInstance(t *testing.T) *pcpgraph.Graph {
	t.Helper()
	assign := make([]pcpgraph.ClusterID, 10)
	for i := range assign {
		assign[i] = pcpgraph.ClusterID(i / 2)
	}
	g, err := pcpgraph.NewGraph(assign, 5, nil)
	require.NoError(t, err)
	return g
}

func TestSolve_TrivialThreeClusterInstanceOptimumIsThree(t *testing.T) {
	g := trivialInstance(t)
	c := bnp.New(g, 10)
	result := c.Solve(time.Time{})

	require.Equal(t, bnp.StatusOptimal, result.Status)
	require.InDelta(t, 3.0, result.Objective, 1e-6)
}

func TestSolve_EmptyEdgeInstanceOptimumIsOne(t *testing.T) {
	g := emptyEdgeInstance(t)
	c := bnp.New(g, 10)
	result := c.Solve(time.Time{})

	require.Equal(t, bnp.StatusOptimal, result.Status)
	require.InDelta(t, 1.0, result.Objective, 1e-6)
}

func TestSolve_DeadlineInThePastYieldsNonOptimalStatus(t *testing.T) {
	g := trivialInstance(t)
	c := bnp.New(g, 10)
	result := c.Solve(time.Now().Add(-time.Hour))

	require.NotEqual(t, bnp.StatusOptimal, result.Status)
}

// TestSolve_CompleteGraphFourClustersOptimumIsFour exercises the complete
// multipartite conflict structure: every inter-cluster pair is adjacent, so
// no two clusters can ever share a color and the optimum equals the number
// of clusters.
func TestSolve_CompleteGraphFourClustersOptimumIsFour(t *testing.T) {
	g, err := genbuilder.Complete(4, genbuilder.WithClusterSize(2))
	require.NoError(t, err)

	c := bnp.New(g, 10)
	result := c.Solve(time.Now().Add(30 * time.Second))

	require.Equal(t, bnp.StatusOptimal, result.Status)
	require.InDelta(t, 4.0, result.Objective, 1e-6)
}

// TestSolve_GridInstanceOptimumIsAtMostTwo exercises a 3x3 grid (bipartite
// conflicts), one cluster per row: the solver must return an integral
// solution with objective in {1,2}, and the returned columns with positive
// value must jointly cover every cluster.
func TestSolve_GridInstanceOptimumIsAtMostTwo(t *testing.T) {
	g, err := genbuilder.Grid(3, 3)
	require.NoError(t, err)

	c := bnp.New(g, 10)
	result := c.Solve(time.Now().Add(30 * time.Second))

	require.Equal(t, bnp.StatusOptimal, result.Status)
	require.True(t, result.Objective == 1 || result.Objective == 2,
		"expected objective in {1,2}, got %v", result.Objective)

	covered := make(map[pcpgraph.ClusterID]bool)
	for _, col := range result.Columns {
		if result.Solution[col.ID] <= 1e-6 {
			continue
		}
		for _, cid := range col.Clusters(g) {
			covered[cid] = true
		}
	}
	require.Len(t, covered, g.NumClusters(), "every cluster must be covered by the incumbent")
}
