package master_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/master"
	"github.com/pcpbnp/solver/pcpgraph"
)

// trivialGraph mirrors auxgraph's test fixture: 3 clusters of 2 vertices
// each, with enough inter-cluster edges that no single vertex can cover
// more than one cluster.
func trivialGraph(t *testing.T) *pcpgraph.Graph {
	t.Helper()
	assign := []pcpgraph.ClusterID{0, 0, 1, 1, 2, 2}
	edges := []pcpgraph.Edge{{U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}, {U: 0, V: 4}}
	g, err := pcpgraph.NewGraph(assign, 3, edges)
	require.NoError(t, err)
	return g
}

func artificialPool(g *pcpgraph.Graph) []*column.Column {
	var cols []*column.Column
	var ctr column.Counter
	for _, c := range g.Clusters() {
		v := c.Members[0]
		cols = append(cols, column.NewArtificial(ctr.Next(), v, column.ArtificialPenalty))
	}
	return cols
}

func TestSolve_ArtificialOnlyRootIsFeasibleButExpensive(t *testing.T) {
	g := trivialGraph(t)
	m := master.New(g)
	for _, c := range artificialPool(g) {
		m.AddColumn(c)
	}

	sol, err := m.Solve(time.Time{})
	require.NoError(t, err)
	require.InDelta(t, 3*column.ArtificialPenalty, sol.Objective, 1e-6)
	require.Len(t, sol.Duals, 3)
}

func TestSolve_RealColumnsDriveDownObjective(t *testing.T) {
	g := trivialGraph(t)
	m := master.New(g)
	var ctr column.Counter
	for _, c := range artificialPool(g) {
		m.AddColumn(c)
	}
	// vertices 1, 3, 5 are one per cluster, so this single column covers every
	// cluster on its own (the RMP does not check that a column is an
	// independent set; 1 and 3 are in fact adjacent in this graph).
	m.AddColumn(column.New(ctr.Next(), []pcpgraph.VertexID{1, 3, 5}, "test"))

	sol, err := m.Solve(time.Time{})
	require.NoError(t, err)
	require.InDelta(t, 1.0, sol.Objective, 1e-6)
	require.Len(t, sol.Duals, 3)
	for _, d := range sol.Duals {
		require.GreaterOrEqual(t, d, -1e-9)
	}
}

func TestSolve_DeadlineAlreadyPassedReturnsTimeout(t *testing.T) {
	g := trivialGraph(t)
	m := master.New(g)
	for _, c := range artificialPool(g) {
		m.AddColumn(c)
	}

	_, err := m.Solve(time.Now().Add(-time.Second))
	require.Error(t, err)
}

func TestSolve_EmptyPoolIsAnError(t *testing.T) {
	g := trivialGraph(t)
	m := master.New(g)
	_, err := m.Solve(time.Time{})
	require.Error(t, err)
}
