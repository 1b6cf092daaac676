package colgen_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/colgen"
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/genbuilder"
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

func seedPool(g *pcpgraph.Graph, ctr *column.Counter) *column.Pool {
	p := column.NewPool()
	for _, c := range g.Clusters() {
		p.Add(column.NewArtificial(ctr.Next(), c.Members[0], column.ArtificialPenalty))
	}
	return p
}

func TestRun_ConvergesToIntegerOptimumOnTrivialInstance(t *testing.T) {
	g := trivialGraph(t)
	ag := auxgraph.New(g)
	var ctr column.Counter
	pool := seedPool(g, &ctr)

	runner := colgen.New(g, pricing.New(pricing.DefaultPoolSize), &ctr)
	result, err := runner.Run(ag, pool, math.Inf(1), time.Time{})
	require.NoError(t, err)

	// The graph admits a single independent set covering all 3 clusters
	// (e.g. vertices 0,3,5), so the relaxation should converge to objective 1.
	require.InDelta(t, 1.0, result.Solution.Objective, 1e-6)
	require.GreaterOrEqual(t, result.Iterations, 1)
}

func TestRun_StopsWhenLPBoundDominatesIncumbent(t *testing.T) {
	g := trivialGraph(t)
	ag := auxgraph.New(g)
	var ctr column.Counter
	pool := seedPool(g, &ctr)

	runner := colgen.New(g, pricing.New(pricing.DefaultPoolSize), &ctr)
	// upperBound of 1 forces termination the moment z's ceiling reaches 1.
	result, err := runner.Run(ag, pool, 1.0, time.Time{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.Solution.Objective, 1.0-1e-6)
}

// TestRun_SparseTwelveVertexInstanceConvergesWithinIterationBound exercises
// a 12-vertex sparse instance at the root: the number of column-generation
// iterations must stay within the documented bound, and the master
// objective must be monotone (non-increasing as columns are added, since
// widening the RMP's feasible region can never raise its minimum).
func TestRun_SparseTwelveVertexInstanceConvergesWithinIterationBound(t *testing.T) {
	g, err := genbuilder.RandomSparse(4, genbuilder.WithClusterSize(3), genbuilder.WithSeed(7), genbuilder.WithDensity(0.3))
	require.NoError(t, err)

	ag := auxgraph.New(g)
	var ctr column.Counter
	pool := seedPool(g, &ctr)

	runner := colgen.New(g, pricing.New(pricing.DefaultPoolSize), &ctr)
	result, err := runner.Run(ag, pool, math.Inf(1), time.Time{})
	require.NoError(t, err)

	require.LessOrEqual(t, result.Iterations, 50)
	require.NotEmpty(t, result.ObjectiveHistory)

	for i := 1; i < len(result.ObjectiveHistory); i++ {
		require.LessOrEqual(t, result.ObjectiveHistory[i], result.ObjectiveHistory[i-1]+1e-6,
			"master objective must not increase when a new column is added (iteration %d)", i)
	}
}
