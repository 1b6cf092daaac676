package pcpgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcpbnp/solver/pcpgraph"
)

// TestNewGraph_TrivialThreeClusters builds spec §8 scenario 1's instance and
// checks the partition and adjacency invariants NewGraph is responsible for.
func TestNewGraph_TrivialThreeClusters(t *testing.T) {
	// clusters: Q1={0,1} Q2={2,3} Q3={4,5}
	assign := []pcpgraph.ClusterID{0, 0, 1, 1, 2, 2}
	edges := []pcpgraph.Edge{
		{U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}, {U: 0, V: 4},
	}

	g, err := pcpgraph.NewGraph(assign, 3, edges)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 3, g.NumClusters())

	require.ElementsMatch(t, []pcpgraph.VertexID{0, 1}, g.Cluster(0).Members)
	require.True(t, g.HasEdge(0, 2))
	require.True(t, g.HasEdge(2, 0)) // order-insensitive
	require.False(t, g.HasEdge(0, 1))
}

func TestNewGraph_RejectsOutOfRangeCluster(t *testing.T) {
	_, err := pcpgraph.NewGraph([]pcpgraph.ClusterID{0, 5}, 2, nil)
	require.ErrorIs(t, err, pcpgraph.ErrClusterRange)
}

func TestNewGraph_RejectsEmptyCluster(t *testing.T) {
	_, err := pcpgraph.NewGraph([]pcpgraph.ClusterID{0, 0}, 2, nil)
	require.ErrorIs(t, err, pcpgraph.ErrEmptyCluster)
}

func TestNewGraph_RejectsDanglingEdgeEndpoint(t *testing.T) {
	_, err := pcpgraph.NewGraph([]pcpgraph.ClusterID{0}, 1, []pcpgraph.Edge{{U: 0, V: 7}})
	require.ErrorIs(t, err, pcpgraph.ErrVertexRange)
}

func TestEdge_NormalizedIsOrderInsensitive(t *testing.T) {
	require.Equal(t, pcpgraph.Edge{U: 1, V: 2}, pcpgraph.Edge{U: 2, V: 1}.Normalized())
}
