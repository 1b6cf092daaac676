package column_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/pcpgraph"
)

func TestPool_AddRemoveLen(t *testing.T) {
	p := column.NewPool()
	c1 := column.New(1, []pcpgraph.VertexID{0, 1}, "test")
	c2 := column.New(2, []pcpgraph.VertexID{2}, "test")
	p.Add(c1)
	p.Add(c2)
	require.Equal(t, 2, p.Len())

	p.Remove(c1.ID)
	require.Equal(t, 1, p.Len())
	require.Nil(t, p.Get(c1.ID))
	require.NotNil(t, p.Get(c2.ID))
}

func TestPool_FilterPreservesArtificial(t *testing.T) {
	p := column.NewPool()
	art := column.NewArtificial(1, 0, column.ArtificialPenalty)
	real := column.New(2, []pcpgraph.VertexID{1}, "test")
	p.Add(art)
	p.Add(real)

	p.Filter(func(c *column.Column) bool { return c.Artificial || !c.Contains(1) })
	require.Equal(t, 1, p.Len())
	require.True(t, p.Get(art.ID).Artificial)
}

func TestPool_CopyIsolatesFromOriginal(t *testing.T) {
	p := column.NewPool()
	p.Add(column.New(1, []pcpgraph.VertexID{0}, "test"))

	clone := p.Copy()
	clone.Remove(1)

	require.Equal(t, 1, p.Len(), "original pool must be unaffected by clone mutation")
	require.Equal(t, 0, clone.Len())
}

func TestNew_SortsVertices(t *testing.T) {
	c := column.New(1, []pcpgraph.VertexID{3, 1, 2}, "test")
	require.Equal(t, []pcpgraph.VertexID{1, 2, 3}, c.Vertices)
}
