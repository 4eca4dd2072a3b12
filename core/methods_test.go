package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/core"
)

func TestAddNodeAssignsSequentialIDs(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	require.Equal(t, 2, g.NodeCount())

	color, err := g.NodeColor(a)
	require.NoError(t, err)
	require.Equal(t, core.Black, color)

	red := g.AddRedNode()
	color, err = g.NodeColor(red)
	require.NoError(t, err)
	require.Equal(t, core.Red, color)
}

func TestAddEdgeCreatesBothDirections(t *testing.T) {
	g := core.NewGraph()
	u, v := g.AddNode(), g.AddNode()

	eid, err := g.AddEdge(u, v)
	require.NoError(t, err)
	require.True(t, g.HasEdge(u, v))
	require.True(t, g.HasEdge(v, u))
	require.Equal(t, 1, g.EdgeCount())

	gotU, gotV, err := g.Endpoints(eid)
	require.NoError(t, err)
	require.Equal(t, u, gotU)
	require.Equal(t, v, gotV)

	_, err = g.AddEdge(u, v)
	require.True(t, errors.Is(err, core.ErrInvariantViolation))
}

func TestAddEdgeRejectsSelfLoopAndUnknownNode(t *testing.T) {
	g := core.NewGraph()
	u := g.AddNode()

	_, err := g.AddEdge(u, u)
	require.True(t, errors.Is(err, core.ErrInvariantViolation))

	_, err = g.AddEdge(u, 99)
	require.True(t, errors.Is(err, core.ErrInvariantViolation))
}

func TestRemoveNodeDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode(b))
	require.False(t, g.HasNode(b))
	require.False(t, g.HasEdge(a, b))
	require.False(t, g.HasEdge(c, b))
	require.Equal(t, 0, g.EdgeCount())
}

func TestRemoveEdgeIsSymmetric(t *testing.T) {
	g := core.NewGraph()
	u, v := g.AddNode(), g.AddNode()
	_, err := g.AddEdge(u, v)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(u, v))
	require.False(t, g.HasEdge(u, v))
	require.False(t, g.HasEdge(v, u))

	err = g.RemoveEdge(u, v)
	require.True(t, errors.Is(err, core.ErrInvariantViolation))
}

func TestUndirectedEdgesReportsEachPairOnce(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	pairs := g.UndirectedEdges()
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		require.Less(t, p[0], p[1])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddNode(), g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	clone := g.Clone()
	require.NoError(t, clone.RemoveEdge(a, b))
	require.True(t, g.HasEdge(a, b), "mutating the clone must not affect the original")
}

func TestInducedSubgraphKeepsOnlySelectedNodes(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	sub := g.InducedSubgraph(map[int]bool{a: true, b: true})
	require.True(t, sub.HasNode(a))
	require.True(t, sub.HasNode(b))
	require.False(t, sub.HasNode(c))
	require.Equal(t, 1, sub.EdgeCount())
}
