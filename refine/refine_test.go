package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/refine"
)

func TestRefineCollapsesFlatRedCorner(t *testing.T) {
	g := core.NewGraph()
	n0 := g.AddNode()
	n1 := g.AddRedNode()
	n2 := g.AddNode()
	_, err := g.AddEdge(n0, n1)
	require.NoError(t, err)
	_, err = g.AddEdge(n1, n2)
	require.NoError(t, err)

	s := core.NewShape()
	require.NoError(t, s.Set(n0, n1, core.Right))
	require.NoError(t, s.Set(n1, n2, core.Right))

	pos := core.NewPositions()
	pos.Set(n1, core.Point{X: 1, Y: 0})

	require.NoError(t, refine.Refine(g, s, pos))

	require.False(t, g.HasNode(n1))
	require.True(t, g.HasEdge(n0, n2))
	d, ok := s.Direction(n0, n2)
	require.True(t, ok)
	require.Equal(t, core.Right, d)
	require.False(t, pos.Has(n1))
}

func TestRefineLeavesGenuineTurnsAlone(t *testing.T) {
	g := core.NewGraph()
	n0 := g.AddNode()
	n1 := g.AddRedNode()
	n2 := g.AddNode()
	_, err := g.AddEdge(n0, n1)
	require.NoError(t, err)
	_, err = g.AddEdge(n1, n2)
	require.NoError(t, err)

	s := core.NewShape()
	require.NoError(t, s.Set(n0, n1, core.Right))
	require.NoError(t, s.Set(n1, n2, core.Down))

	require.NoError(t, refine.Refine(g, s, nil))

	require.True(t, g.HasNode(n1))
	require.False(t, g.HasEdge(n0, n2))
}

func TestRefineIgnoresBlackNodes(t *testing.T) {
	g := core.NewGraph()
	n0 := g.AddNode()
	n1 := g.AddNode()
	n2 := g.AddNode()
	_, err := g.AddEdge(n0, n1)
	require.NoError(t, err)
	_, err = g.AddEdge(n1, n2)
	require.NoError(t, err)

	s := core.NewShape()
	require.NoError(t, s.Set(n0, n1, core.Right))
	require.NoError(t, s.Set(n1, n2, core.Right))

	require.NoError(t, refine.Refine(g, s, nil))
	require.True(t, g.HasNode(n1))
}
