package drawing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/drawing"
)

func TestComputeCountsBendAndEdgeLengthAcrossAChain(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode()
	bend := g.AddRedNode()
	b := g.AddNode()
	_, err := g.AddEdge(a, bend)
	require.NoError(t, err)
	_, err = g.AddEdge(bend, b)
	require.NoError(t, err)

	pos := core.NewPositions()
	pos.Set(a, core.Point{X: 0, Y: 0})
	pos.Set(bend, core.Point{X: 2, Y: 0})
	pos.Set(b, core.Point{X: 2, Y: 3})

	stats, err := drawing.Compute(g, pos)
	require.NoError(t, err)

	require.Equal(t, 1, stats.TotalBends)
	require.Equal(t, 5, stats.TotalEdgeLength)
	require.Equal(t, 5, stats.MaxEdgeLength)
	require.Equal(t, 1, stats.MaxBendsPerEdge)
	require.Equal(t, 12, stats.Area)
	require.Equal(t, 0, stats.Crossings)
}

func TestComputeIsZeroBendsForADirectEdge(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	pos := core.NewPositions()
	pos.Set(a, core.Point{X: 0, Y: 0})
	pos.Set(b, core.Point{X: 3, Y: 0})

	stats, err := drawing.Compute(g, pos)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalBends)
	require.Equal(t, 0, stats.MaxBendsPerEdge)
	require.Equal(t, 3, stats.TotalEdgeLength)
}
