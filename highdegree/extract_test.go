package highdegree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/builder"
	"github.com/katalvlaran/orthodraw/highdegree"
)

func TestComputeMaximalDegreeFourSubgraphCapsDegree(t *testing.T) {
	g, err := builder.Wheel(8) // hub degree 7
	require.NoError(t, err)

	sub, removed := highdegree.ComputeMaximalDegreeFourSubgraph(g)
	require.NotEmpty(t, removed)

	for _, id := range sub.Nodes() {
		require.LessOrEqual(t, sub.Degree(id), 4)
	}
	require.Equal(t, g.NodeCount(), sub.NodeCount())
}

func TestComputeMaximalDegreeFourSubgraphIsNoOpUnderDegreeFour(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	sub, removed := highdegree.ComputeMaximalDegreeFourSubgraph(g)
	require.Empty(t, removed)
	require.Equal(t, g.EdgeCount(), sub.EdgeCount())
}

func TestCheckConnectedAcceptsConnectedSubgraph(t *testing.T) {
	g, err := builder.Wheel(8)
	require.NoError(t, err)
	sub, _ := highdegree.ComputeMaximalDegreeFourSubgraph(g)

	connected, err := highdegree.CheckConnected(sub)
	require.NoError(t, err)
	// Wheel's ring plus as many spokes as fit at degree 4 stays connected.
	require.True(t, connected)
}
