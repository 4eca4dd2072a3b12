package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/core"
)

func TestEdgeLabelWriteOnce(t *testing.T) {
	g := core.NewGraph()
	u, v := g.AddNode(), g.AddNode()
	eid, err := g.AddEdge(u, v)
	require.NoError(t, err)

	_, err = g.EdgeLabel(eid)
	require.True(t, errors.Is(err, core.ErrMalformedInput))

	require.NoError(t, g.SetEdgeLabel(eid, "bridge"))
	label, err := g.EdgeLabel(eid)
	require.NoError(t, err)
	require.Equal(t, "bridge", label)

	err = g.SetEdgeLabel(eid, "again")
	require.True(t, errors.Is(err, core.ErrInvariantViolation))
}

func TestChainKeyMatchesBitPacking(t *testing.T) {
	require.Equal(t, uint32(5)<<16^uint32(3), core.ChainKey(5, 3))
}

func TestChainSegmentsPreserveOrder(t *testing.T) {
	g := core.NewGraph()
	key := core.ChainKey(1, 9)

	_, ok := g.ChainSegments(key)
	require.False(t, ok)

	g.AppendChainSegment(key, core.ChainSegment{U: 1, V: 2})
	g.AppendChainSegment(key, core.ChainSegment{U: 2, V: 9})

	segs, ok := g.ChainSegments(key)
	require.True(t, ok)
	require.Equal(t, []core.ChainSegment{{U: 1, V: 2}, {U: 2, V: 9}}, segs)
}
