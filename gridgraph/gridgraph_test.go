package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/gridgraph"
)

func TestShortestFreePathAvoidsOccupiedCells(t *testing.T) {
	g := gridgraph.New(0, 0, 4, 4, 0)
	// wall across y=2 except a gap at x=3
	for x := 0; x <= 4; x++ {
		if x == 3 {
			continue
		}
		require.NoError(t, g.Occupy(x, 2))
	}

	path, err := g.ShortestFreePath(0, 0, 0, 4)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	passesThroughGap := false
	for _, cell := range path {
		if cell[0] == 3 && cell[1] == 2 {
			passesThroughGap = true
		}
		require.False(t, g.IsOccupied(cell[0], cell[1]) && !(cell[0] == 3 && cell[1] == 2),
			"path must not cross occupied cells when a free route exists")
	}
	require.True(t, passesThroughGap)
}

func TestShortestFreePathDirectWhenUnobstructed(t *testing.T) {
	g := gridgraph.New(0, 0, 10, 10, 0)
	path, err := g.ShortestFreePath(0, 0, 3, 0)
	require.NoError(t, err)
	require.Len(t, path, 4)
}

func TestOccupyRejectsOutOfBounds(t *testing.T) {
	g := gridgraph.New(0, 0, 2, 2, 0)
	require.ErrorIs(t, g.Occupy(10, 10), gridgraph.ErrOutOfBounds)
}

func TestIsOccupiedTreatsOutOfBoundsAsBlocked(t *testing.T) {
	g := gridgraph.New(0, 0, 2, 2, 0)
	require.True(t, g.IsOccupied(-5, -5))
}
