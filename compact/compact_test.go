package compact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/builder"
	"github.com/katalvlaran/orthodraw/compact"
	"github.com/katalvlaran/orthodraw/core"
)

func TestCompactXClosesAnUnusedColumn(t *testing.T) {
	g, err := builder.Path(3)
	require.NoError(t, err)
	pos := core.NewPositions()
	// 0 and 1 share no row conflict; leave a gap at x=1 unused so that
	// node 2, placed at x=2, should be free to slide to x=1.
	pos.Set(0, core.Point{X: 0, Y: 0})
	pos.Set(1, core.Point{X: 0, Y: 1})
	pos.Set(2, core.Point{X: 2, Y: 1})

	require.NoError(t, compact.CompactX(g, pos))

	p2, err := pos.Get(2)
	require.NoError(t, err)
	require.Equal(t, 1, p2.X)
}

func TestCompactXDoesNotMoveThroughAnOverlappingSpan(t *testing.T) {
	g, err := builder.Path(3)
	require.NoError(t, err)
	pos := core.NewPositions()
	pos.Set(0, core.Point{X: 0, Y: 0})
	pos.Set(1, core.Point{X: 1, Y: 0}) // same row as node at x=2: blocks
	pos.Set(2, core.Point{X: 2, Y: 0})

	require.NoError(t, compact.CompactX(g, pos))

	p2, err := pos.Get(2)
	require.NoError(t, err)
	require.Equal(t, 2, p2.X)
}

func TestCompactYMirrorsCompactXAlongRows(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)
	pos := core.NewPositions()
	pos.Set(0, core.Point{X: 0, Y: 0})
	pos.Set(1, core.Point{X: 1, Y: 2})

	require.NoError(t, compact.CompactY(g, pos))

	p1, err := pos.Get(1)
	require.NoError(t, err)
	require.Equal(t, 0, p1.Y)
}
