package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/core"
)

func TestShapeSetIsSymmetric(t *testing.T) {
	s := core.NewShape()
	require.NoError(t, s.Set(1, 2, core.Right))

	d, ok := s.Direction(1, 2)
	require.True(t, ok)
	require.Equal(t, core.Right, d)

	d, ok = s.Direction(2, 1)
	require.True(t, ok)
	require.Equal(t, core.Left, d)

	nb, ok := s.NeighborInDirection(1, core.Right)
	require.True(t, ok)
	require.Equal(t, 2, nb)

	nb, ok = s.NeighborInDirection(2, core.Left)
	require.True(t, ok)
	require.Equal(t, 1, nb)
}

func TestShapeSetRejectsDoubleAssignment(t *testing.T) {
	s := core.NewShape()
	require.NoError(t, s.Set(1, 2, core.Up))
	err := s.Set(1, 2, core.Down)
	require.True(t, errors.Is(err, core.ErrInvariantViolation))
}

func TestShapeUnsetClearsBothOrientations(t *testing.T) {
	s := core.NewShape()
	require.NoError(t, s.Set(1, 2, core.Up))
	s.Unset(1, 2)

	_, ok := s.Direction(1, 2)
	require.False(t, ok)
	_, ok = s.Direction(2, 1)
	require.False(t, ok)
	_, ok = s.NeighborInDirection(1, core.Up)
	require.False(t, ok)
}

func TestDirectionOppositeAndOrientation(t *testing.T) {
	require.Equal(t, core.Down, core.Up.Opposite())
	require.Equal(t, core.Right, core.Left.Opposite())
	require.True(t, core.Left.IsHorizontal())
	require.True(t, core.Up.IsVertical())
	require.False(t, core.Up.IsHorizontal())
}
