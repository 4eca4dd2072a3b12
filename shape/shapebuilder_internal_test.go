package shape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/cyclebasis"
)

func TestInsertBendInCyclesSplicesBetweenConsecutivePair(t *testing.T) {
	cycles := []cyclebasis.Cycle{{0, 1, 2, 3}}
	out := insertBendInCycles(cycles, 1, 2, 99)
	require.Equal(t, cyclebasis.Cycle{0, 1, 99, 2, 3}, out[0])
}

func TestInsertBendInCyclesHandlesWrapAroundPair(t *testing.T) {
	cycles := []cyclebasis.Cycle{{0, 1, 2, 3}}
	out := insertBendInCycles(cycles, 3, 0, 99)
	require.Equal(t, cyclebasis.Cycle{0, 1, 2, 3, 99}, out[0])
}

func TestInsertBendInCyclesLeavesUnrelatedCyclesAlone(t *testing.T) {
	cycles := []cyclebasis.Cycle{{4, 5, 6}}
	out := insertBendInCycles(cycles, 1, 2, 99)
	require.Equal(t, cyclebasis.Cycle{4, 5, 6}, out[0])
}
