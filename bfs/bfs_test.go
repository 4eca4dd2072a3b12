package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/bfs"
	"github.com/katalvlaran/orthodraw/builder"
)

func TestBFSBuildsSpanningTreeOverPath(t *testing.T) {
	g, err := builder.Path(4) // 0-1-2-3
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, res.Order)
	require.Equal(t, 0, res.Depth[0])
	require.Equal(t, 3, res.Depth[3])
	require.Equal(t, 2, res.Parent[3])
}

func TestBFSPathToRoot(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	require.Equal(t, []int{3, 2, 1, 0}, res.PathToRoot(3))
}

func TestBFSRejectsUnknownStart(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)
	_, err = bfs.BFS(g, 99)
	require.True(t, errors.Is(err, bfs.ErrStartNodeNotFound))
}

func TestBFSNilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.True(t, errors.Is(err, bfs.ErrGraphNil))
}
