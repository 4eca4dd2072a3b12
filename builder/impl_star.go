package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// MinStarNodes is the smallest star size: one hub plus one leaf.
const MinStarNodes = 2

// Star returns a star with n nodes: hub id 0 and leaves 1..n-1, each
// connected to the hub.
func Star(n int) (*core.Graph, error) {
	if n < MinStarNodes {
		return nil, fmt.Errorf("builder: Star(%d): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	hub := g.AddNode()
	for i := 1; i < n; i++ {
		leaf := g.AddNode()
		if _, err := g.AddEdge(hub, leaf); err != nil {
			return nil, fmt.Errorf("builder: Star(%d): %w", n, err)
		}
	}
	return g, nil
}
