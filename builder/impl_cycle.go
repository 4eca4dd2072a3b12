package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// MinCycleNodes is the smallest cycle size that is a simple ring without
// loops or parallel edges.
const MinCycleNodes = 3

// Cycle returns the simple cycle C_n: n nodes 0..n-1 connected in a ring.
func Cycle(n int) (*core.Graph, error) {
	if n < MinCycleNodes {
		return nil, fmt.Errorf("builder: Cycle(%d): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("builder: Cycle(%d): %w", n, err)
		}
	}
	return g, nil
}
