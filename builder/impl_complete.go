package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// MinCompleteNodes is the smallest K_n that has any nodes at all.
const MinCompleteNodes = 1

// Complete returns the complete simple graph K_n: nodes 0..n-1, every pair
// connected.
func Complete(n int) (*core.Graph, error) {
	if n < MinCompleteNodes {
		return nil, fmt.Errorf("builder: Complete(%d): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("builder: Complete(%d): %w", n, err)
			}
		}
	}
	return g, nil
}
