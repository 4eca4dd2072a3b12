package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// MinWheelNodes is the smallest wheel size: a 3-node outer ring plus a hub.
const MinWheelNodes = 4

// Wheel returns W_n = C_{n-1} plus a hub connected to every ring node. Ring
// nodes are ids 0..n-2, the hub is id n-1. For n-1 > 4 the hub has degree
// > 4, making Wheel a natural fixture for exercising high-degree rewiring.
func Wheel(n int) (*core.Graph, error) {
	if n < MinWheelNodes {
		return nil, fmt.Errorf("builder: Wheel(%d): %w", n, ErrTooFewVertices)
	}

	g, err := Cycle(n - 1)
	if err != nil {
		return nil, fmt.Errorf("builder: Wheel(%d): ring: %w", n, err)
	}

	hub := g.AddNode()
	for i := 0; i < n-1; i++ {
		if _, err := g.AddEdge(hub, i); err != nil {
			return nil, fmt.Errorf("builder: Wheel(%d): spoke %d: %w", n, i, err)
		}
	}
	return g, nil
}
