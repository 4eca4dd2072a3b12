package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// MinPathNodes is the smallest path size that has at least one edge.
const MinPathNodes = 2

// Path returns the simple path P_n: n nodes 0..n-1 connected in a line.
func Path(n int) (*core.Graph, error) {
	if n < MinPathNodes {
		return nil, fmt.Errorf("builder: Path(%d): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("builder: Path(%d): %w", n, err)
		}
	}
	return g, nil
}
