package highdegree

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// LowDegreeDraw draws a graph already known to have maximum degree 4,
// returning its shape and positions. package drawing supplies the real
// implementation; Draw takes it as a parameter to avoid an import cycle.
type LowDegreeDraw func(*core.Graph) (*core.Shape, *core.Positions, error)

// Draw extracts g's maximal degree-4 subgraph, draws it with
// drawLowDegree, then splices every removed edge back in via
// AddBackEdge. It returns the augmented graph (original nodes plus
// spliced bend chains), its shape, and its positions.
func Draw(g *core.Graph, drawLowDegree LowDegreeDraw) (*core.Graph, *core.Shape, *core.Positions, error) {
	sub, removed := ComputeMaximalDegreeFourSubgraph(g)

	connected, err := CheckConnected(sub)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("highdegree: Draw: %w", err)
	}
	if !connected {
		return nil, nil, nil, fmt.Errorf("highdegree: Draw: %w", ErrDisconnectedSubgraph)
	}

	shape, positions, err := drawLowDegree(sub)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("highdegree: Draw: %w", err)
	}

	for _, uv := range removed {
		if err := AddBackEdge(sub, shape, positions, uv[0], uv[1]); err != nil {
			return nil, nil, nil, fmt.Errorf("highdegree: Draw: %w", err)
		}
	}
	AllPositivePositions(positions)

	return sub, shape, positions, nil
}
