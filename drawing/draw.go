package drawing

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/classes"
	"github.com/katalvlaran/orthodraw/compact"
	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/cyclebasis"
	"github.com/katalvlaran/orthodraw/highdegree"
	"github.com/katalvlaran/orthodraw/ordering"
	"github.com/katalvlaran/orthodraw/refine"
	"github.com/katalvlaran/orthodraw/shape"
)

// Result is a finished orthogonal drawing: the augmented graph (a copy of
// the input plus any bend nodes that shape synthesis or high-degree
// rewiring inserted), its shape, and an integer position for every node.
type Result struct {
	Graph     *core.Graph
	Shape     *core.Shape
	Positions *core.Positions
}

// Draw lays out g orthogonally. Nodes of degree <= 4 go through the
// direct shape/ordering/refine/compact pipeline; if any node exceeds
// degree 4, the graph is first routed through package highdegree, which
// draws a degree-capped subgraph and splices the excess edges back in as
// bend chains.
func Draw(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for _, id := range g.Nodes() {
		if g.Degree(id) > 4 {
			augmented, s, positions, err := highdegree.Draw(g, func(sub *core.Graph) (*core.Shape, *core.Positions, error) {
				return drawLowDegree(sub, cfg)
			})
			if err != nil {
				return nil, fmt.Errorf("drawing: Draw: %w", err)
			}
			return &Result{Graph: augmented, Shape: s, Positions: positions}, nil
		}
	}

	augmented := g.Clone()
	s, positions, err := drawLowDegree(augmented, cfg)
	if err != nil {
		return nil, fmt.Errorf("drawing: Draw: %w", err)
	}
	return &Result{Graph: augmented, Shape: s, Positions: positions}, nil
}

// drawLowDegree runs the incremental shape/ordering loop on a graph
// already known to have maximum degree 4: synthesize a shape, partition
// into equivalence classes, build the two ordering graphs, and on a
// non-realizable (cyclic) ordering lift the class cycle back to node ids
// and feed it to the next shape synthesis attempt as an extra cycle
// constraint. Once both ordering graphs are acyclic, assign coordinates,
// refine away flat bends, and compact.
func drawLowDegree(g *core.Graph, cfg *config) (*core.Shape, *core.Positions, error) {
	cycles, err := cyclebasis.Build(g)
	if err != nil {
		return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
	}

	for iter := 0; iter < cfg.maxIterations; iter++ {
		s, newCycles, err := shape.BuildShape(g, cycles, cfg.solverPath, cfg.rng, cfg.maxIterations)
		if err != nil {
			return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
		}
		cycles = newCycles

		res, err := classes.Build(g, s)
		if err != nil {
			return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
		}

		ogX := ordering.BuildX(g, s, res)
		ogY := ordering.BuildY(g, s, res)

		relifted := false
		if cycleX, found := ordering.DetectCycle(ogX); found {
			lifted, err := ordering.LiftCycle(g, s, ogX, cycleX, true)
			if err != nil {
				return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
			}
			cycles = append(cycles, lifted)
			relifted = true
		}
		if cycleY, found := ordering.DetectCycle(ogY); found {
			lifted, err := ordering.LiftCycle(g, s, ogY, cycleY, false)
			if err != nil {
				return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
			}
			cycles = append(cycles, lifted)
			relifted = true
		}
		if relifted {
			continue
		}

		xOrder, err := ordering.TopologicalOrder(ogX)
		if err != nil {
			return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
		}
		yOrder, err := ordering.TopologicalOrder(ogY)
		if err != nil {
			return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
		}
		xCoord := ordering.CoordinatesFromOrder(xOrder)
		yCoord := ordering.CoordinatesFromOrder(yOrder)

		positions := core.NewPositions()
		for _, id := range g.Nodes() {
			positions.Set(id, core.Point{X: xCoord[res.XClass[id]], Y: yCoord[res.YClass[id]]})
		}

		if err := refine.Refine(g, s, positions); err != nil {
			return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
		}
		if err := compact.Compact(g, positions); err != nil {
			return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", err)
		}

		return s, positions, nil
	}

	return nil, nil, fmt.Errorf("drawing: drawLowDegree: %w", ErrIterationsExhausted)
}
