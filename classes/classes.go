package classes

import (
	"fmt"
	"sort"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/orthodraw/core"
)

// ErrShapeIncomplete is returned when Build finds an undirected edge with
// no assigned direction; classes can only be computed over a fully shaped
// graph.
var ErrShapeIncomplete = fmt.Errorf("classes: shape has an undirected edge with no assigned direction")

// Result holds the per-node class assignments produced by Build.
type Result struct {
	XClass      map[int]int // node id -> x-equivalence class id
	YClass      map[int]int // node id -> y-equivalence class id
	NumXClasses int
	NumYClasses int
}

// Build partitions g's nodes into x-classes (flooding Vertical edges) and
// y-classes (flooding Horizontal edges) of s.
func Build(g *core.Graph, s *core.Shape) (*Result, error) {
	if err := checkFullyShaped(g, s); err != nil {
		return nil, err
	}

	xClass, numX := flood(g, s, true)
	yClass, numY := flood(g, s, false)

	return &Result{
		XClass:      xClass,
		YClass:      yClass,
		NumXClasses: numX,
		NumYClasses: numY,
	}, nil
}

func checkFullyShaped(g *core.Graph, s *core.Shape) error {
	for _, uv := range g.UndirectedEdges() {
		if _, ok := s.Direction(uv[0], uv[1]); !ok {
			return fmt.Errorf("classes: Build(%d,%d): %w", uv[0], uv[1], ErrShapeIncomplete)
		}
	}
	return nil
}

// flood assigns class ids by flooding through edges whose shape direction
// matches the requested orientation (vertical for x-classes, horizontal for
// y-classes). Nodes reachable only through the opposite orientation end up
// in singleton classes of their own.
func flood(g *core.Graph, s *core.Shape, vertical bool) (map[int]int, int) {
	ids := g.Nodes()
	sort.Ints(ids)

	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	visited := bits.New(maxID + 1)

	class := make(map[int]int, len(ids))
	nextClass := 0

	for _, start := range ids {
		if visited.Bit(start) == 1 {
			continue
		}
		queue := []int{start}
		visited.SetBit(start, 1)
		class[start] = nextClass

		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			for _, nb := range g.Neighbors(n) {
				if visited.Bit(nb) == 1 {
					continue
				}
				d, ok := s.Direction(n, nb)
				if !ok || d.IsVertical() != vertical {
					continue
				}
				visited.SetBit(nb, 1)
				class[nb] = nextClass
				queue = append(queue, nb)
			}
		}
		nextClass++
	}
	return class, nextClass
}
