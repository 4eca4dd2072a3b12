package refine

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// ErrNotABend is returned when Refine is asked to consider a red node
// that does not have exactly two incident edges; shape synthesis never
// produces one, so seeing this indicates a caller bug.
var ErrNotABend = fmt.Errorf("refine: red node does not have exactly two edges")

// Refine scans g for red nodes whose two incident shape edges are both
// horizontal or both vertical (a flat corner) and collapses each into a
// single direct edge between its two neighbours, carrying the direction
// the flat corner already had. positions has the removed bend's entry
// dropped; pass nil if none were assigned yet.
func Refine(g *core.Graph, s *core.Shape, positions *core.Positions) error {
	var toRemove []int
	for _, id := range g.Nodes() {
		color, err := g.NodeColor(id)
		if err != nil || color != core.Red {
			continue
		}
		if g.Degree(id) != 2 {
			return fmt.Errorf("refine: Refine(%d): %w", id, ErrNotABend)
		}
		nb := g.Neighbors(id)
		j1, j2 := nb[0], nb[1]
		d1, ok1 := s.Direction(id, j1)
		d2, ok2 := s.Direction(id, j2)
		if !ok1 || !ok2 {
			continue
		}
		if d1.IsHorizontal() == d2.IsHorizontal() {
			toRemove = append(toRemove, id)
		}
	}

	for _, id := range toRemove {
		nb := g.Neighbors(id)
		j1, j2 := nb[0], nb[1]
		direction, ok := s.Direction(j1, id)
		if !ok {
			return fmt.Errorf("refine: Refine(%d): %w", id, ErrNotABend)
		}

		if err := g.RemoveNode(id); err != nil {
			return fmt.Errorf("refine: Refine(%d): %w", id, err)
		}
		if _, err := g.AddEdge(j1, j2); err != nil {
			return fmt.Errorf("refine: Refine(%d): %w", id, err)
		}

		s.Unset(id, j1)
		s.Unset(id, j2)
		if err := s.Set(j1, j2, direction); err != nil {
			return fmt.Errorf("refine: Refine(%d): %w", id, err)
		}

		if positions != nil {
			positions.Remove(id)
		}
	}
	return nil
}
