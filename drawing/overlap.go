package drawing

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// CheckOverlaps reports whether the drawing places two distinct nodes at
// the same point, or places a node on a segment of an edge it is not an
// endpoint of. Both checks are O(n^2) / O(n*e); fine for the sizes this
// package targets.
func CheckOverlaps(g *core.Graph, positions *core.Positions) error {
	ids := g.Nodes()
	for i, id := range ids {
		pi, err := positions.Get(id)
		if err != nil {
			return fmt.Errorf("drawing: CheckOverlaps: %w", err)
		}
		for _, other := range ids[i+1:] {
			po, err := positions.Get(other)
			if err != nil {
				return fmt.Errorf("drawing: CheckOverlaps: %w", err)
			}
			if pi == po {
				return fmt.Errorf("drawing: node %d overlaps node %d: %w", id, other, ErrGeometryOverlap)
			}
		}
	}

	edges := g.UndirectedEdges()
	for _, id := range ids {
		pi, err := positions.Get(id)
		if err != nil {
			return fmt.Errorf("drawing: CheckOverlaps: %w", err)
		}
		for _, e := range edges {
			j1, j2 := e[0], e[1]
			if j1 == id || j2 == id {
				continue
			}
			p1, err := positions.Get(j1)
			if err != nil {
				return fmt.Errorf("drawing: CheckOverlaps: %w", err)
			}
			p2, err := positions.Get(j2)
			if err != nil {
				return fmt.Errorf("drawing: CheckOverlaps: %w", err)
			}
			if pointOnSegment(pi, p1, p2) {
				return fmt.Errorf("drawing: node %d overlaps edge %d-%d: %w", id, j1, j2, ErrGeometryOverlap)
			}
		}
	}
	return nil
}

func pointOnSegment(p, a, b core.Point) bool {
	if a.Y == b.Y {
		return p.Y == a.Y && p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X)
	}
	return p.X == a.X && p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// edgesCross reports whether segments i-j and k-l cross, following the
// same axis-aligned case split as the node/edge overlap check: two
// horizontal or two vertical segments "cross" if they're collinear and
// their spans overlap; one horizontal and one vertical cross if the
// vertical segment's x falls within the horizontal one's span and vice
// versa.
func edgesCross(positions *core.Positions, i, j, k, l int) (bool, error) {
	pi, err := positions.Get(i)
	if err != nil {
		return false, err
	}
	pj, err := positions.Get(j)
	if err != nil {
		return false, err
	}
	pk, err := positions.Get(k)
	if err != nil {
		return false, err
	}
	pl, err := positions.Get(l)
	if err != nil {
		return false, err
	}

	ijHorizontal := pi.Y == pj.Y
	klHorizontal := pk.Y == pl.Y

	if ijHorizontal && klHorizontal {
		return pi.Y == pk.Y && (overlaps(pi.X, pj.X, pk.X) || overlaps(pi.X, pj.X, pl.X) ||
			overlaps(pj.X, pi.X, pk.X) || overlaps(pj.X, pi.X, pl.X)), nil
	}
	if !ijHorizontal && !klHorizontal {
		return pi.X == pk.X && (overlaps(pi.Y, pj.Y, pk.Y) || overlaps(pi.Y, pj.Y, pl.Y) ||
			overlaps(pj.Y, pi.Y, pk.Y) || overlaps(pj.Y, pi.Y, pl.Y)), nil
	}
	if !ijHorizontal {
		return edgesCross(positions, k, l, i, j)
	}
	if pk.X < min(pi.X, pj.X) || pk.X > max(pi.X, pj.X) {
		return false, nil
	}
	if pi.Y < min(pk.Y, pl.Y) || pi.Y > max(pk.Y, pl.Y) {
		return false, nil
	}
	return true, nil
}

func overlaps(lo1, hi1, point int) bool {
	return lo1 <= point && hi1 >= point
}
