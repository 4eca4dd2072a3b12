package highdegree

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/gridgraph"
)

// gridMargin is how far past the existing drawing's bounding box the
// corridor-search grid extends, giving a removed edge's splice room to
// route around the outside of the drawing when no gap runs through it.
const gridMargin = 2

// AddBackEdge splices the removed undirected edge (u,v) back into sub as
// a chain of red bend nodes, one per turn in the shortest corridor
// through the drawing's occupancy grid that crosses the least existing
// geometry between u and v. The chain is recorded under
// core.ChainKey(u,v) so a caller can later locate exactly which bends
// implement this edge.
//
// u and v were disconnected by compute_maximal_degree_4_subgraph precisely
// because keeping the edge would have pushed one of their degrees past
// four, so a degree-4 endpoint already occupies every compass port around
// it (§8.2) and has nowhere to let a spliced corridor leave from. Before
// searching for a corridor, ensureFreePorts opens one by shifting every
// node on the far side of a blocked port one step further out — the same
// room-making move as the original's x_right_shift/x_left_shift/
// y_up_shift/y_down_shift (drawing_builder.cpp's split_and_rewire) — so
// the endpoint always has at least one free side to exit through.
func AddBackEdge(sub *core.Graph, s *core.Shape, positions *core.Positions, u, v int) error {
	grid, err := buildOccupancyGrid(sub, positions)
	if err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}
	if err := ensureFreePorts(positions, grid, u); err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}

	grid, err = buildOccupancyGrid(sub, positions)
	if err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}
	if err := ensureFreePorts(positions, grid, v); err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}

	grid, err = buildOccupancyGrid(sub, positions)
	if err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}
	pu, err := positions.Get(u)
	if err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}
	pv, err := positions.Get(v)
	if err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}

	corridor, err := grid.ShortestFreePath(pu.X, pu.Y, pv.X, pv.Y)
	if err != nil {
		return fmt.Errorf("highdegree: AddBackEdge(%d,%d): %w", u, v, err)
	}

	return spliceCorridor(sub, s, positions, u, v, corridor)
}

// ensureFreePorts opens a port at n in every compass direction whose
// adjacent grid cell is already occupied, so n always has at least one
// free side to route a corridor out of. An endpoint with a free side
// already (any degree < 4 node) is left untouched.
func ensureFreePorts(positions *core.Positions, grid *gridgraph.Grid, n int) error {
	p, err := positions.Get(n)
	if err != nil {
		return err
	}
	for _, d := range [...]core.Direction{core.Right, core.Left, core.Down, core.Up} {
		nx, ny := step(p, d)
		if grid.IsOccupied(nx, ny) {
			openPort(positions, p, d)
		}
	}
	return nil
}

func step(p core.Point, d core.Direction) (int, int) {
	switch d {
	case core.Right:
		return p.X + 1, p.Y
	case core.Left:
		return p.X - 1, p.Y
	case core.Down:
		return p.X, p.Y + 1
	default: // core.Up
		return p.X, p.Y - 1
	}
}

// openPort translates every node on the far side of p's adjacent cell in
// direction d one step further away, freeing that cell. The shift is a
// rigid translation of a half-plane of nodes, so it preserves every
// edge's axis alignment and only ever lengthens edges crossing the
// threshold — it cannot introduce a new overlap.
func openPort(positions *core.Positions, p core.Point, d core.Direction) {
	var affected func(core.Point) bool
	var dx, dy int
	switch d {
	case core.Right:
		affected, dx, dy = func(q core.Point) bool { return q.X >= p.X+1 }, 1, 0
	case core.Left:
		affected, dx, dy = func(q core.Point) bool { return q.X <= p.X-1 }, -1, 0
	case core.Down:
		affected, dx, dy = func(q core.Point) bool { return q.Y >= p.Y+1 }, 0, 1
	default: // core.Up
		affected, dx, dy = func(q core.Point) bool { return q.Y <= p.Y-1 }, 0, -1
	}
	for _, id := range positions.Nodes() {
		q, _ := positions.Get(id)
		if affected(q) {
			positions.Set(id, core.Point{X: q.X + dx, Y: q.Y + dy})
		}
	}
}

// buildOccupancyGrid covers the current drawing's bounding box, with
// margin, and marks every node and every straight edge segment as
// occupied so a spliced corridor prefers routing around existing
// geometry rather than through it.
func buildOccupancyGrid(sub *core.Graph, positions *core.Positions) (*gridgraph.Grid, error) {
	ids := positions.Nodes()
	if len(ids) == 0 {
		return gridgraph.New(0, 0, 0, 0, gridMargin), nil
	}
	p0, err := positions.Get(ids[0])
	if err != nil {
		return nil, err
	}
	minX, minY, maxX, maxY := p0.X, p0.Y, p0.X, p0.Y
	for _, id := range ids[1:] {
		p, err := positions.Get(id)
		if err != nil {
			return nil, err
		}
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	grid := gridgraph.New(minX, minY, maxX, maxY, gridMargin)
	for _, id := range ids {
		p, err := positions.Get(id)
		if err != nil {
			return nil, err
		}
		if err := grid.Occupy(p.X, p.Y); err != nil {
			return nil, err
		}
	}
	for _, uv := range sub.UndirectedEdges() {
		p1, err := positions.Get(uv[0])
		if err != nil {
			return nil, err
		}
		p2, err := positions.Get(uv[1])
		if err != nil {
			return nil, err
		}
		if err := occupySegment(grid, p1, p2); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

func occupySegment(grid *gridgraph.Grid, a, b core.Point) error {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	x, y := a.X, a.Y
	for {
		if err := grid.Occupy(x, y); err != nil {
			return err
		}
		if x == b.X && y == b.Y {
			return nil
		}
		x += dx
		y += dy
	}
}

func sign(n int) int {
	if n > 0 {
		return 1
	}
	if n < 0 {
		return -1
	}
	return 0
}

// spliceCorridor inserts one red bend node at every point where the
// corridor changes direction, linking u, the bends, and v in sequence.
// A corridor with no interior turns (a straight shot) splices u directly
// to v with a single edge and no bend nodes.
func spliceCorridor(sub *core.Graph, s *core.Shape, positions *core.Positions, u, v int, corridor [][2]int) error {
	key := core.ChainKey(u, v)

	prev := u
	for i := 1; i < len(corridor)-1; i++ {
		before, at, after := corridor[i-1], corridor[i], corridor[i+1]
		if !isTurn(before, at, after) {
			continue
		}
		bend := sub.AddRedNode()
		positions.Set(bend, core.Point{X: at[0], Y: at[1]})

		d, err := directionOf(before, at)
		if err != nil {
			return err
		}
		if err := link(sub, s, prev, bend, d); err != nil {
			return err
		}
		sub.AppendChainSegment(key, core.ChainSegment{U: prev, V: bend})
		prev = bend
	}

	last := len(corridor) - 1
	d, err := directionOf(corridor[last-1], corridor[last])
	if err != nil {
		return err
	}
	if err := link(sub, s, prev, v, d); err != nil {
		return err
	}
	sub.AppendChainSegment(key, core.ChainSegment{U: prev, V: v})
	return nil
}

func isTurn(before, at, after [2]int) bool {
	dBefore, _ := directionOf(before, at)
	dAfter, _ := directionOf(at, after)
	return dBefore != dAfter
}

func directionOf(from, to [2]int) (core.Direction, error) {
	switch {
	case to[0] > from[0]:
		return core.Right, nil
	case to[0] < from[0]:
		return core.Left, nil
	case to[1] > from[1]:
		return core.Down, nil
	case to[1] < from[1]:
		return core.Up, nil
	default:
		return 0, fmt.Errorf("highdegree: directionOf: degenerate corridor step at %v", from)
	}
}

func link(sub *core.Graph, s *core.Shape, a, b int, d core.Direction) error {
	if _, err := sub.AddEdge(a, b); err != nil {
		return fmt.Errorf("highdegree: link(%d,%d): %w", a, b, err)
	}
	if err := s.Set(a, b, d); err != nil {
		return fmt.Errorf("highdegree: link(%d,%d): %w", a, b, err)
	}
	return nil
}

// AllPositivePositions translates positions so the smallest x and the
// smallest y over all nodes are both 0, needed after AddBackEdge may have
// routed a corridor through the margin below or left of the existing
// drawing's bounding box.
func AllPositivePositions(positions *core.Positions) {
	ids := positions.Nodes()
	if len(ids) == 0 {
		return
	}
	first, _ := positions.Get(ids[0])
	minX, minY := first.X, first.Y
	for _, id := range ids {
		p, _ := positions.Get(id)
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	positions.Shift(-minX, -minY)
}
