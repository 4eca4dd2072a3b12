package gridgraph

// axisOffsets are the four orthogonal moves a corridor may take; diagonal
// moves never occur in an orthogonal drawing.
var axisOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// ShortestFreePath runs a 0-1 BFS from (fromX,fromY) to (toX,toY): moving
// into a free cell costs 0, into an occupied cell costs 1. The returned
// corridor (including both endpoints) is the one crossing the fewest
// occupied cells, and crosses none at all whenever a free route exists.
// Cells of equal cost are expanded first-in first-out, so when every cell
// is free the corridor is also a shortest one in steps.
func (g *Grid) ShortestFreePath(fromX, fromY, toX, toY int) ([][2]int, error) {
	if !g.InBounds(fromX, fromY) || !g.InBounds(toX, toY) {
		return nil, ErrNoPath
	}

	n := g.width * g.height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	start := g.index(fromX, fromY)
	target := g.index(toX, toY)
	dist[start] = 0

	deque := make([]int, 0, n)
	deque = append(deque, start)
	head := 0
	// next collects cells reached through an occupied cell; they are
	// expanded only after every cell at the current cost.
	var next []int

	for head < len(deque) || len(next) > 0 {
		if head == len(deque) {
			deque, next, head = next, nil, 0
		}
		u := deque[head]
		head++
		if u == target {
			break
		}
		ux, uy := u%g.width+g.minX, u/g.width+g.minY
		for _, d := range axisOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			step := 0
			if g.occupied[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					deque = append(deque, v)
				} else {
					next = append(next, v)
				}
			}
		}
	}

	if dist[target] == inf {
		return nil, ErrNoPath
	}

	var idxPath []int
	for at := target; at >= 0; at = prev[at] {
		idxPath = append([]int{at}, idxPath...)
		if at == start {
			break
		}
	}

	path := make([][2]int, len(idxPath))
	for i, idx := range idxPath {
		path[i] = [2]int{idx%g.width + g.minX, idx/g.width + g.minY}
	}
	return path, nil
}
