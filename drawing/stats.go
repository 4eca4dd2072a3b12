package drawing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orthodraw/core"
)

// Stats summarizes a finished drawing's geometric quality, mirroring the
// measures a reader would want when comparing two drawings of the same
// graph: how compact it is, how many bends it introduced, and how bendy
// or long its edges got.
type Stats struct {
	Crossings        int
	TotalBends       int
	Area             int
	TotalEdgeLength  int
	MaxEdgeLength    int
	EdgeLengthStdDev float64
	MaxBendsPerEdge  int
	BendsStdDev      float64
}

// Compute walks g (which may include red bend nodes inserted during
// synthesis) and derives Stats from positions. An "edge" for length and
// bend-count purposes is a maximal chain between two Black nodes,
// collapsing intermediate Red bend nodes.
func Compute(g *core.Graph, positions *core.Positions) (Stats, error) {
	totalLength, err := totalEdgeLength(g, positions)
	if err != nil {
		return Stats{}, fmt.Errorf("drawing: Compute: %w", err)
	}
	maxLength, lengths, err := blackToBlackLengths(g, positions)
	if err != nil {
		return Stats{}, fmt.Errorf("drawing: Compute: %w", err)
	}
	maxBends, bendCounts, err := blackToBlackBendCounts(g)
	if err != nil {
		return Stats{}, fmt.Errorf("drawing: Compute: %w", err)
	}
	area, err := area(g, positions)
	if err != nil {
		return Stats{}, fmt.Errorf("drawing: Compute: %w", err)
	}
	crossings, err := totalCrossings(g, positions)
	if err != nil {
		return Stats{}, fmt.Errorf("drawing: Compute: %w", err)
	}

	return Stats{
		Crossings:        crossings,
		TotalBends:       countRedNodes(g),
		Area:             area,
		TotalEdgeLength:  totalLength,
		MaxEdgeLength:    maxLength,
		EdgeLengthStdDev: stddev(lengths),
		MaxBendsPerEdge:  maxBends,
		BendsStdDev:      stddev(bendCounts),
	}, nil
}

func totalEdgeLength(g *core.Graph, positions *core.Positions) (int, error) {
	total := 0
	for _, uv := range g.UndirectedEdges() {
		pu, err := positions.Get(uv[0])
		if err != nil {
			return 0, err
		}
		pv, err := positions.Get(uv[1])
		if err != nil {
			return 0, err
		}
		total += abs(pu.X-pv.X) + abs(pu.Y-pv.Y)
	}
	return total, nil
}

func countRedNodes(g *core.Graph) int {
	n := 0
	for _, id := range g.Nodes() {
		c, err := g.NodeColor(id)
		if err == nil && c == core.Red {
			n++
		}
	}
	return n
}

// blackToBlackLengths walks, from every Black node, every maximal chain
// of Red nodes to the Black node at its far end, summing segment
// lengths along the way. Each undirected Black-Black logical edge is
// counted once, via the "smaller id dfs'd first" rule mirrored from the
// original stats pass.
func blackToBlackLengths(g *core.Graph, positions *core.Positions) (int, []int, error) {
	max := 0
	var lengths []int
	var walkErr error

	for _, id := range g.Nodes() {
		c, err := g.NodeColor(id)
		if err != nil {
			return 0, nil, err
		}
		if c != core.Black {
			continue
		}

		visited := map[int]bool{id: true}
		var dfs func(current int, length int)
		dfs = func(current int, length int) {
			visited[current] = true
			for _, nb := range g.Neighbors(current) {
				if visited[nb] {
					continue
				}
				pc, err := positions.Get(current)
				if err != nil {
					walkErr = err
					return
				}
				pn, err := positions.Get(nb)
				if err != nil {
					walkErr = err
					return
				}
				segLen := abs(pc.X-pn.X) + abs(pc.Y-pn.Y)

				nc, err := g.NodeColor(nb)
				if err != nil {
					walkErr = err
					return
				}
				if nc == core.Red {
					dfs(nb, length+segLen)
				} else if id < nb {
					total := length + segLen
					lengths = append(lengths, total)
					if total > max {
						max = total
					}
				}
			}
			delete(visited, current)
		}
		dfs(id, 0)
		if walkErr != nil {
			return 0, nil, walkErr
		}
	}
	return max, lengths, nil
}

func blackToBlackBendCounts(g *core.Graph) (int, []int, error) {
	max := 0
	var counts []int

	for _, id := range g.Nodes() {
		c, err := g.NodeColor(id)
		if err != nil {
			return 0, nil, err
		}
		if c != core.Black {
			continue
		}

		visited := map[int]bool{id: true}
		var dfs func(current, bends int)
		dfs = func(current, bends int) {
			visited[current] = true
			for _, nb := range g.Neighbors(current) {
				if visited[nb] {
					continue
				}
				nc, err := g.NodeColor(nb)
				if err != nil {
					continue
				}
				if nc == core.Red {
					dfs(nb, bends+1)
				} else if id < nb {
					counts = append(counts, bends)
					if bends > max {
						max = bends
					}
				}
			}
			delete(visited, current)
		}
		dfs(id, 0)
	}
	return max, counts, nil
}

func area(g *core.Graph, positions *core.Positions) (int, error) {
	ids := g.Nodes()
	if len(ids) == 0 {
		return 0, nil
	}
	p0, err := positions.Get(ids[0])
	if err != nil {
		return 0, err
	}
	minX, minY, maxX, maxY := p0.X, p0.Y, p0.X, p0.Y
	for _, id := range ids[1:] {
		p, err := positions.Get(id)
		if err != nil {
			return 0, err
		}
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return (maxX - minX + 1) * (maxY - minY + 1), nil
}

func totalCrossings(g *core.Graph, positions *core.Positions) (int, error) {
	edges := g.UndirectedEdges()
	total := 0
	for a := 0; a < len(edges); a++ {
		i, j := edges[a][0], edges[a][1]
		for b := a + 1; b < len(edges); b++ {
			k, l := edges[b][0], edges[b][1]
			if i == k || i == l || j == k || j == l {
				continue
			}
			cross, err := edgesCross(positions, i, j, k, l)
			if err != nil {
				return 0, err
			}
			if cross {
				total++
			}
		}
	}
	return total, nil
}

func stddev(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	mean := float64(sum) / float64(len(xs))

	var sqDiff float64
	for _, x := range xs {
		d := float64(x) - mean
		sqDiff += d * d
	}
	return math.Sqrt(sqDiff / float64(len(xs)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
