package highdegree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/drawing"
	"github.com/katalvlaran/orthodraw/highdegree"
)

// expandChainPoints walks every segment of the chain recorded under
// ChainKey(u,v) and returns every grid cell the chain's geometry passes
// through, endpoints included, so a test can check the route against
// obstacles without knowing the exact bend layout in advance.
func expandChainPoints(t *testing.T, g *core.Graph, positions *core.Positions, u, v int) [][2]int {
	t.Helper()
	segs, ok := g.ChainSegments(core.ChainKey(u, v))
	require.True(t, ok)
	require.NotEmpty(t, segs)
	require.Equal(t, u, segs[0].U)
	require.Equal(t, v, segs[len(segs)-1].V)

	var points [][2]int
	for i, seg := range segs {
		if i > 0 {
			require.Equal(t, segs[i-1].V, seg.U, "chain segments must be contiguous")
		}
		pu, err := positions.Get(seg.U)
		require.NoError(t, err)
		pv, err := positions.Get(seg.V)
		require.NoError(t, err)
		require.True(t, pu.X == pv.X || pu.Y == pv.Y, "every chain segment must be axis-aligned")

		dx, dy := sign(pv.X-pu.X), sign(pv.Y-pu.Y)
		x, y := pu.X, pu.Y
		for {
			points = append(points, [2]int{x, y})
			if x == pv.X && y == pv.Y {
				break
			}
			x += dx
			y += dy
		}
	}
	return points
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

func TestAddBackEdgeConnectsTheTwoEndpoints(t *testing.T) {
	g := core.NewGraph()
	u := g.AddNode()
	v := g.AddNode()

	s := core.NewShape()
	pos := core.NewPositions()
	pos.Set(u, core.Point{X: 0, Y: 0})
	pos.Set(v, core.Point{X: 2, Y: 3})

	require.NoError(t, highdegree.AddBackEdge(g, s, pos, u, v))
	expandChainPoints(t, g, pos, u, v)

	for _, id := range g.Nodes() {
		if id == u || id == v {
			continue
		}
		color, err := g.NodeColor(id)
		require.NoError(t, err)
		require.Equal(t, core.Red, color)
		require.Equal(t, 2, g.Degree(id))
	}
}

func TestAddBackEdgeRoutesAroundAnObstructingEdge(t *testing.T) {
	g := core.NewGraph()
	u := g.AddNode()
	v := g.AddNode()
	a := g.AddNode()
	b := g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	s := core.NewShape()
	require.NoError(t, s.Set(a, b, core.Down))

	pos := core.NewPositions()
	pos.Set(u, core.Point{X: 0, Y: 0})
	pos.Set(v, core.Point{X: 4, Y: 0})
	// a-b forms a vertical wall straight across u->v's direct line.
	pos.Set(a, core.Point{X: 2, Y: -1})
	pos.Set(b, core.Point{X: 2, Y: 1})

	require.NoError(t, highdegree.AddBackEdge(g, s, pos, u, v))
	points := expandChainPoints(t, g, pos, u, v)

	for _, p := range points {
		require.NotEqual(t, [2]int{2, -1}, p, "chain must not cross the obstructing edge's endpoint")
		require.NotEqual(t, [2]int{2, 0}, p, "chain must not cross the obstructing edge's midpoint")
		require.NotEqual(t, [2]int{2, 1}, p, "chain must not cross the obstructing edge's endpoint")
	}
}

// TestAddBackEdgeOpensAPortAtADegreeFourEndpoint exercises the endpoint
// every real call to AddBackEdge has on at least one side: u already uses
// all four compass ports (as compute_maximal_degree_4_subgraph guarantees
// for at least one endpoint of every removed edge), so the corridor has nowhere to
// leave from until a port is opened.
func TestAddBackEdgeOpensAPortAtADegreeFourEndpoint(t *testing.T) {
	g := core.NewGraph()
	u := g.AddNode()
	right := g.AddNode()
	left := g.AddNode()
	up := g.AddNode()
	down := g.AddNode()
	v := g.AddNode()

	s := core.NewShape()
	connect := func(a, b int, d core.Direction) {
		_, err := g.AddEdge(a, b)
		require.NoError(t, err)
		require.NoError(t, s.Set(a, b, d))
	}
	connect(u, right, core.Right)
	connect(u, left, core.Left)
	connect(u, up, core.Up)
	connect(u, down, core.Down)
	require.Equal(t, 4, g.Degree(u))

	pos := core.NewPositions()
	pos.Set(u, core.Point{X: 0, Y: 0})
	pos.Set(right, core.Point{X: 1, Y: 0})
	pos.Set(left, core.Point{X: -1, Y: 0})
	pos.Set(up, core.Point{X: 0, Y: -1})
	pos.Set(down, core.Point{X: 0, Y: 1})
	pos.Set(v, core.Point{X: 5, Y: 5})

	require.NoError(t, highdegree.AddBackEdge(g, s, pos, u, v))
	expandChainPoints(t, g, pos, u, v)

	require.NoError(t, drawing.CheckOverlaps(g, pos))
}

func TestAllPositivePositionsShiftsNegativeCoordinatesToZero(t *testing.T) {
	pos := core.NewPositions()
	pos.Set(1, core.Point{X: -3, Y: -1})
	pos.Set(2, core.Point{X: 2, Y: 4})

	highdegree.AllPositivePositions(pos)

	p1, _ := pos.Get(1)
	p2, _ := pos.Get(2)
	require.Equal(t, 0, p1.X)
	require.Equal(t, 0, p1.Y)
	require.Equal(t, 5, p2.X)
	require.Equal(t, 5, p2.Y)
}
