package ordering

import (
	"github.com/katalvlaran/orthodraw/classes"
	"github.com/katalvlaran/orthodraw/core"
)

// BuildX returns the ordering graph over x-class ids: class(u)->class(v)
// whenever a Right-pointing shape edge runs u->v.
func BuildX(g *core.Graph, s *core.Shape, res *classes.Result) *Graph {
	og := New(res.NumXClasses)
	for _, uv := range g.UndirectedEdges() {
		u, v := uv[0], uv[1]
		d, ok := s.Direction(u, v)
		if !ok {
			continue
		}
		switch d {
		case core.Right:
			addIfDistinct(og, res.XClass[u], res.XClass[v], u, v)
		case core.Left:
			addIfDistinct(og, res.XClass[v], res.XClass[u], v, u)
		}
	}
	return og
}

// BuildY returns the ordering graph over y-class ids: class(u)->class(v)
// whenever a Down-pointing shape edge runs u->v.
func BuildY(g *core.Graph, s *core.Shape, res *classes.Result) *Graph {
	og := New(res.NumYClasses)
	for _, uv := range g.UndirectedEdges() {
		u, v := uv[0], uv[1]
		d, ok := s.Direction(u, v)
		if !ok {
			continue
		}
		switch d {
		case core.Down:
			addIfDistinct(og, res.YClass[u], res.YClass[v], u, v)
		case core.Up:
			addIfDistinct(og, res.YClass[v], res.YClass[u], v, u)
		}
	}
	return og
}

func addIfDistinct(og *Graph, a, b, nodeU, nodeV int) {
	if a == b {
		return
	}
	og.AddEdge(a, b, nodeU, nodeV)
}
