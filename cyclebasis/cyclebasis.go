package cyclebasis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthodraw/bfs"
	"github.com/katalvlaran/orthodraw/core"
)

// ErrDisconnectedGraph indicates the graph has more than one connected
// component; a cycle basis relative to a single spanning tree is undefined
// in that case, and disconnected-graph drawing is out of scope.
var ErrDisconnectedGraph = errors.New("cyclebasis: graph is disconnected")

// Cycle is an ordered sequence of node ids; consecutive ids (including the
// wrap from the last back to the first) are the edges of the cycle.
type Cycle []int

// Build returns a fundamental cycle basis of g: one Cycle per non-tree
// edge of a BFS spanning tree rooted at g's minimum node id.
func Build(g *core.Graph) ([]Cycle, error) {
	if g.NodeCount() == 0 {
		return nil, nil
	}

	root := minNodeID(g)
	tree, err := bfs.BFS(g, root)
	if err != nil {
		return nil, fmt.Errorf("cyclebasis: %w", err)
	}
	if len(tree.Order) != g.NodeCount() {
		return nil, fmt.Errorf("cyclebasis: %w", ErrDisconnectedGraph)
	}

	isTreeEdge := make(map[[2]int]bool, g.NodeCount()-1)
	for child, parent := range tree.Parent {
		isTreeEdge[[2]int{parent, child}] = true
		isTreeEdge[[2]int{child, parent}] = true
	}

	var cycles []Cycle
	for _, uv := range g.UndirectedEdges() {
		u, v := uv[0], uv[1]
		if isTreeEdge[[2]int{u, v}] {
			continue
		}
		cycles = append(cycles, buildCycle(tree, u, v))
	}
	return cycles, nil
}

// buildCycle lifts the non-tree edge (u,v) into the cycle it closes with
// the spanning tree: u's path up to the lowest common ancestor, followed
// by the lowest common ancestor's path back down to v.
func buildCycle(tree *bfs.Result, u, v int) Cycle {
	pathU := tree.PathToRoot(u) // u, ..., root (closest first)
	pathV := tree.PathToRoot(v)

	onPathU := make(map[int]int, len(pathU)) // node -> index
	for i, id := range pathU {
		onPathU[id] = i
	}

	lcaIdxInV := 0
	lcaIdxInU := 0
	for i, id := range pathV {
		if idx, ok := onPathU[id]; ok {
			lcaIdxInV = i
			lcaIdxInU = idx
			break
		}
	}

	cycle := make(Cycle, 0, lcaIdxInU+lcaIdxInV+1)
	cycle = append(cycle, pathU[:lcaIdxInU+1]...) // u, ..., lca
	for i := lcaIdxInV - 1; i >= 0; i-- {
		cycle = append(cycle, pathV[i]) // lca's child toward v, ..., v
	}
	return cycle
}

func minNodeID(g *core.Graph) int {
	ids := g.Nodes()
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}
	return min
}
