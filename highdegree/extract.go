package highdegree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orthodraw/bfs"
	"github.com/katalvlaran/orthodraw/core"
)

// ComputeMaximalDegreeFourSubgraph returns a copy of g retaining every
// node but only the edges that can be greedily accepted while keeping
// both endpoints at degree <= 4, processed in a deterministic (sorted)
// edge order. Rejected edges are returned as (u,v) pairs with u<v.
func ComputeMaximalDegreeFourSubgraph(g *core.Graph) (*core.Graph, [][2]int) {
	keep := make(map[int]bool, g.NodeCount())
	for _, id := range g.Nodes() {
		keep[id] = true
	}
	sub := g.InducedSubgraph(keep)

	edges := sub.UndirectedEdges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	degree := make(map[int]int, sub.NodeCount())
	var removed [][2]int
	for _, uv := range edges {
		u, v := uv[0], uv[1]
		if degree[u] < 4 && degree[v] < 4 {
			degree[u]++
			degree[v]++
			continue
		}
		_ = sub.RemoveEdge(u, v)
		removed = append(removed, [2]int{u, v})
	}
	return sub, removed
}

// CheckConnected reports whether sub's nodes are all reachable from one
// another, via a single BFS rooted at its smallest node id.
func CheckConnected(sub *core.Graph) (bool, error) {
	ids := sub.Nodes()
	if len(ids) == 0 {
		return true, nil
	}
	sort.Ints(ids)

	result, err := bfs.BFS(sub, ids[0])
	if err != nil {
		return false, fmt.Errorf("highdegree: CheckConnected: %w", err)
	}
	return len(result.Order) == sub.NodeCount(), nil
}
