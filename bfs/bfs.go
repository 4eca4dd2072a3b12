package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// ErrGraphNil is returned when BFS is called with a nil graph.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartNodeNotFound indicates the requested start id is not in the
// graph.
var ErrStartNodeNotFound = errors.New("bfs: start node not found")

// Result is a BFS spanning tree: the order nodes were first reached in,
// each node's distance in edges from the start, and each non-root node's
// parent in the tree.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// BFS explores g breadth-first from start, building one spanning tree over
// the connected component containing start. Nodes outside that component
// are absent from the result.
func BFS(g *core.Graph, start int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: BFS(start=%d): %w", start, ErrStartNodeNotFound)
	}

	res := &Result{
		Order:  make([]int, 0, g.NodeCount()),
		Depth:  map[int]int{start: 0},
		Parent: make(map[int]int),
	}

	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		for _, nb := range g.Neighbors(id) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			res.Depth[nb] = res.Depth[id] + 1
			res.Parent[nb] = id
			queue = append(queue, nb)
		}
	}
	return res, nil
}

// PathToRoot returns the chain of node ids from id up to (and including)
// the BFS root, closest node first. id must be a node visited by the BFS
// that produced res.
func (r *Result) PathToRoot(id int) []int {
	path := []int{id}
	for {
		parent, ok := r.Parent[id]
		if !ok {
			return path
		}
		path = append(path, parent)
		id = parent
	}
}
