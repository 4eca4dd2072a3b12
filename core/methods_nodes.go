package core

import "fmt"

// AddNode allocates a new Black node and returns its id. Ids are assigned
// sequentially starting at 0 and are never reused within the lifetime of a
// Graph, even across RemoveNode calls.
func (g *Graph) AddNode() int {
	return g.addNode(Black)
}

// AddRedNode allocates a new Red (bend) node and returns its id.
func (g *Graph) AddRedNode() int {
	return g.addNode(Red)
}

func (g *Graph) addNode(color Color) int {
	id := g.nextNID
	g.nextNID++
	g.nodes[id] = &nodeRecord{color: color, out: make(map[int]int)}
	g.attrs.setColor(id, color) // infallible: id is fresh, never written before
	return id
}

// HasNode reports whether id names a node currently in the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeColor returns the colour recorded for id, or ErrMalformedInput if id
// is not a node of the graph.
func (g *Graph) NodeColor(id int) (Color, error) {
	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("core: NodeColor(%d): %w", id, ErrMalformedInput)
	}
	return n.color, nil
}

// RemoveNode deletes id and every directed edge incident to it (in both
// directions). Removing an id that isn't present is ErrInvariantViolation.
func (g *Graph) RemoveNode(id int) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("core: RemoveNode(%d): %w", id, ErrInvariantViolation)
	}

	// Drop the outgoing edges id->nb and, for each, the mirrored nb->id.
	for nb, eid := range n.out {
		delete(g.edges, eid)
		if other, ok := g.nodes[nb]; ok {
			if reverseEID, ok := other.out[id]; ok {
				delete(g.edges, reverseEID)
				delete(other.out, id)
			}
		}
	}

	delete(g.nodes, id)
	g.attrs.removeNode(id)
	return nil
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Nodes returns the ids of every node in the graph, in unspecified order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	return ids
}

// Degree returns the number of distinct neighbours of id (equivalently, the
// number of undirected edges incident to it, since the graph is simple).
func (g *Graph) Degree(id int) int {
	n, ok := g.nodes[id]
	if !ok {
		return 0
	}
	return len(n.out)
}
