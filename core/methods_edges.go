package core

import "fmt"

// AddEdge inserts the undirected edge {u,v}: two directed edge records,
// u->v and v->u, each with its own stable id. It returns the id of the
// u->v direction. Fails with ErrInvariantViolation if u or v is unknown, if
// u == v (self-loops are disallowed), or if the ordered pair (u,v) already
// has an edge.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if u == v {
		return 0, fmt.Errorf("core: AddEdge(%d,%d): self-loop: %w", u, v, ErrInvariantViolation)
	}
	nu, ok := g.nodes[u]
	if !ok {
		return 0, fmt.Errorf("core: AddEdge(%d,%d): unknown node %d: %w", u, v, u, ErrInvariantViolation)
	}
	nv, ok := g.nodes[v]
	if !ok {
		return 0, fmt.Errorf("core: AddEdge(%d,%d): unknown node %d: %w", u, v, v, ErrInvariantViolation)
	}
	if _, dup := nu.out[v]; dup {
		return 0, fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrInvariantViolation)
	}

	fwdID := g.nextEID
	g.nextEID++
	g.edges[fwdID] = &edgeRecord{u: u, v: v}
	nu.out[v] = fwdID

	revID := g.nextEID
	g.nextEID++
	g.edges[revID] = &edgeRecord{u: v, v: u}
	nv.out[u] = revID

	return fwdID, nil
}

// RemoveEdge deletes both directions of the undirected edge {u,v}.
// ErrInvariantViolation if the edge is not present.
func (g *Graph) RemoveEdge(u, v int) error {
	nu, ok := g.nodes[u]
	if !ok {
		return fmt.Errorf("core: RemoveEdge(%d,%d): unknown node %d: %w", u, v, u, ErrInvariantViolation)
	}
	fwdID, ok := nu.out[v]
	if !ok {
		return fmt.Errorf("core: RemoveEdge(%d,%d): %w", u, v, ErrInvariantViolation)
	}
	nv := g.nodes[v]

	delete(g.edges, fwdID)
	delete(nu.out, v)
	if nv != nil {
		if revID, ok := nv.out[u]; ok {
			delete(g.edges, revID)
			delete(nv.out, u)
		}
	}
	return nil
}

// HasEdge reports whether the ordered pair (u,v) has an edge.
func (g *Graph) HasEdge(u, v int) bool {
	nu, ok := g.nodes[u]
	if !ok {
		return false
	}
	_, ok = nu.out[v]
	return ok
}

// EdgeID returns the stable id of the directed edge u->v, or
// ErrMalformedInput if no such edge exists.
func (g *Graph) EdgeID(u, v int) (int, error) {
	nu, ok := g.nodes[u]
	if !ok {
		return 0, fmt.Errorf("core: EdgeID(%d,%d): %w", u, v, ErrMalformedInput)
	}
	eid, ok := nu.out[v]
	if !ok {
		return 0, fmt.Errorf("core: EdgeID(%d,%d): %w", u, v, ErrMalformedInput)
	}
	return eid, nil
}

// Endpoints returns the (u,v) backing a directed edge id, or
// ErrMalformedInput if eid is not a known edge.
func (g *Graph) Endpoints(eid int) (int, int, error) {
	e, ok := g.edges[eid]
	if !ok {
		return 0, 0, fmt.Errorf("core: Endpoints(%d): %w", eid, ErrMalformedInput)
	}
	return e.u, e.v, nil
}

// Neighbors returns the ids of nodes adjacent to id, in unspecified order.
func (g *Graph) Neighbors(id int) []int {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(n.out))
	for nb := range n.out {
		out = append(out, nb)
	}
	return out
}

// EdgeCount returns the number of undirected edges (half the number of
// directed edge records).
func (g *Graph) EdgeCount() int {
	return len(g.edges) / 2
}

// UndirectedEdges returns every undirected edge exactly once, as the pair
// (u,v) with u<v, in unspecified order.
func (g *Graph) UndirectedEdges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for _, e := range g.edges {
		if e.u < e.v {
			out = append(out, [2]int{e.u, e.v})
		}
	}
	return out
}
