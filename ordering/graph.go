package ordering

// Graph is a directed graph over equivalence class ids 0..N-1. Each edge
// additionally records a witness pair of original node ids whose shape
// edge is the reason the class-level edge exists, so a cycle found later
// can be lifted back to concrete nodes.
type Graph struct {
	n       int
	adj     []map[int]struct{}
	witness map[[2]int][2]int // (classA,classB) -> (nodeA,nodeB)
}

// New returns an edgeless ordering graph over n classes.
func New(n int) *Graph {
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Graph{
		n:       n,
		adj:     adj,
		witness: make(map[[2]int][2]int),
	}
}

// N returns the number of classes (nodes of the ordering graph).
func (g *Graph) N() int {
	return g.n
}

// AddEdge records a directed edge a->b witnessed by the original node
// pair (nodeU,nodeV). If an edge a->b already exists its witness is kept
// (the first one found); duplicate class-level edges carry the same
// realizability constraint regardless of which node pair produced them.
func (g *Graph) AddEdge(a, b int, nodeU, nodeV int) {
	if _, dup := g.adj[a][b]; !dup {
		g.adj[a][b] = struct{}{}
		g.witness[[2]int{a, b}] = [2]int{nodeU, nodeV}
	}
}

// Successors returns the class ids b for which an edge a->b exists, in
// unspecified order.
func (g *Graph) Successors(a int) []int {
	out := make([]int, 0, len(g.adj[a]))
	for b := range g.adj[a] {
		out = append(out, b)
	}
	return out
}

// Witness returns the original node pair that justified edge a->b.
func (g *Graph) Witness(a, b int) ([2]int, bool) {
	w, ok := g.witness[[2]int{a, b}]
	return w, ok
}
