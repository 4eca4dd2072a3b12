package ordering

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/cyclebasis"
)

// ErrWitnessMissing is returned by LiftCycle when a class-cycle edge has
// no recorded witness, which would indicate a Graph built by something
// other than BuildX/BuildY.
var ErrWitnessMissing = fmt.Errorf("ordering: class-cycle edge has no witness")

// ErrNoPathWithinClass is returned by LiftCycle when two nodes reported as
// sharing a class turn out not to be connected by edges of that class's
// orientation; this signals a bug in the caller's bookkeeping, since
// classes.Build guarantees same-class nodes are so connected.
var ErrNoPathWithinClass = fmt.Errorf("ordering: no path found between two nodes of the same class")

// LiftCycle turns a closed cycle of class ids (as returned by DetectCycle)
// back into a cycle over original node ids, suitable for feeding to
// shape.BuildShape as an additional constraint. sameClassVertical must be
// true when classCycle is over x-classes (whose members are connected by
// Vertical shape edges) and false when it is over y-classes (connected by
// Horizontal shape edges).
func LiftCycle(g *core.Graph, s *core.Shape, og *Graph, classCycle []int, sameClassVertical bool) (cyclebasis.Cycle, error) {
	if len(classCycle) < 2 {
		return nil, fmt.Errorf("ordering: LiftCycle: cycle too short")
	}
	k := len(classCycle) - 1 // classCycle[k] == classCycle[0]

	type witness struct{ a, b int }
	ws := make([]witness, k)
	for i := 0; i < k; i++ {
		w, ok := og.Witness(classCycle[i], classCycle[i+1])
		if !ok {
			return nil, fmt.Errorf("ordering: LiftCycle(%d,%d): %w", classCycle[i], classCycle[i+1], ErrWitnessMissing)
		}
		ws[i] = witness{w[0], w[1]}
	}

	var seq []int
	appendDistinct := func(id int) {
		if len(seq) == 0 || seq[len(seq)-1] != id {
			seq = append(seq, id)
		}
	}

	for i := 0; i < k; i++ {
		appendDistinct(ws[i].a)
		appendDistinct(ws[i].b)

		aNext := ws[(i+1)%k].a
		if ws[i].b == aNext {
			continue
		}
		path := findPathWithinClass(g, s, ws[i].b, aNext, sameClassVertical)
		if path == nil {
			return nil, fmt.Errorf("ordering: LiftCycle: path %d->%d: %w", ws[i].b, aNext, ErrNoPathWithinClass)
		}
		for _, n := range path[1 : len(path)-1] {
			appendDistinct(n)
		}
	}

	if len(seq) > 1 && seq[0] == seq[len(seq)-1] {
		seq = seq[:len(seq)-1]
	}

	return cyclebasis.Cycle(seq), nil
}

// findPathWithinClass returns a path from..to using only edges whose
// shape direction is vertical (or horizontal, per the vertical flag),
// via DFS with visited-reset-on-backtrack so dead ends don't block
// other branches from reusing a node. Returns nil if no such path
// exists.
func findPathWithinClass(g *core.Graph, s *core.Shape, from, to int, vertical bool) []int {
	if from == to {
		return []int{from}
	}

	visited := map[int]bool{from: true}
	path := []int{from}

	var visit func(n int) bool
	visit = func(n int) bool {
		for _, nb := range g.Neighbors(n) {
			if visited[nb] {
				continue
			}
			d, ok := s.Direction(n, nb)
			if !ok || d.IsVertical() != vertical {
				continue
			}
			visited[nb] = true
			path = append(path, nb)
			if nb == to || visit(nb) {
				return true
			}
			path = path[:len(path)-1]
			delete(visited, nb)
		}
		return false
	}

	if visit(from) {
		return path
	}
	return nil
}
