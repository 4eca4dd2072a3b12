package shape

import (
	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/cyclebasis"
	"github.com/katalvlaran/orthodraw/satcnf"
)

// PerEdgeClauses emits the "exactly one direction" constraint for the
// undirected edge (u,v): at-least-one of {U,D,L,R}, plus all six
// pairwise at-most-one clauses.
func PerEdgeClauses(cnf *satcnf.CNF, h *Handler, u, v int) error {
	vars := make(map[core.Direction]int, 4)
	for _, d := range allDirections {
		id, err := h.VarFor(u, v, d)
		if err != nil {
			return err
		}
		vars[d] = id
	}

	if err := cnf.AddClause(vars[core.Up], vars[core.Down], vars[core.Left], vars[core.Right]); err != nil {
		return err
	}
	for i := 0; i < len(allDirections); i++ {
		for j := i + 1; j < len(allDirections); j++ {
			if err := cnf.AddClause(-vars[allDirections[i]], -vars[allDirections[j]]); err != nil {
				return err
			}
		}
	}
	return nil
}

// PerNodeClauses emits the per-direction degree constraint for a node of
// degree <= 4: for each direction d, the outgoing-from-node variables
// across incident edges get an at-least-one clause at degree 4, pairwise
// at-most-one at degree 3, a single at-most-one pair at degree 2, and no
// clause at degree 1.
func PerNodeClauses(cnf *satcnf.CNF, h *Handler, g *core.Graph, node int) error {
	neighbors := g.Neighbors(node)
	deg := len(neighbors)
	if deg == 0 || deg > 4 {
		return nil
	}

	for _, d := range allDirections {
		xs := make([]int, deg)
		for i, nb := range neighbors {
			v, err := h.VarFor(node, nb, d)
			if err != nil {
				return err
			}
			xs[i] = v
		}

		switch deg {
		case 4:
			if err := cnf.AddClause(xs...); err != nil {
				return err
			}
		case 3, 2:
			for i := 0; i < len(xs); i++ {
				for j := i + 1; j < len(xs); j++ {
					if err := cnf.AddClause(-xs[i], -xs[j]); err != nil {
						return err
					}
				}
			}
		case 1:
			// no clause
		}
	}
	return nil
}

// PerNodeHighDegreeClauses emits, for a node of degree > 4, an
// at-least-one clause per direction over its incident edges (no
// at-most-one: several incident edges may collapse onto the same compass
// direction, separated geometrically later by high-degree rewiring).
func PerNodeHighDegreeClauses(cnf *satcnf.CNF, h *Handler, g *core.Graph, node int) error {
	neighbors := g.Neighbors(node)
	if len(neighbors) <= 4 {
		return nil
	}
	for _, d := range allDirections {
		xs := make([]int, len(neighbors))
		for i, nb := range neighbors {
			v, err := h.VarFor(node, nb, d)
			if err != nil {
				return err
			}
			xs[i] = v
		}
		if err := cnf.AddClause(xs...); err != nil {
			return err
		}
	}
	return nil
}

// cycleEdges returns the consecutive (a,b) pairs of a cycle, including the
// wrap from the last node back to the first.
func cycleEdges(c cyclebasis.Cycle) [][2]int {
	edges := make([][2]int, len(c))
	for i := range c {
		edges[i] = [2]int{c[i], c[(i+1)%len(c)]}
	}
	return edges
}

// PerCycleClauses emits, for each compass direction, the disjunction over
// a cycle's (edge,d) variables: an orthogonal cycle must have at least one
// segment facing every direction.
func PerCycleClauses(cnf *satcnf.CNF, h *Handler, c cyclebasis.Cycle) error {
	edges := cycleEdges(c)
	for _, d := range allDirections {
		lits := make([]int, 0, len(edges))
		for _, e := range edges {
			v, err := h.VarFor(e[0], e[1], d)
			if err != nil {
				return err
			}
			lits = append(lits, v)
		}
		if err := cnf.AddClause(lits...); err != nil {
			return err
		}
	}
	return nil
}

// PerCycleClausesHighDegree is PerCycleClauses augmented for the
// high-degree encoding: at each cycle node of degree > 4, the special
// variables for its two incident cycle edges are appended to the
// direction's at-least-one clause, letting the cycle turn "through" the
// node without demanding a standard edge in that direction.
func PerCycleClausesHighDegree(cnf *satcnf.CNF, h *Handler, g *core.Graph, c cyclebasis.Cycle) error {
	edges := cycleEdges(c)
	for _, d := range allDirections {
		lits := make([]int, 0, len(edges)+len(c))
		for _, e := range edges {
			v, err := h.VarFor(e[0], e[1], d)
			if err != nil {
				return err
			}
			lits = append(lits, v)
		}
		for i, node := range c {
			if g.Degree(node) <= 4 {
				continue
			}
			prev := c[(i-1+len(c))%len(c)]
			next := c[(i+1)%len(c)]
			v, err := h.SpecialVarFor(node, prev, next, d)
			if err != nil {
				return err
			}
			lits = append(lits, v)
		}
		if err := cnf.AddClause(lits...); err != nil {
			return err
		}
	}
	return nil
}
