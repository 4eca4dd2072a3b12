package shape

import (
	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/cyclebasis"
	"github.com/katalvlaran/orthodraw/satcnf"
)

// Build assembles one CNF instance (variable handler + clauses) for g's
// current shape-feasibility question relative to cycles. Nodes of degree
// <= 4 get the standard per-node constraint; nodes of degree > 4 get the
// special-variable encoding instead (4.D/4.E), and cycles touching a
// high-degree node get the augmented per-cycle clause. The orchestrator's
// low-degree path never exercises the high-degree branch directly — K
// extracts a degree-<=4 subgraph first — but Build itself supports both so
// the encoding can be tested against high-degree inputs on its own.
func Build(g *core.Graph, cycles []cyclebasis.Cycle) (*satcnf.CNF, *Handler, error) {
	h := NewHandler()
	for _, uv := range g.UndirectedEdges() {
		h.AllocateStandard(uv[0], uv[1])
	}

	hasHighDegree := false
	for _, id := range g.Nodes() {
		if g.Degree(id) > 4 {
			hasHighDegree = true
			allocateSpecialsForNode(h, g, id)
		}
	}

	cnf := satcnf.New()
	for _, uv := range g.UndirectedEdges() {
		if err := PerEdgeClauses(cnf, h, uv[0], uv[1]); err != nil {
			return nil, nil, err
		}
	}
	for _, id := range g.Nodes() {
		if g.Degree(id) <= 4 {
			if err := PerNodeClauses(cnf, h, g, id); err != nil {
				return nil, nil, err
			}
			continue
		}
		if err := PerNodeHighDegreeClauses(cnf, h, g, id); err != nil {
			return nil, nil, err
		}
		if err := buildSpecialClausesForNode(cnf, h, g, id); err != nil {
			return nil, nil, err
		}
	}
	for _, c := range cycles {
		if hasHighDegree {
			if err := PerCycleClausesHighDegree(cnf, h, g, c); err != nil {
				return nil, nil, err
			}
			continue
		}
		if err := PerCycleClauses(cnf, h, c); err != nil {
			return nil, nil, err
		}
	}
	return cnf, h, nil
}

func allocateSpecialsForNode(h *Handler, g *core.Graph, node int) {
	neighbors := g.Neighbors(node)
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			h.AllocateSpecial(node, neighbors[i], neighbors[j])
		}
	}
}

func buildSpecialClausesForNode(cnf *satcnf.CNF, h *Handler, g *core.Graph, node int) error {
	neighbors := g.Neighbors(node)
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			if err := BuildSpecialClauses(cnf, h, node, neighbors[i], neighbors[j]); err != nil {
				return err
			}
		}
	}
	return nil
}
