package shape

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/cyclebasis"
	"github.com/katalvlaran/orthodraw/satcnf"
)

// BuildShape is the outer SAT loop: build a fresh CNF over g's current
// shape-feasibility question, solve it, and on UNSAT repair by
// subdividing the edge implicated by the proof's most recent standard
// unit clauses, retrying until SAT or maxIterations is exhausted. g is
// mutated in place as bend nodes are inserted; the caller's cycles slice
// is left untouched, and a cycle list with those bend nodes spliced in is
// returned so the caller can feed it forward to the next stage.
//
// rng drives the "pick one of the first two unit clauses" step (4.F step
// 4); pass a *rand.Rand seeded once per draw call for reproducibility.
func BuildShape(g *core.Graph, cycles []cyclebasis.Cycle, solverPath string, rng *rand.Rand, maxIterations int) (*core.Shape, []cyclebasis.Cycle, error) {
	for iter := 0; iter < maxIterations; iter++ {
		cnf, h, err := Build(g, cycles)
		if err != nil {
			return nil, nil, fmt.Errorf("shape: BuildShape: %w", err)
		}

		outcome, err := satcnf.Run(solverPath, cnf)
		if err != nil {
			return nil, nil, fmt.Errorf("shape: BuildShape: %w", err)
		}

		if outcome.Satisfiable {
			s, err := shapeFromModel(g, h, outcome.Model)
			if err != nil {
				return nil, nil, fmt.Errorf("shape: BuildShape: %w", err)
			}
			return s, cycles, nil
		}

		u, v, err := pickEdgeToSubdivide(h, outcome.Proof, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("shape: BuildShape: %w", err)
		}

		w := g.AddRedNode()
		if err := g.RemoveEdge(u, v); err != nil {
			return nil, nil, fmt.Errorf("shape: BuildShape: %w", err)
		}
		if _, err := g.AddEdge(u, w); err != nil {
			return nil, nil, fmt.Errorf("shape: BuildShape: %w", err)
		}
		if _, err := g.AddEdge(w, v); err != nil {
			return nil, nil, fmt.Errorf("shape: BuildShape: %w", err)
		}
		cycles = insertBendInCycles(cycles, u, v, w)
	}
	return nil, nil, fmt.Errorf("shape: BuildShape: %w", ErrShapeInfeasible)
}

func shapeFromModel(g *core.Graph, h *Handler, model map[int]bool) (*core.Shape, error) {
	for v, val := range model {
		if err := h.SetVariableValue(v, val); err != nil {
			return nil, err
		}
	}

	s := core.NewShape()
	for _, uv := range g.UndirectedEdges() {
		d, err := h.DirectionOf(uv[0], uv[1])
		if err != nil {
			return nil, err
		}
		if err := s.Set(uv[0], uv[1], d); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// pickEdgeToSubdivide scans proof in reverse, collecting the backing edges
// of non-deletion unit clauses over Standard variables, and returns one of
// the first two found chosen uniformly at random (matching the original's
// rand() % min(unit_clauses.size(), 2)).
func pickEdgeToSubdivide(h *Handler, proof []satcnf.ProofLine, rng *rand.Rand) (int, int, error) {
	var candidates [][2]int
	for i := len(proof) - 1; i >= 0 && len(candidates) < 2; i-- {
		line := proof[i]
		if line.Deletion || len(line.Literals) != 1 {
			continue
		}
		u, v, ok := h.IsUnitClauseOnStandardEdge(line.Literals[0])
		if !ok {
			continue
		}
		candidates = append(candidates, [2]int{u, v})
	}
	if len(candidates) == 0 {
		return 0, 0, ErrShapeInfeasible
	}
	pick := rng.Intn(len(candidates))
	return candidates[pick][0], candidates[pick][1], nil
}

// insertBendInCycles splices w between u and v (in whichever order they
// appear consecutively) in every cycle containing that pair.
func insertBendInCycles(cycles []cyclebasis.Cycle, u, v, w int) []cyclebasis.Cycle {
	out := make([]cyclebasis.Cycle, len(cycles))
	for ci, c := range cycles {
		n := len(c)
		idx := -1
		for i := 0; i < n; i++ {
			a, b := c[i], c[(i+1)%n]
			if (a == u && b == v) || (a == v && b == u) {
				idx = i
				break
			}
		}
		if idx == -1 {
			out[ci] = c
			continue
		}
		next := make(cyclebasis.Cycle, 0, n+1)
		next = append(next, c[:idx+1]...)
		next = append(next, w)
		next = append(next, c[idx+1:]...)
		out[ci] = next
	}
	return out
}
