package shape

import (
	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/satcnf"
)

// rot90 returns the compass direction 90 degrees clockwise from d.
func rot90(d core.Direction) core.Direction {
	switch d {
	case core.Up:
		return core.Right
	case core.Right:
		return core.Down
	case core.Down:
		return core.Left
	default: // Left
		return core.Up
	}
}

// rot270 returns the compass direction 90 degrees counter-clockwise from
// d (equivalently, rot90 applied three times).
func rot270(d core.Direction) core.Direction {
	return rot90(rot90(rot90(d)))
}

// encodeOR mints an auxiliary variable aux with aux <-> (a ∨ b) and
// returns it.
func encodeOR(cnf *satcnf.CNF, h *Handler, a, b int) (int, error) {
	aux := h.NewAuxiliary()
	if err := cnf.AddClause(-aux, a, b); err != nil {
		return 0, err
	}
	if err := cnf.AddClause(-a, aux); err != nil {
		return 0, err
	}
	if err := cnf.AddClause(-b, aux); err != nil {
		return 0, err
	}
	return aux, nil
}

// encodeAND mints an auxiliary variable aux with aux <-> (a ∧ b) and
// returns it.
func encodeAND(cnf *satcnf.CNF, h *Handler, a, b int) (int, error) {
	aux := h.NewAuxiliary()
	if err := cnf.AddClause(-aux, a); err != nil {
		return 0, err
	}
	if err := cnf.AddClause(-aux, b); err != nil {
		return 0, err
	}
	if err := cnf.AddClause(-a, -b, aux); err != nil {
		return 0, err
	}
	return aux, nil
}

// encodeIFF asserts a <-> b as two clauses.
func encodeIFF(cnf *satcnf.CNF, a, b int) error {
	if err := cnf.AddClause(-a, b); err != nil {
		return err
	}
	return cnf.AddClause(-b, a)
}

// BuildSpecialClauses emits the per-special-edge clause family (4.E) for
// one pair of edges (node,n1) and (node,n2) incident to a high-degree
// node. It assumes AllocateSpecial(node,n1,n2) has already been called.
func BuildSpecialClauses(cnf *satcnf.CNF, h *Handler, node, n1, n2 int) error {
	s := make(map[core.Direction]int, 4)
	for _, d := range allDirections {
		v, err := h.SpecialVarFor(node, n1, n2, d)
		if err != nil {
			return err
		}
		s[d] = v
	}

	// Two parallel edges leaving node in the same direction force it to
	// be split perpendicularly.
	for _, d := range allDirections {
		v1, err := h.VarFor(node, n1, d)
		if err != nil {
			return err
		}
		v2, err := h.VarFor(node, n2, d)
		if err != nil {
			return err
		}
		if err := cnf.AddClause(-v1, -v2, s[rot90(d)], s[rot270(d)]); err != nil {
			return err
		}
	}

	// Exactly one S true.
	if err := cnf.AddClause(s[core.Up], s[core.Down], s[core.Left], s[core.Right]); err != nil {
		return err
	}
	for i := 0; i < len(allDirections); i++ {
		for j := i + 1; j < len(allDirections); j++ {
			if err := cnf.AddClause(-s[allDirections[i]], -s[allDirections[j]]); err != nil {
				return err
			}
		}
	}

	// S(RIGHT) ∨ S(LEFT) <-> e1 vertical ∧ e2 vertical, and symmetrically
	// for S(UP) ∨ S(DOWN) <-> e1 horizontal ∧ e2 horizontal.
	if err := biconditionalOnOrientation(cnf, h, node, n1, n2, s, core.Left, core.Right, true); err != nil {
		return err
	}
	if err := biconditionalOnOrientation(cnf, h, node, n1, n2, s, core.Up, core.Down, false); err != nil {
		return err
	}
	return nil
}

// biconditionalOnOrientation encodes S(dA) ∨ S(dB) <-> e1.orient ∧
// e2.orient, where orient is "vertical" (vertical=true, using UP/DOWN
// variables) or "horizontal" (vertical=false, using LEFT/RIGHT
// variables).
func biconditionalOnOrientation(cnf *satcnf.CNF, h *Handler, node, n1, n2 int, s map[core.Direction]int, dA, dB core.Direction, vertical bool) error {
	var orientA, orientB core.Direction
	if vertical {
		orientA, orientB = core.Up, core.Down
	} else {
		orientA, orientB = core.Left, core.Right
	}

	v1a, err := h.VarFor(node, n1, orientA)
	if err != nil {
		return err
	}
	v1b, err := h.VarFor(node, n1, orientB)
	if err != nil {
		return err
	}
	e1Orient, err := encodeOR(cnf, h, v1a, v1b)
	if err != nil {
		return err
	}

	v2a, err := h.VarFor(node, n2, orientA)
	if err != nil {
		return err
	}
	v2b, err := h.VarFor(node, n2, orientB)
	if err != nil {
		return err
	}
	e2Orient, err := encodeOR(cnf, h, v2a, v2b)
	if err != nil {
		return err
	}

	both, err := encodeAND(cnf, h, e1Orient, e2Orient)
	if err != nil {
		return err
	}

	sOr, err := encodeOR(cnf, h, s[dA], s[dB])
	if err != nil {
		return err
	}

	return encodeIFF(cnf, sOr, both)
}
