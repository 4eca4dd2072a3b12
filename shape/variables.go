package shape

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// Kind classifies a SAT variable by what it encodes.
type Kind uint8

const (
	// Standard variables back one (undirected edge, direction) pair.
	Standard Kind = iota
	// SpecialEdge variables back one (node, edge pair, direction) triple,
	// used only by the high-degree encoding.
	SpecialEdge
	// Auxiliary variables are minted on demand by Tseitin encodings and
	// carry no direct semantic back-reference.
	Auxiliary
)

type stdKey struct {
	u, v int // canonical, u < v
	dir  core.Direction
}

type specialKey struct {
	node   int
	n1, n2 int // canonical, n1 < n2
	dir    core.Direction
}

// Handler is the bijection between directed edges (and, for high-degree
// nodes, edge pairs) crossed with {UP,DOWN,LEFT,RIGHT} and SAT variable
// ids. Variable id 0 is reserved and never allocated.
type Handler struct {
	next int

	std       map[stdKey]int
	stdEdge   map[int][2]int // varID -> (u,v) canonical
	stdDir    map[int]core.Direction

	special map[specialKey]int
	kind    map[int]Kind

	values map[int]bool
}

// NewHandler returns an empty Handler with the next variable id at 1.
func NewHandler() *Handler {
	return &Handler{
		next:    1,
		std:     make(map[stdKey]int),
		stdEdge: make(map[int][2]int),
		stdDir:  make(map[int]core.Direction),
		special: make(map[specialKey]int),
		kind:    make(map[int]Kind),
		values:  make(map[int]bool),
	}
}

func (h *Handler) alloc(k Kind) int {
	id := h.next
	h.next++
	h.kind[id] = k
	return id
}

// AllocateStandard pre-allocates the four standard variables for the
// undirected edge (u,v), u<v, with consecutive ids. A no-op if they
// already exist.
func (h *Handler) AllocateStandard(u, v int) {
	if u > v {
		u, v = v, u
	}
	for _, d := range allDirections {
		key := stdKey{u: u, v: v, dir: d}
		if _, ok := h.std[key]; ok {
			continue
		}
		id := h.alloc(Standard)
		h.std[key] = id
		h.stdEdge[id] = [2]int{u, v}
		h.stdDir[id] = d
	}
}

// AllocateSpecial pre-allocates the four special variables for the pair of
// edges (node,n1) and (node,n2) incident to a high-degree node.
func (h *Handler) AllocateSpecial(node, n1, n2 int) {
	if n1 > n2 {
		n1, n2 = n2, n1
	}
	for _, d := range allDirections {
		key := specialKey{node: node, n1: n1, n2: n2, dir: d}
		if _, ok := h.special[key]; ok {
			continue
		}
		id := h.alloc(SpecialEdge)
		h.special[key] = id
	}
}

// NewAuxiliary mints a fresh auxiliary variable, used by Tseitin
// encodings.
func (h *Handler) NewAuxiliary() int {
	return h.alloc(Auxiliary)
}

var allDirections = [4]core.Direction{core.Up, core.Down, core.Left, core.Right}

// VarFor returns the variable backing the directed edge u->v in direction
// d, resolving the canonical (u<v) storage and aliasing the opposite
// orientation: var(v,u,d) = var(u,v, d.Opposite()).
func (h *Handler) VarFor(u, v int, d core.Direction) (int, error) {
	canonU, canonV, dd := u, v, d
	if u > v {
		canonU, canonV, dd = v, u, d.Opposite()
	}
	id, ok := h.std[stdKey{u: canonU, v: canonV, dir: dd}]
	if !ok {
		return 0, fmt.Errorf("shape: VarFor(%d,%d,%s): %w", u, v, d, ErrMalformedModel)
	}
	return id, nil
}

// SpecialVarFor returns the special variable S(e1,e2,d) for the pair of
// edges incident to node leading to n1 and n2.
func (h *Handler) SpecialVarFor(node, n1, n2 int, d core.Direction) (int, error) {
	if n1 > n2 {
		n1, n2 = n2, n1
	}
	id, ok := h.special[specialKey{node: node, n1: n1, n2: n2, dir: d}]
	if !ok {
		return 0, fmt.Errorf("shape: SpecialVarFor(%d,%d,%d,%s): %w", node, n1, n2, d, ErrMalformedModel)
	}
	return id, nil
}

// SetVariableValue records the model's truth value for var, once. Setting
// the same variable twice is ErrMalformedModel.
func (h *Handler) SetVariableValue(v int, val bool) error {
	if _, ok := h.values[v]; ok {
		return fmt.Errorf("shape: SetVariableValue(%d): %w", v, ErrMalformedModel)
	}
	h.values[v] = val
	return nil
}

// Value returns the recorded truth value of var, or false if unset.
func (h *Handler) Value(v int) bool {
	return h.values[v]
}

// DirectionOf returns the unique direction d for which var(u,v,d) is true
// in the loaded model. Exactly one must be true for a well-formed model.
func (h *Handler) DirectionOf(u, v int) (core.Direction, error) {
	var found core.Direction
	count := 0
	for _, d := range allDirections {
		id, err := h.VarFor(u, v, d)
		if err != nil {
			return 0, err
		}
		if h.values[id] {
			found = d
			count++
		}
	}
	if count != 1 {
		return 0, fmt.Errorf("shape: DirectionOf(%d,%d): %d true directions: %w", u, v, count, ErrMalformedModel)
	}
	return found, nil
}

// VariableKind returns the Kind of a variable id previously allocated by
// this Handler.
func (h *Handler) VariableKind(v int) Kind {
	return h.kind[v]
}

// EdgeOf returns the canonical (u,v) backing a Standard variable id.
func (h *Handler) EdgeOf(v int) ([2]int, bool) {
	uv, ok := h.stdEdge[v]
	return uv, ok
}

// IsUnitClauseOnStandardEdge reports whether lit (a signed literal) backs
// a Standard variable, returning its canonical edge if so. Used by the
// shape builder to restrict UNSAT-repair candidates to edge-backed unit
// clauses.
func (h *Handler) IsUnitClauseOnStandardEdge(lit int) (u, v int, ok bool) {
	id := lit
	if id < 0 {
		id = -id
	}
	if h.kind[id] != Standard {
		return 0, 0, false
	}
	uv := h.stdEdge[id]
	return uv[0], uv[1], true
}
