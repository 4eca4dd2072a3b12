package drawing

import "errors"

// ErrGeometryOverlap indicates the produced drawing places two nodes at
// the same point, or a node on top of an edge it is not an endpoint of.
var ErrGeometryOverlap = errors.New("drawing: drawing has overlapping geometry")

// ErrIterationsExhausted indicates the shape-repair loop hit its
// iteration cap without reaching a realizable, acyclic ordering.
var ErrIterationsExhausted = errors.New("drawing: exhausted iteration budget without converging")
