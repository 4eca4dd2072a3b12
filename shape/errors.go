package shape

import "errors"

// ErrShapeInfeasible indicates the shape builder could not obtain a
// satisfiable encoding even after its iteration cap was exhausted.
var ErrShapeInfeasible = errors.New("shape: no feasible shape found")

// ErrMalformedModel indicates a SAT model came back without a consistent
// single true direction for some standard variable triple, which should
// never happen for a well-formed encoding and a correct solver.
var ErrMalformedModel = errors.New("shape: malformed model")
