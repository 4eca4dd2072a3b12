// Package shape implements shape synthesis: the reduction of orthogonal
// representability to propositional satisfiability, and the outer loop
// that repairs UNSAT results by inserting bend nodes.
//
//   - Handler (variables.go) is the bijection between directed edges ×
//     {UP,DOWN,LEFT,RIGHT} and SAT variables, plus the "special" variables
//     used by the high-degree encoding.
//   - clauses.go and special.go emit the per-edge, per-node, per-cycle,
//     and per-special-edge clause families over a Handler.
//   - Build assembles one CNF instance (Handler + clauses) for the current
//     augmented graph and cycle list.
//   - BuildShape (shapebuilder.go) is the outer loop: build, solve, and on
//     UNSAT subdivide the edge implicated by the proof's unit clauses,
//     retrying until SAT.
package shape
