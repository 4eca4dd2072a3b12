// Package satcnf accumulates CNF clauses, serialises them as DIMACS, and
// drives an external SAT solver subprocess invoked with the certified-UNSAT
// contract the shape builder depends on: on SAT it reads back a total
// variable assignment, on UNSAT it reads back the raw lines of a DRAT
// refutation proof for the shape builder to scan for unit clauses.
//
// This package never makes policy decisions about what the clauses mean —
// that's shape's job. It only builds, writes, invokes, and parses.
package satcnf
