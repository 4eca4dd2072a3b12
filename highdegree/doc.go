// Package highdegree draws graphs containing nodes of degree greater than
// four, which shape synthesis alone cannot place (its SAT encoding caps
// each node at one edge per compass direction, or needs the special-edge
// extension of package shape to go further at real cost).
//
// The approach: extract the maximal subgraph in which every node keeps
// degree at most four (ComputeMaximalDegreeFourSubgraph), draw that with
// the ordinary low-degree pipeline, then splice each removed edge back in
// as a chain of red bend nodes routed through package gridgraph's
// obstacle-avoiding corridor search over the drawn subgraph's occupancy
// grid, recording the chain under its ChainKey so callers can recover
// which bends belong to which original edge. Bends are placed only where
// the corridor turns; no refine pass runs after splicing.
//
// Every removed edge was dropped because at least one of its endpoints had
// reached degree four, so that endpoint already occupies all four compass
// ports before the corridor search runs; AddBackEdge opens one first by
// shifting whatever sits on the far side of a blocked port one cell
// further out, the same room-making move as the original's axis shift
// functions, so the search always has a free cell to leave the endpoint
// through.
//
// This trades the original implementation's exact quadrant case table
// (which picks between 2 and 4 bends depending on the relative position
// of the two endpoints, with an explicit free-segment scan) for a single
// general mechanism: mark existing geometry as occupied, search for the
// cheapest corridor, and drop a bend at every turn it takes. See
// gridgraph's doc comment for the search itself.
//
// Multiple degree-four components are out of scope: like the original
// implementation this module is grounded on, only a single connected
// degree-four subgraph is supported (ErrDisconnectedSubgraph otherwise).
package highdegree
