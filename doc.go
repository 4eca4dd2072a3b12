// Package orthodraw computes rectilinear (orthogonal) drawings of connected
// undirected graphs: integer grid coordinates for every node and a routing
// of every edge as a sequence of horizontal/vertical segments meeting at
// right angles, derived purely from the graph's combinatorial structure.
//
// The pipeline, package by package:
//
//	core/        — the augmented graph model: nodes, directed-edge-pair
//	               edges, node colour, Shape (direction assignment) and
//	               Positions, plus the small typed attribute side-table.
//	cyclebasis/  — a fundamental cycle basis from a BFS spanning tree.
//	satcnf/      — CNF clause accumulation, DIMACS serialisation, and the
//	               external SAT solver subprocess contract.
//	shape/       — the variable handler, clause generators, and the
//	               outer SAT loop that repairs UNSAT results by inserting
//	               bend nodes until a feasible Shape is found.
//	classes/     — x/y equivalence classes of collinear nodes.
//	ordering/    — per-axis ordering graphs, cycle detection/lifting, and
//	               topological sort into coordinates.
//	refine/      — removal of useless (collinear) bend nodes.
//	compact/     — sliding-interval compaction per axis.
//	highdegree/  — degree>4 extraction, low-degree drawing, and splicing
//	               removed edges back in as bend chains.
//	drawing/     — the end-to-end orchestrator and the overlap/statistics
//	               checks run on the final result.
//	gridgraph/   — an occupancy grid used by high-degree rewiring to find
//	               free corridors for spliced-in chains.
//	builder/     — small deterministic fixture graphs (cycles, paths,
//	               stars, wheels, complete graphs) used by tests.
//
// See SPEC_FULL.md in the module root for the full component design.
package orthodraw
