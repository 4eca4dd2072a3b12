// Package core implements the undirected multigraph model shared by every
// stage of the orthogonal drawing pipeline: stable integer node and edge ids,
// O(1) edge lookup by endpoint pair, and a small typed attribute side-table
// (node colour, edge labels, bend-chain records) that later stages use to
// carry information the bare graph shape can't express.
//
// A Graph is built once per draw call by cloning the caller's input (see
// Clone) into what the rest of the pipeline calls the "augmented graph":
// the only copy that ever gets mutated (AddNode/AddEdge/RemoveNode/
// RemoveEdge) as shape synthesis subdivides edges with bend nodes.
//
// Undirected edges are represented internally as two directed edge records
// sharing endpoints, each with its own stable id; EdgeID(u, v) and
// EdgeID(v, u) are always both present or both absent. This mirrors the
// directed-pair representation the shape and ordering stages need (a
// direction is a property of one orientation of the edge, not of the edge
// itself).
//
// Every operation that can fail for structural reasons (unknown endpoint,
// duplicate edge, self-loop, attribute double-write) returns
// ErrInvariantViolation or ErrMalformedInput wrapped with call-site context;
// callers branch with errors.Is. Graph is not safe for concurrent mutation —
// the pipeline this package supports is single-threaded by design.
package core
