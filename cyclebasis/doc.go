// Package cyclebasis computes a fundamental cycle basis of a connected
// undirected core.Graph from a BFS spanning tree rooted at the graph's
// minimum node id. Every non-tree edge closes exactly one cycle with the
// tree; the result has |E| - |V| + 1 independent cycles, matching the
// count the shape builder's per-cycle clauses need to cover.
package cyclebasis
