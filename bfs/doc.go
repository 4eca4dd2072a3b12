// Package bfs provides breadth-first search over a core.Graph, producing a
// spanning tree (parent links and depths) from a start node. It exists
// mainly to ground cyclebasis's fundamental-cycle-basis construction: the
// cycle basis is defined relative to a BFS spanning tree rooted at the
// graph's minimum node id.
package bfs
