// Package classes partitions the nodes of a drawn (shaped) graph into
// x-equivalence and y-equivalence classes: groups of nodes that must share
// one coordinate because a chain of shape-directed edges forces them to.
//
// Two nodes joined by a Vertical (Up/Down) edge differ only in Y, so they
// share an x-class. Two nodes joined by a Horizontal (Left/Right) edge
// share a y-class. Build floods the shape twice, once per orientation,
// assigning every node exactly one x-class id and one y-class id.
//
// Flood visited-tracking uses github.com/soniakeys/bits, sized to the
// graph's maximum node id plus one rather than its node count, since node
// ids are not contiguous after bend insertion/removal.
package classes
