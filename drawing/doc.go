// Package drawing is the top-level orchestrator: it strings shape
// synthesis, coordinate assignment, refinement, and compaction into a
// single incremental loop, dispatching high-degree graphs through
// package highdegree first. It also reports whether the resulting
// drawing is geometrically valid and computes the summary statistics
// a caller would want to compare drawings by.
package drawing
