// Package builder provides small, deterministic fixture graphs — cycles,
// paths, stars, wheels, and complete graphs — built directly over
// core.Graph. Every constructor returns a fully-connected simple graph
// suitable as input to the drawing pipeline, or ErrTooFewVertices if asked
// for a topology smaller than its minimum meaningful size.
//
// These constructors take no functional options: the graph model has no
// weights and assigns its own node ids, so there is nothing left to
// parameterise beyond the vertex count. RNG-driven tunables live where
// this module actually uses randomness — drawing.Option, for the shape
// builder's UNSAT-repair step.
package builder
