package core

import "errors"

// ErrInvariantViolation covers every structural rule the graph model
// enforces: unknown endpoint, duplicate edge between an ordered pair,
// self-loop, removing an id that doesn't exist, or writing an attribute key
// that is already set.
var ErrInvariantViolation = errors.New("core: invariant violation")

// ErrMalformedInput covers requests the graph cannot even attempt to
// satisfy structurally: reading an attribute that was never written, or
// looking up an edge id that isn't in the graph.
var ErrMalformedInput = errors.New("core: malformed input")
