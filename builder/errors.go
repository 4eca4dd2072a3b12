package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum allowed
// by the requested topology.
var ErrTooFewVertices = errors.New("builder: too few vertices")
