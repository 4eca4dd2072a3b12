package gridgraph

import "errors"

// ErrOutOfBounds is returned when a queried or occupied cell lies outside
// the grid's bounding box.
var ErrOutOfBounds = errors.New("gridgraph: cell outside grid bounds")

// ErrNoPath is returned by ShortestFreePath when from and to are not
// connected even allowing passage through occupied cells (only possible
// if one of them is itself out of bounds of a disconnected sub-grid).
var ErrNoPath = errors.New("gridgraph: no path between the two cells")
