package highdegree

import "errors"

// ErrDisconnectedSubgraph is returned when extracting the maximal
// degree-four subgraph leaves more than one connected component; merging
// independently-drawn components back together is not supported.
var ErrDisconnectedSubgraph = errors.New("highdegree: maximal degree-4 subgraph is disconnected")
