package engine

import "errors"

// ErrUnknownAlgorithm is returned by ParseAlgorithm for a name that does not
// denote one of the search algorithms.
var ErrUnknownAlgorithm = errors.New("unknown search algorithm")
