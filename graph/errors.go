package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidNodeCount indicates a non-positive node count was requested.
	ErrInvalidNodeCount = errors.New("graph: node count must be positive")

	// ErrEdgeEndpointOutOfRange indicates an input edge referenced a node
	// index outside [0,n).
	ErrEdgeEndpointOutOfRange = errors.New("graph: edge endpoint out of range")

	// ErrNodeOutOfRange indicates a node index outside [0,n) was queried.
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrReverseAdjacencyUnavailable indicates In-neighbor access was
	// requested on a Graph built without reverse CSR support.
	ErrReverseAdjacencyUnavailable = errors.New("graph: reverse adjacency not built")
)
