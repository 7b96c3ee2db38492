package network

import "errors"

// Sentinel errors for flow-network operations.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex never
	// seen as the endpoint of an added edge.
	ErrUnknownVertex = errors.New("network: unknown vertex")

	// ErrEndpointMismatch indicates an edge operation was given a vertex
	// that is neither of the edge's endpoints.
	ErrEndpointMismatch = errors.New("network: vertex is not an endpoint of this edge")

	// ErrInfeasibleDelta indicates an augmentation would drive an edge's
	// flow outside [0, capacity].
	ErrInfeasibleDelta = errors.New("network: augmentation would make flow infeasible")
)
