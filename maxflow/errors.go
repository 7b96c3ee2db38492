package maxflow

import "errors"

// Sentinel errors for solver construction and preconditions.
var (
	// ErrSourceEqualsSink indicates the solver was constructed with s == t.
	ErrSourceEqualsSink = errors.New("maxflow: source equals sink")

	// ErrSourceNotFound indicates the source vertex is absent from the network.
	ErrSourceNotFound = errors.New("maxflow: source vertex not found")

	// ErrSinkNotFound indicates the sink vertex is absent from the network.
	ErrSinkNotFound = errors.New("maxflow: sink vertex not found")

	// ErrInitialFlowInfeasible indicates the network's starting flow
	// violates a capacity bound or conservation at a non-terminal vertex.
	ErrInitialFlowInfeasible = errors.New("maxflow: initial flow is infeasible")
)
