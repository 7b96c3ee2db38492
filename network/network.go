package network

// AddEdge appends a new FlowEdge(source, destination, capacity, 0) to the
// outgoing list of source and the incoming list of destination, creating
// empty incidence lists for either endpoint on first sight. No
// deduplication is performed: adding the same (source, destination) pair
// twice yields two parallel edges.
//
// Complexity: O(1) amortized.
func (n *FlowNetwork) AddEdge(source, destination, capacity int64) *FlowEdge {
	e := &FlowEdge{Source: source, Destination: destination, Capacity: capacity}

	if _, ok := n.out[source]; !ok {
		n.out[source] = nil
	}
	if _, ok := n.in[source]; !ok {
		n.in[source] = nil
	}
	if _, ok := n.out[destination]; !ok {
		n.out[destination] = nil
	}
	if _, ok := n.in[destination]; !ok {
		n.in[destination] = nil
	}

	n.out[source] = append(n.out[source], e)
	n.in[destination] = append(n.in[destination], e)

	return e
}

// Contains reports whether v has appeared as either source or destination
// of any added edge.
func (n *FlowNetwork) Contains(v int64) bool {
	_, ok := n.out[v]
	return ok
}

// Vertices returns the set of known vertices, order unspecified.
func (n *FlowNetwork) Vertices() []int64 {
	vs := make([]int64, 0, len(n.out))
	for v := range n.out {
		vs = append(vs, v)
	}

	return vs
}

// OutEdges returns an independently mutable copy of v's outgoing incidence
// list, in insertion order. Fails with ErrUnknownVertex if v was never
// added.
func (n *FlowNetwork) OutEdges(v int64) ([]*FlowEdge, error) {
	edges, ok := n.out[v]
	if !ok {
		return nil, ErrUnknownVertex
	}

	return append([]*FlowEdge(nil), edges...), nil
}

// InEdges returns an independently mutable copy of v's incoming incidence
// list, in insertion order. Fails with ErrUnknownVertex if v was never
// added.
func (n *FlowNetwork) InEdges(v int64) ([]*FlowEdge, error) {
	edges, ok := n.in[v]
	if !ok {
		return nil, ErrUnknownVertex
	}

	return append([]*FlowEdge(nil), edges...), nil
}

// Neighbors returns OutEdges(v) concatenated with InEdges(v), in that
// order. This concatenation order is observable by the max-flow solver's
// BFS and determines tie-breaking among equally short augmenting paths.
func (n *FlowNetwork) Neighbors(v int64) ([]*FlowEdge, error) {
	out, err := n.OutEdges(v)
	if err != nil {
		return nil, err
	}
	in, err := n.InEdges(v)
	if err != nil {
		return nil, err
	}

	return append(out, in...), nil
}

// ResidualCapacity returns the residual capacity of e in the direction of
// v: capacity-flow if v is e's destination (forward), flow if v is e's
// source (reverse). Fails with ErrEndpointMismatch if v is neither
// endpoint.
func ResidualCapacity(e *FlowEdge, v int64) (int64, error) {
	switch v {
	case e.Destination:
		return e.Capacity - e.Flow, nil
	case e.Source:
		return e.Flow, nil
	default:
		return 0, ErrEndpointMismatch
	}
}

// AddResidualFlow pushes δ ≥ 0 of residual flow through e toward v: if v is
// e's destination, Flow += δ (forward augmentation); if v is e's source,
// Flow -= δ (cancelling reverse flow). Fails with ErrEndpointMismatch if v
// is neither endpoint, or ErrInfeasibleDelta if the result would leave
// Flow outside [0, Capacity].
func AddResidualFlow(e *FlowEdge, v int64, delta int64) error {
	var next int64
	switch v {
	case e.Destination:
		next = e.Flow + delta
	case e.Source:
		next = e.Flow - delta
	default:
		return ErrEndpointMismatch
	}
	if next < 0 || next > e.Capacity {
		return ErrInfeasibleDelta
	}
	e.Flow = next

	return nil
}

// Other returns the endpoint of e opposite v. For a self-loop (Source ==
// Destination == v) it returns v. Fails with ErrEndpointMismatch if v is
// neither endpoint.
func Other(e *FlowEdge, v int64) (int64, error) {
	switch v {
	case e.Source:
		return e.Destination, nil
	case e.Destination:
		return e.Source, nil
	default:
		return 0, ErrEndpointMismatch
	}
}
