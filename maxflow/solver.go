package maxflow

import (
	"fmt"
	"math"

	"github.com/flooose01/image-segmentation/network"
)

// Solver computes maximum s-t flow and the source-side min cut over a
// network.FlowNetwork via Edmonds–Karp. A Solver owns no state the network
// doesn't already hold except its own BFS bookkeeping and the results of
// the last Solve call.
//
// Complexity: O(V·E²) worst case; each BFS is O(V+E) and there are O(V·E)
// augmentations.
type Solver struct {
	net    *network.FlowNetwork
	source int64
	sink   int64
	opts   Options

	value  int64
	marked map[int64]struct{}
}

// step records the edge used to first reach a vertex during BFS, the
// vertex it was reached from, and the vertex it leads to (the "child"
// endpoint, which may be e's source or destination depending on whether
// the edge was traversed forward or in reverse).
type step struct {
	edge *network.FlowEdge
	from int64
	to   int64
}

// NewSolver validates preconditions and returns a Solver ready for Solve:
// source ≠ sink, both present in net, and net's current flow is feasible
// (every edge within [0, capacity], and net out-flow is zero at every
// vertex other than source and sink).
func NewSolver(net *network.FlowNetwork, source, sink int64, opts ...Option) (*Solver, error) {
	if source == sink {
		return nil, ErrSourceEqualsSink
	}
	if !net.Contains(source) {
		return nil, ErrSourceNotFound
	}
	if !net.Contains(sink) {
		return nil, ErrSinkNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Solver{net: net, source: source, sink: sink, opts: o}
	if err := s.checkFeasible(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Solver) checkFeasible() error {
	for _, v := range s.net.Vertices() {
		out, err := s.net.OutEdges(v)
		if err != nil {
			return err
		}
		for _, e := range out {
			if e.Flow < 0 || e.Flow > e.Capacity {
				return ErrInitialFlowInfeasible
			}
		}
		if v == s.source || v == s.sink {
			continue
		}
		in, err := s.net.InEdges(v)
		if err != nil {
			return err
		}
		var inFlow, outFlow int64
		for _, e := range in {
			inFlow += e.Flow
		}
		for _, e := range out {
			outFlow += e.Flow
		}
		if inFlow != outFlow {
			return ErrInitialFlowInfeasible
		}
	}

	return nil
}

// Solve runs Edmonds–Karp to completion: repeated BFS augmenting paths over
// the residual graph until the sink is unreachable. After Solve returns
// successfully, MaxFlow and MinCut report the result.
func (s *Solver) Solve() error {
	var value int64
	for {
		path, bottleneck, err := s.bfsAugmentingPath()
		if err != nil {
			return err
		}
		if path == nil {
			break
		}
		for _, st := range path {
			if err := network.AddResidualFlow(st.edge, st.to, bottleneck); err != nil {
				return err
			}
		}
		value += bottleneck
		if s.opts.Verbose {
			fmt.Fprintf(s.opts.Log, "maxflow: augmenting path of %d edges, bottleneck=%d, running value=%d\n", len(path), bottleneck, value)
		}
	}

	s.value = value
	s.marked = s.residualReachable()

	return nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) s→t path in the
// residual graph, visiting each vertex's neighbors in
// network.FlowNetwork.Neighbors order. Returns a nil path if t is
// unreachable.
func (s *Solver) bfsAugmentingPath() ([]step, int64, error) {
	visited := map[int64]bool{s.source: true}
	parent := make(map[int64]step)

	queue := []int64{s.source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		neighbors, err := s.net.Neighbors(u)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range neighbors {
			w, err := network.Other(e, u)
			if err != nil {
				return nil, 0, err
			}
			if visited[w] {
				continue
			}
			rc, err := network.ResidualCapacity(e, w)
			if err != nil {
				return nil, 0, err
			}
			if rc <= 0 {
				continue
			}

			visited[w] = true
			parent[w] = step{edge: e, from: u, to: w}

			if w == s.sink {
				return s.walkBack(parent)
			}
			queue = append(queue, w)
		}
	}

	return nil, 0, nil
}

// walkBack reconstructs the s→t path from the BFS parent map and computes
// its bottleneck residual capacity in one backward pass.
func (s *Solver) walkBack(parent map[int64]step) ([]step, int64, error) {
	var path []step
	bottleneck := int64(math.MaxInt64)

	cur := s.sink
	for cur != s.source {
		st := parent[cur]
		rc, err := network.ResidualCapacity(st.edge, st.to)
		if err != nil {
			return nil, 0, err
		}
		if rc < bottleneck {
			bottleneck = rc
		}
		path = append(path, st)
		cur = st.from
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottleneck, nil
}

// residualReachable computes the set of vertices reachable from source in
// the residual graph after Solve's final augmentation — the min cut.
func (s *Solver) residualReachable() map[int64]struct{} {
	marked := map[int64]struct{}{s.source: {}}
	queue := []int64{s.source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		neighbors, err := s.net.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range neighbors {
			w, err := network.Other(e, u)
			if err != nil {
				continue
			}
			if _, ok := marked[w]; ok {
				continue
			}
			rc, err := network.ResidualCapacity(e, w)
			if err != nil || rc <= 0 {
				continue
			}
			marked[w] = struct{}{}
			queue = append(queue, w)
		}
	}

	return marked
}

// MaxFlow returns the value computed by the last Solve call.
func (s *Solver) MaxFlow() int64 {
	return s.value
}

// MinCut returns a copy of the source-side reachable set in the residual
// graph after the last Solve call.
func (s *Solver) MinCut() map[int64]struct{} {
	cut := make(map[int64]struct{}, len(s.marked))
	for v := range s.marked {
		cut[v] = struct{}{}
	}

	return cut
}

// InCut reports whether v is on the source side of the last-computed min
// cut.
func (s *Solver) InCut(v int64) bool {
	_, ok := s.marked[v]
	return ok
}
