package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/flooose01/image-segmentation/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity graph after flow
//   - err: non-nil on missing vertices, negative capacities, or context cancellation.
//
// Options (the zero value is normalized to DefaultOptions() semantics):
//   - Ctx:     cancellation/timeout context (nil → context.Background())
//   - Epsilon: capacities ≤ Epsilon treated as zero (default 1e-9)
//   - Verbose: print each augmentation via fmt.Printf
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residual *core.Graph, err error) {
	// 1) Normalize options (defaults Ctx/Epsilon)
	opts.normalize()
	ctx := opts.Ctx

	// 2) Validate presence of source/sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	// 3) Build initial capacity map (aggregates parallel edges, rejects negative capacity)
	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	// 4) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		path, bottle := bfsAugmentingCapMap(ctx, capMap, source, sink, opts.Epsilon)
		if len(path) == 0 || bottle <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			fmt.Printf("augmenting path %v with flow %.3g\n", path, bottle)
		}
		maxFlow += bottle

		// 5) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
	}

	// 6) Construct the final residual graph, inheriting all flags from g.
	residual, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// bfsAugmentingCapMap finds the shortest (fewest-edges) path in the residual
// capacity map from source→sink with capacity > eps, and returns that path
// plus its bottleneck capacity. Returns nil if no path found or ctx is done.
func bfsAugmentingCapMap(
	ctx context.Context,
	capMap map[string]map[string]float64,
	source, sink string,
	eps float64,
) ([]string, float64) {
	parent := make(map[string]string, len(capMap))
	capToHere := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for qi := 0; qi < len(queue); qi++ {
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}
		u := queue[qi]
		for v, capUV := range capMap[u] {
			if visited[v] || capUV <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			capToHere[v] = math.Min(capToHere[u], capUV)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}
				return path, capToHere[sink]
			}
			queue = append(queue, v)
		}
	}
	return nil, 0
}
