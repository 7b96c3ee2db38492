package flow

import (
	"fmt"
	"math"

	"github.com/flooose01/image-segmentation/core"
)

// FordFulkerson computes the maximum flow from source to sink in a capacity network.
//
// Ford–Fulkerson repeatedly finds a path in the residual network with
// positive capacity and augments along it until no such path exists.
//
// Steps:
//  1. Validation: ensure source and sink exist.
//  2. Build residual map via buildCapMap: capacity[u][v] = sum of all parallel edge weights.
//  3. Augmentation loop:
//     a. Run DFS on the residual map to find any path with bottleneck capacity > Epsilon.
//     b. Let δ = bottleneck capacity along the path.
//     c. For each edge (u→v) in the path: capacity[u][v] -= δ, capacity[v][u] += δ.
//     d. maxFlow += δ; repeat until no augmenting path found.
//  4. Construct the residual core.Graph via buildCoreResidualFromCapMap.
//
// Complexity: O(E · F) where F ≈ maxFlow / Epsilon
// Memory:     O(V + E) for residual capacity map.
//
// Use Ford–Fulkerson when you need a straightforward max-flow
// implementation and capacities are integral or small. For stronger
// worst-case guarantees, consider Edmonds–Karp or Dinic.
//
// Returns:
//   - maxFlow: the total flow value found.
//   - residual: a *core.Graph annotated with residual capacities as weights.
//   - err: ErrSourceNotFound, ErrSinkNotFound, EdgeError (negative capacity), or context cancellation.
func FordFulkerson(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residual *core.Graph, err error) {
	// 1) Normalize options (defaults Ctx/Epsilon)
	opts.normalize()
	ctx := opts.Ctx

	// 2) Validate inputs
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

	// 4) Augmentation loop
	for {
		// a) find augmenting path using DFS
		visited := make(map[string]bool, len(capMap))
		path, bottle := dfsFindPathCapMap(capMap, source, sink, visited, math.Inf(1), opts.Epsilon)
		if len(path) == 0 {
			break // no more augmenting path
		}
		if opts.Verbose {
			fmt.Printf("augmenting path %v with δ=%g\n", path, bottle)
		}
		// b) apply flow along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
		maxFlow += bottle
		// c) check cancellation
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
	}

	// 5) Build the residual core.Graph for return, inheriting all flags from g.
	residual, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// dfsFindPathCapMap performs a DFS in the residual capacity map to locate
// any source→sink path with bottleneck capacity > eps. Returns the path and
// its bottleneck flow. If none found, returns a nil path.
func dfsFindPathCapMap(
	capMap map[string]map[string]float64,
	u, sink string,
	visited map[string]bool,
	available float64,
	eps float64,
) ([]string, float64) {
	if u == sink {
		return []string{sink}, available
	}
	visited[u] = true
	for v, capUV := range capMap[u] {
		if visited[v] || capUV <= eps {
			continue
		}
		b := available
		if capUV < b {
			b = capUV
		}
		path, flow := dfsFindPathCapMap(capMap, v, sink, visited, b, eps)
		if len(path) > 0 {
			return append([]string{u}, path...), flow
		}
	}
	return nil, 0
}
