package converters

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/flooose01/image-segmentation/core"
)

// ErrNilGraph is returned when ToGonumGraph is called with a nil *core.Graph.
var ErrNilGraph = errors.New("converters: graph is nil")

// ToGonumGraph exports g into a gonum simple.WeightedDirectedGraph, suitable
// for running any gonum/graph algorithm (shortest path, topological sort,
// community detection, ...) over the same structure core.Graph builds.
//
// Vertex IDs are remapped to the dense int64 range gonum requires; the
// returned map lets callers translate back from a core.Graph vertex ID to
// its gonum node ID. Undirected edges are mirrored in both directions, since
// simple.WeightedDirectedGraph has no native undirected mode.
//
// Complexity: O(V+E) time and space.
func ToGonumGraph(g *core.Graph) (*simple.WeightedDirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	ids := g.Vertices()
	sort.Strings(ids) // deterministic node ID assignment

	dg := simple.NewWeightedDirectedGraph(0, 0)
	nodeID := make(map[string]int64, len(ids))
	for i, id := range ids {
		nid := int64(i)
		nodeID[id] = nid
		dg.AddNode(simple.Node(nid))
	}

	for _, e := range g.Edges() {
		from, ok := nodeID[e.From]
		if !ok {
			return nil, nil, core.ErrVertexNotFound
		}
		to, ok := nodeID[e.To]
		if !ok {
			return nil, nil, core.ErrVertexNotFound
		}
		dg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(from),
			T: simple.Node(to),
			W: float64(e.Weight),
		})
		if !e.Directed && !g.Directed() {
			dg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(to),
				T: simple.Node(from),
				W: float64(e.Weight),
			})
		}
	}

	return dg, nodeID, nil
}
