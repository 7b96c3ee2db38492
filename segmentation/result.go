package segmentation

import (
	"fmt"

	"github.com/flooose01/image-segmentation/core"
	"github.com/flooose01/image-segmentation/gridgraph"
	"github.com/flooose01/image-segmentation/matrix"
	"github.com/flooose01/image-segmentation/maxflow"
	"github.com/flooose01/image-segmentation/network"
	"github.com/flooose01/image-segmentation/voxel"
)

// Result holds the outcome of a Segment call: the object mask, the max-flow
// value, and the constructed network, kept around so callers can inspect or
// re-export the graph Segment actually solved without rebuilding it.
type Result struct {
	mask    map[voxel.Index]struct{}
	maxFlow int64
	net     *network.FlowNetwork
	solver  *maxflow.Solver
	pixels  [][]voxel.Pixel
	height  int
	width   int
	k       int64
}

// Mask reports whether idx is on the object (source) side of the min cut.
func (r *Result) Mask(idx voxel.Index) bool {
	_, ok := r.mask[idx]
	return ok
}

// Indices returns the set of object-pixel indices, order unspecified.
func (r *Result) Indices() []voxel.Index {
	idxs := make([]voxel.Index, 0, len(r.mask))
	for idx := range r.mask {
		idxs = append(idxs, idx)
	}

	return idxs
}

// MaxFlow returns the value of the min cut separating object from
// background.
func (r *Result) MaxFlow() int64 {
	return r.maxFlow
}

// K returns the anchor capacity computed for the seed t-links, exposed so
// tests and diagnostics can confirm it dominates every n-link cost.
func (r *Result) K() int64 {
	return r.k
}

// ToCoreGraph exports the flow network Segment built and solved as a
// generic, weighted, directed core.Graph, with vertex IDs stringified from
// voxel IDs ("-1" for source, "-2" for sink, decimal voxel.ID otherwise)
// and edge weights set to each FlowEdge's Capacity.
func (r *Result) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	for _, v := range r.net.Vertices() {
		if err := g.AddVertex(vertexID(v)); err != nil {
			return nil, err
		}
	}
	for _, v := range r.net.Vertices() {
		out, err := r.net.OutEdges(v)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			if _, err := g.AddEdge(vertexID(e.Source), vertexID(e.Destination), e.Capacity); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func vertexID(v int64) string {
	return fmt.Sprintf("%d", v)
}

// CapacityMatrix returns the t-link capacities as an (H·W)×2 dense matrix,
// column 0 holding each pixel's source (object) capacity and column 1 its
// sink (background) capacity, row-major by raster index (i*width+j).
func (r *Result) CapacityMatrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(r.height*r.width, 2)
	if err != nil {
		return nil, err
	}

	out, err := r.net.OutEdges(voxel.SourceID)
	if err != nil {
		return nil, err
	}
	sourceCap := make(map[int64]int64, len(out))
	for _, e := range out {
		sourceCap[e.Destination] = e.Capacity
	}

	in, err := r.net.InEdges(voxel.SinkID)
	if err != nil {
		return nil, err
	}
	sinkCap := make(map[int64]int64, len(in))
	for _, e := range in {
		sinkCap[e.Source] = e.Capacity
	}

	for i := 0; i < r.height; i++ {
		for j := 0; j < r.width; j++ {
			pID := voxel.ID(voxel.Index{I: i, J: j}, r.height)
			row := i*r.width + j

			if err := m.Set(row, 0, float64(sourceCap[pID])); err != nil {
				return nil, err
			}
			if err := m.Set(row, 1, float64(sinkCap[pID])); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Components runs 4-connected component labeling over the binary object
// mask (1 where Mask(idx) is true, 0 otherwise), returning each connected
// region of object pixels as a slice of gridgraph.Cell. This is a
// diagnostic view only: Segment's own cut computation never depends on it.
func (r *Result) Components() (map[int][][]gridgraph.Cell, error) {
	values := make([][]int, r.height)
	for i := 0; i < r.height; i++ {
		values[i] = make([]int, r.width)
		for j := 0; j < r.width; j++ {
			if r.Mask(voxel.Index{I: i, J: j}) {
				values[i][j] = 1
			}
		}
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}

	return gg.ConnectedComponents(), nil
}
