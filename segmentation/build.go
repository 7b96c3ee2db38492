package segmentation

import (
	"math"

	"github.com/flooose01/image-segmentation/histogram"
	"github.com/flooose01/image-segmentation/maxflow"
	"github.com/flooose01/image-segmentation/network"
	"github.com/flooose01/image-segmentation/voxel"
)

// neighborDeltas lists the 4-neighbor offsets in the order the spec
// requires: left, right, up, down. Preserving this order, and adding the
// n-link from both endpoints' perspective (see buildNLinks), is what makes
// the BFS tie-break — and therefore which min cut is returned on instances
// with more than one optimal cut — reproducible.
var neighborDeltas = [4][2]int{
	{0, -1}, // left
	{0, 1},  // right
	{-1, 0}, // up
	{1, 0},  // down
}

// Segment partitions pixels into object/background given two non-empty
// seed sets, by building a capacitated flow network (boundary n-links,
// regional t-links, and K-capacity seed anchors) and returning the pixels
// on the source side of its minimum s-t cut.
//
// Complexity: O(H·W) construction, then Edmonds–Karp's O(V·E²) solve over
// V ≈ H·W+2, E ≈ 6·H·W (up to four n-links per pixel, plus two t-links per
// non-seed pixel and one per seed).
func Segment(pixels [][]voxel.Pixel, seedObj, seedBkg map[voxel.Index]struct{}, opts ...Option) (*Result, error) {
	if err := voxel.ValidateRaster(pixels); err != nil {
		return nil, err
	}
	height := len(pixels)
	width := len(pixels[0])
	if err := voxel.ValidateSeeds(seedObj, height, width); err != nil {
		return nil, err
	}
	if err := voxel.ValidateSeeds(seedBkg, height, width); err != nil {
		return nil, err
	}

	o := resolveOptions(opts...)

	histObj, err := histogram.New(pixels, seedObj, o.HistSigma)
	if err != nil {
		return nil, err
	}
	histBkg, err := histogram.New(pixels, seedBkg, o.HistSigma)
	if err != nil {
		return nil, err
	}

	net := network.New()
	k := buildNLinks(net, pixels, height, width, o)
	buildTLinks(net, pixels, height, width, seedObj, seedBkg, histObj, histBkg, k, o)

	solver, err := maxflow.NewSolver(net, voxel.SourceID, voxel.SinkID)
	if err != nil {
		return nil, err
	}
	if err := solver.Solve(); err != nil {
		return nil, err
	}

	mask := make(map[voxel.Index]struct{})
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			idx := voxel.Index{I: i, J: j}
			if solver.InCut(voxel.ID(idx, height)) {
				mask[idx] = struct{}{}
			}
		}
	}

	return &Result{
		mask:    mask,
		maxFlow: solver.MaxFlow(),
		net:     net,
		solver:  solver,
		pixels:  pixels,
		height:  height,
		width:   width,
		k:       k,
	}, nil
}

// boundaryCapacity computes floor(B(p,q)) = floor(Dist * exp(-(Ip-Iq)^2 / (2*sigma^2))).
func boundaryCapacity(ip, iq int, o Options) int64 {
	diff := float64(ip - iq)
	b := o.Dist * math.Exp(-(diff*diff)/(2*o.Sigma*o.Sigma))

	return int64(math.Floor(b))
}

// buildNLinks adds a directed edge p→q for every pixel p and each existing
// 4-neighbor q (left, right, up, down), and returns K = 1 + floor(max
// sum over q of B(p,q)), the anchor capacity that always exceeds any
// possible boundary cost at a single pixel.
func buildNLinks(net *network.FlowNetwork, pixels [][]voxel.Pixel, height, width int, o Options) int64 {
	var maxSum float64

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			ip := pixels[i][j].Intensity()
			pID := voxel.ID(voxel.Index{I: i, J: j}, height)

			var sum float64
			for _, d := range neighborDeltas {
				ni, nj := i+d[0], j+d[1]
				if ni < 0 || ni >= height || nj < 0 || nj >= width {
					continue
				}
				iq := pixels[ni][nj].Intensity()
				diff := float64(ip - iq)
				b := o.Dist * math.Exp(-(diff*diff)/(2*o.Sigma*o.Sigma))
				sum += b

				qID := voxel.ID(voxel.Index{I: ni, J: nj}, height)
				net.AddEdge(pID, qID, boundaryCapacity(ip, iq, o))
			}
			if sum > maxSum {
				maxSum = sum
			}
		}
	}

	return 1 + int64(math.Floor(maxSum))
}

// buildTLinks adds, for every pixel p: s→p with capacity K if p is an
// object seed; p→t with capacity K if p is a background seed; otherwise
// both s→p with capacity floor(λ·R_obj(p)) and p→t with capacity
// floor(λ·R_bkg(p)).
func buildTLinks(
	net *network.FlowNetwork,
	pixels [][]voxel.Pixel,
	height, width int,
	seedObj, seedBkg map[voxel.Index]struct{},
	histObj, histBkg *histogram.Histogram,
	k int64,
	o Options,
) {
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			idx := voxel.Index{I: i, J: j}
			pID := voxel.ID(idx, height)

			switch {
			case inSet(seedObj, idx):
				net.AddEdge(voxel.SourceID, pID, k)
			case inSet(seedBkg, idx):
				net.AddEdge(pID, voxel.SinkID, k)
			default:
				intensity := pixels[i][j].Intensity()
				rObj := histObj.NegLogLikelihood(intensity)
				rBkg := histBkg.NegLogLikelihood(intensity)
				net.AddEdge(voxel.SourceID, pID, int64(math.Floor(o.Lambda*rObj)))
				net.AddEdge(pID, voxel.SinkID, int64(math.Floor(o.Lambda*rBkg)))
			}
		}
	}
}

func inSet(set map[voxel.Index]struct{}, idx voxel.Index) bool {
	_, ok := set[idx]
	return ok
}
