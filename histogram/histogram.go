package histogram

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/flooose01/image-segmentation/voxel"
)

// Bins is the fixed number of intensity bins, matching Pixel.Intensity's
// [0,255] range.
const Bins = 256

// Histogram is a 256-bin Gaussian-smoothed intensity histogram built from
// one seed set, plus its cached total count.
type Histogram struct {
	bins  [Bins]int64
	total int64
}

// New builds a Histogram over pixels[idx] for idx in seeds, using a
// Gaussian kernel of standard deviation sigma centered at each seed
// pixel's intensity. Returns ErrEmptySeedSet if seeds is empty.
//
// Complexity: O(len(seeds) * Bins).
func New(pixels [][]voxel.Pixel, seeds map[voxel.Index]struct{}, sigma float64) (*Histogram, error) {
	if len(seeds) == 0 {
		return nil, ErrEmptySeedSet
	}

	h := &Histogram{}
	kernel := distuv.Normal{Mu: 0, Sigma: sigma}

	for idx := range seeds {
		intensity := pixels[idx.I][idx.J].Intensity()
		for k := 0; k < Bins; k++ {
			inc := int64(math.Floor(1000 * kernel.Prob(float64(k-intensity))))
			h.bins[k] += inc
		}
	}

	// Add-one (Laplace) smoothing. The Gaussian kernel underflows to zero
	// past roughly 2.6*sigma, so a bin far from every seed intensity would
	// otherwise stay at 0 and NegLogLikelihood's math.Log(0) would hand
	// back +Inf rather than a finite cost.
	for k := 0; k < Bins; k++ {
		h.bins[k]++
		h.total += h.bins[k]
	}

	return h, nil
}

// Count returns the smoothed count at bin k (the pixel intensity, 0-255).
func (h *Histogram) Count(k int) int64 {
	return h.bins[k]
}

// Total returns the cached sum of all bins.
func (h *Histogram) Total() int64 {
	return h.total
}

// NegLogLikelihood returns -(ln(Count(intensity)) - ln(Total)), the
// regional cost R_L(p) used as a t-link capacity term. It is always
// non-negative because Count(intensity) <= Total.
func (h *Histogram) NegLogLikelihood(intensity int) float64 {
	return -(math.Log(float64(h.bins[intensity])) - math.Log(float64(h.total)))
}
