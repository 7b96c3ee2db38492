// Package histogram implements the 256-bin, Gaussian-smoothed intensity
// histogram used as the regional (appearance) model in segmentation: for
// each seed pixel of intensity I, every bin k in [0,255] is incremented by
// floor(1000 * φ(k-I; μ=0, σ)), spreading the observation into a Gaussian
// kernel (Parzen-window smoothing). The floored kernel is zero for bins far
// from I, so every bin also receives one extra count (add-one smoothing),
// which keeps every bin strictly positive. The Gaussian density itself is
// supplied by gonum's stat/distuv package rather than hand-rolled.
package histogram
