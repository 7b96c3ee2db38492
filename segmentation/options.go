package segmentation

// Option customizes Segment's calibrated constants. The zero value of
// Options is invalid; always start from DefaultOptions.
type Option func(*Options)

// Options holds the tunable constants of the Boykov–Funka-Lea formulation.
// DefaultOptions' values are calibrated for byte-exact parity with the
// reference implementation and should not be changed for conformance
// testing — use Option overrides only for exploration.
type Options struct {
	// Sigma is σ, the boundary smoothness scale.
	Sigma float64
	// Lambda is λ, the regional-vs-boundary balance.
	Lambda float64
	// Dist is the boundary capacity scale factor (the reference uses 50,
	// though its README names 10; 50 is kept for behavioral parity).
	Dist float64
	// HistSigma is the standard deviation of the Gaussian kernel used by
	// the intensity histograms' Parzen-window smoothing.
	HistSigma float64
}

// DefaultOptions returns Options{Sigma: 60, Lambda: 1, Dist: 50, HistSigma: 10}.
func DefaultOptions() Options {
	return Options{
		Sigma:     60,
		Lambda:    1,
		Dist:      50,
		HistSigma: 10,
	}
}

// WithSigma overrides σ.
func WithSigma(sigma float64) Option {
	return func(o *Options) {
		o.Sigma = sigma
	}
}

// WithLambda overrides λ.
func WithLambda(lambda float64) Option {
	return func(o *Options) {
		o.Lambda = lambda
	}
}

// WithDist overrides the boundary capacity scale factor.
func WithDist(dist float64) Option {
	return func(o *Options) {
		o.Dist = dist
	}
}

// WithHistSigma overrides the histogram kernel's standard deviation.
func WithHistSigma(sigma float64) Option {
	return func(o *Options) {
		o.HistSigma = sigma
	}
}

func resolveOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
