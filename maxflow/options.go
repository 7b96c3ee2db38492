package maxflow

import (
	"io"
	"os"
)

// Option customizes a Solver. The zero value of Options matches
// DefaultOptions() except for Verbose/Log, which default to off/os.Stderr.
type Option func(*Options)

// Options holds solver-wide tunables.
type Options struct {
	// Verbose, when true, writes one line per augmenting path to Log.
	Verbose bool
	// Log receives verbose output; defaults to os.Stderr.
	Log io.Writer
}

// DefaultOptions returns Options{Verbose: false, Log: os.Stderr}.
func DefaultOptions() Options {
	return Options{
		Verbose: false,
		Log:     os.Stderr,
	}
}

// WithVerbose enables or disables per-augmentation logging.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// WithLog sets the writer verbose output is sent to. Panics on nil.
func WithLog(w io.Writer) Option {
	if w == nil {
		panic("maxflow: WithLog(nil)")
	}
	return func(o *Options) {
		o.Log = w
	}
}
