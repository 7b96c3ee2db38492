package histogram

import "errors"

// ErrEmptySeedSet indicates a histogram was requested over zero seed pixels.
var ErrEmptySeedSet = errors.New("histogram: seed set is empty")
