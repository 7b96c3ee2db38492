// SPDX-License-Identifier: MIT

// Package matrix provides a minimal dense matrix type used by the
// segmentation package to export a min-cut capacity matrix for debugging
// and test cross-checks. It does not implement sparse/adjacency/incidence
// conversions; callers needing graph adjacency views use package core
// directly.
package matrix
