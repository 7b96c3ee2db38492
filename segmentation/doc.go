// Package segmentation builds the Boykov–Funka-Lea flow network for a
// color raster plus two seed sets — boundary n-links from intensity
// similarity, regional t-links from per-seed-set intensity histograms, and
// K-capacity terminal anchors for the seeds themselves — solves it with
// package maxflow, and projects the source-side min cut back to the set of
// object-pixel indices.
//
// Segment is the package's single entry point; everything else (Options,
// Result and its debug-export methods) exists to configure that one call
// or to inspect what it built.
package segmentation
