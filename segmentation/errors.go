package segmentation

import (
	"github.com/flooose01/image-segmentation/voxel"
)

// Segment's own precondition errors are the voxel package's validation
// sentinels, re-exported here so callers need not import voxel directly
// just to check errors.Is against Segment's return value.
var (
	// ErrInvalidRaster indicates a raster with empty rows or columns.
	ErrInvalidRaster = voxel.ErrInvalidRaster

	// ErrEmptySeeds indicates either seed set has zero elements.
	ErrEmptySeeds = voxel.ErrEmptySeeds

	// ErrSeedOutOfRange indicates a seed index outside the raster bounds.
	ErrSeedOutOfRange = voxel.ErrSeedOutOfRange
)
