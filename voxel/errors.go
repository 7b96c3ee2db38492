package voxel

import "errors"

// Sentinel errors for voxel/raster validation.
var (
	// ErrInvalidRaster indicates a raster with empty rows or columns.
	ErrInvalidRaster = errors.New("voxel: raster has empty rows or columns")

	// ErrEmptySeeds indicates a seed set with zero elements.
	ErrEmptySeeds = errors.New("voxel: seed set is empty")

	// ErrSeedOutOfRange indicates a seed index outside the raster bounds.
	ErrSeedOutOfRange = errors.New("voxel: seed index out of raster bounds")
)
