// Package voxel defines the data model shared by the segmentation pipeline:
// raster coordinates (Index), RGB pixels, and the vertex identity a pixel
// takes on in the flow network (Voxel). Two reserved integer ids, SourceID
// and SinkID, stand in for the flow network's s/t terminals; they are
// chosen outside the range any pixel id can take so they never collide
// with a real pixel.
package voxel
