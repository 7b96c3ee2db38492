package voxel

import "fmt"

// Index is a (row, column) coordinate in a raster. Equality and hashing are
// by value, so Index is usable directly as a map key.
type Index struct {
	I, J int
}

// String renders the index as "i,j", matching the teacher's vertex-ID style.
func (idx Index) String() string {
	return fmt.Sprintf("%d,%d", idx.I, idx.J)
}

// Pixel is a 24-bit RGB triple.
type Pixel struct {
	R, G, B uint8
}

// Intensity returns max(R, G, B), the scalar intensity used by the boundary
// and regional cost functions.
func (p Pixel) Intensity() int {
	m := int(p.R)
	if int(p.G) > m {
		m = int(p.G)
	}
	if int(p.B) > m {
		m = int(p.B)
	}

	return m
}

// Voxel is the vertex identity of a single pixel: its raster index plus its
// color. Non-terminal voxel equality is (Index, Pixel); terminals carry a
// zero Pixel and are distinguished purely by their reserved id (see ID).
type Voxel struct {
	Index Index
	Pixel Pixel
}

const (
	// SourceID is the reserved vertex id for the flow network's source
	// terminal s. It lies outside the range any real pixel id can take.
	SourceID int64 = -1

	// SinkID is the reserved vertex id for the flow network's sink
	// terminal t.
	SinkID int64 = -2
)

// ID returns the non-terminal vertex id for idx in a raster of the given
// height: i*height + j. This exact encoding is a binding requirement (not
// merely injective-by-convention) — see the segmentation package for the
// construction that relies on it.
func ID(idx Index, height int) int64 {
	return int64(idx.I)*int64(height) + int64(idx.J)
}
