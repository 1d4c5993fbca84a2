// Package image samples 8-bit alpha buffers for mask compositing.
package image

import "math"

// AlphaBuf is a read-only view of an 8-bit coverage buffer.
type AlphaBuf struct {
	Pix    []uint8
	Stride int
	Width  int
	Height int
}

// At returns the value at (x, y), or 0 outside the buffer.
func (b AlphaBuf) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Stride+x]
}

// InterpolationMode defines how mask sampling is performed.
type InterpolationMode uint8

const (
	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	InterpBilinear InterpolationMode = iota

	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Sample samples b at pixel coordinates (x, y), where pixel (i, j) covers
// [i, i+1) x [j, j+1). Everything outside the buffer reads as 0.
func Sample(b AlphaBuf, x, y float64, mode InterpolationMode) uint8 {
	if mode == InterpNearest {
		return SampleNearest(b, x, y)
	}
	return SampleBilinear(b, x, y)
}

// SampleNearest returns the pixel containing (x, y).
func SampleNearest(b AlphaBuf, x, y float64) uint8 {
	return b.At(int(math.Floor(x)), int(math.Floor(y)))
}

// SampleBilinear interpolates between the 4 pixel centers around (x, y).
func SampleBilinear(b AlphaBuf, x, y float64) uint8 {
	fx := x - 0.5
	fy := y - 0.5
	if fx <= -1 || fy <= -1 || fx >= float64(b.Width) || fy >= float64(b.Height) {
		return 0
	}

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := float64(b.At(x0, y0))
	v10 := float64(b.At(x0+1, y0))
	v01 := float64(b.At(x0, y0+1))
	v11 := float64(b.At(x0+1, y0+1))

	v := lerp2D(v00, v10, v01, v11, tx, ty)
	return uint8(clampFloat(math.Round(v), 0, 255))
}

func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
