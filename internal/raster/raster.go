// Package raster converts filled shapes into 8-bit coverage buffers.
//
// Vector outlines are accumulated with golang.org/x/image/vector, which
// computes exact signed-area coverage (non-zero winding). Axis-aligned
// rectangles that land on pixel boundaries bypass the rasterizer and are
// filled with integer spans so their edges are exactly hard.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Filler accumulates closed outlines in device pixels and writes their
// coverage into alpha buffers.
//
// The zero value has an empty area; call Reset before use.
// A Filler may be reused across fills to avoid reallocating accumulators.
type Filler struct {
	z    vector.Rasterizer
	w, h int
}

// NewFiller creates a filler covering a w x h area.
func NewFiller(w, h int) *Filler {
	f := &Filler{}
	f.Reset(w, h)
	return f
}

// Reset clears the accumulated outline and sets the covered area.
func (f *Filler) Reset(w, h int) {
	f.w, f.h = max(w, 0), max(h, 0)
	f.z.Reset(f.w, f.h)
	f.z.DrawOp = draw.Src
}

// Size returns the covered area.
func (f *Filler) Size() (w, h int) {
	return f.w, f.h
}

// MoveTo starts a new subpath. The caller closes the previous one.
func (f *Filler) MoveTo(x, y float64) {
	f.z.MoveTo(float32(x), float32(y))
}

// LineTo adds a line segment.
func (f *Filler) LineTo(x, y float64) {
	f.z.LineTo(float32(x), float32(y))
}

// QuadTo adds a quadratic Bezier segment.
func (f *Filler) QuadTo(cx, cy, x, y float64) {
	f.z.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}

// CubeTo adds a cubic Bezier segment.
func (f *Filler) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	f.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

// ClosePath closes the current subpath.
func (f *Filler) ClosePath() {
	f.z.ClosePath()
}

// Fill writes the accumulated coverage into the w x h buffer dst (addressed
// by stride) with the filler's origin at (x0, y0), replacing what was there.
// Returns false, writing nothing, when the filler area does not fit in dst.
func (f *Filler) Fill(dst []uint8, stride, w, h, x0, y0 int) bool {
	if f.w == 0 || f.h == 0 {
		return true
	}
	bounds := image.Rect(0, 0, w, h)
	r := image.Rect(x0, y0, x0+f.w, y0+f.h)
	if !r.In(bounds) {
		return false
	}

	img := &image.Alpha{Pix: dst, Stride: stride, Rect: bounds}
	f.z.Draw(img, r, image.Opaque, image.Point{})
	return true
}

// FillRect sets every pixel of [x0, x1) x [y0, y1), clipped to the w x h
// buffer, to v.
func FillRect(dst []uint8, stride, w, h, x0, y0, x1, y1 int, v uint8) {
	x0, x1 = max(x0, 0), min(x1, w)
	y0, y1 = max(y0, 0), min(y1, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := dst[y*stride+x0 : y*stride+x1]
		for i := range row {
			row[i] = v
		}
	}
}

// maxFixed bounds the coordinates that fit a fixed.Int26_6.
const maxFixed = 1 << 25

// Snap rounds a device coordinate to the nearest pixel boundary, using
// 26.6 fixed point so values within 1/128 pixel of a boundary land on it.
// Coordinates beyond the 26.6 range are rounded directly.
func Snap(v float64) int {
	if !(math.Abs(v) < maxFixed) {
		return int(math.Round(v))
	}
	return fixed.Int26_6(math.Round(v * 64)).Round()
}

// IsAligned reports whether v lies on a pixel boundary at 26.6 precision.
// Coordinates beyond the 26.6 range are never aligned.
func IsAligned(v float64) bool {
	if !(math.Abs(v) < maxFixed) {
		return false
	}
	return fixed.Int26_6(math.Round(v*64))&63 == 0
}

// AxisCoverage returns how much of the pixel span [i, i+1) lies inside
// [lo, hi), in [0, 1].
func AxisCoverage(lo, hi float64, i int) float64 {
	a := math.Max(lo, float64(i))
	b := math.Min(hi, float64(i+1))
	if b <= a {
		return 0
	}
	return b - a
}
