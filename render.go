package shadow

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/shadow/internal/filter"
)

// ErrBitmapTooLarge is returned by Draw when the shadow bitmap would exceed
// the configured pixel limit. The shadow is not drawn for that frame.
var ErrBitmapTooLarge = errors.New("shadow: bitmap too large")

// rendererKind identifies which renderer produced a cached bitmap.
type rendererKind uint8

const (
	rendererRect rendererKind = iota + 1
	rendererGeneric
)

func (k rendererKind) String() string {
	switch k {
	case rendererRect:
		return "rect"
	case rendererGeneric:
		return "generic"
	default:
		return "none"
	}
}

// cacheKey is everything a cached bitmap depends on. Paths are compared by
// identity.
type cacheKey struct {
	kind    rendererKind
	path    *Path
	width   float64
	height  float64
	radius  float64
	percent float64
	scale   float64
}

// layout is the device-pixel geometry of one shadow bitmap.
type layout struct {
	scale  float64 // device pixels per user unit
	w, h   int     // shape size in device pixels
	margin int     // padding on every side, ceil(radius*scale)
	active int     // blur radius in device pixels, ceil(radius*percent*scale)
}

// newLayout computes the bitmap geometry for a shape of the given extents.
// It fails with ErrBitmapTooLarge before any integer conversion can
// overflow.
func newLayout(ext Rect, s Shape, radius, percent, scale float64, maxPixels int) (layout, error) {
	sw, sh := ext.Width*scale, ext.Height*scale
	mf := math.Ceil(radius * scale)
	bw, bh := sw+2*mf+1, sh+2*mf+1
	if !(bw*bh <= float64(maxPixels)) {
		return layout{}, fmt.Errorf("%w: %.0fx%.0f pixels exceeds %d", ErrBitmapTooLarge, bw, bh, maxPixels)
	}

	l := layout{
		scale:  scale,
		margin: int(mf),
		active: int(math.Ceil(radius * percent * scale)),
	}
	if _, ok := s.(RectShape); ok {
		l.w, l.h = max(int(math.Round(sw)), 1), max(int(math.Round(sh)), 1)
	} else {
		l.w, l.h = max(int(math.Ceil(sw)), 1), max(int(math.Ceil(sh)), 1)
	}
	l.active = min(l.active, l.margin)
	return l, nil
}

// passRadius is the half-width of each box pass.
func (l layout) passRadius() int {
	return filter.PassRadius(l.active)
}

// bitmapSize returns the dimensions of the shadow bitmap.
func (l layout) bitmapSize() (width, height int) {
	return l.w + 2*l.margin, l.h + 2*l.margin
}

// fitsCornerTile reports whether a rectangle of this layout can be rendered
// from a single corner tile: the blur from one edge must not reach the
// tile's innermost row and column from the opposite edge.
func (l layout) fitsCornerTile() bool {
	side := min(l.w, l.h)
	return 2*l.active <= side && 2*filter.Reach(l.active) < side
}
