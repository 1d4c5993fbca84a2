package shadow

import (
	"github.com/gogpu/shadow/internal/filter"
	"github.com/gogpu/shadow/internal/raster"
)

// renderGeneric draws the shadow of s into p.Front, a zeroed bitmapSize()
// buffer: the shape is filled at offset (margin, margin) and the whole
// bitmap is blurred horizontally, then vertically.
func renderGeneric(p *filter.Pair, f *raster.Filler, s Shape, ext Rect, l layout) {
	bw, bh := l.bitmapSize()
	m := l.margin

	switch sh := s.(type) {
	case RectShape:
		raster.FillRect(p.Front, bw, bw, bh, m, m, m+l.w, m+l.h, 255)
	case PathShape:
		f.Reset(l.w, l.h)
		toDevice := Scale(l.scale, l.scale).Multiply(Translate(-ext.X, -ext.Y))
		sh.Path().outline(f, toDevice)
		f.Fill(p.Front, bw, bw, bh, m, m)
	}

	p.Blur(0, 0, bw, bh, l.active)
}
