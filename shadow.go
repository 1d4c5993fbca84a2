package shadow

import (
	"fmt"

	"github.com/gogpu/shadow/internal/cache"
	"github.com/gogpu/shadow/internal/filter"
	"github.com/gogpu/shadow/internal/raster"
)

// Shadow draws a blurred drop shadow of a shape and caches the result.
//
// Setters are cheap and never render; the work happens in Draw, and only
// when something the bitmap depends on has changed since the last Draw.
//
// A Shadow is not safe for concurrent use.
type Shadow struct {
	shape   Shape
	radius  float64
	percent float64
	color   RGBA

	maxScaleFactor  float64
	maxBitmapPixels int

	entry  cache.Entry[cacheKey]
	filler *raster.Filler

	renders uint64
	last    cache.Outcome
	kind    rendererKind
}

// Stats reports what a Shadow has done so far.
type Stats struct {
	// Renders is the number of bitmaps rendered.
	Renders uint64
	// Reuses is the number of draws that painted the cached bitmap.
	Reuses uint64
	// Allocations is the number of times the bitmap buffers were allocated.
	Allocations uint64
	// LastOutcome is "fresh", "stale" or "reused" for the last blurred draw.
	LastOutcome string
	// Renderer is "rect" or "generic" for the last blurred draw, or "none".
	Renderer string
}

// New creates a shadow with no shape. Until a shape is set, Draw does
// nothing.
func New(opts ...Option) *Shadow {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Shadow{
		shape:           RectShape{},
		radius:          nonNegative(o.resolvedRadius()),
		percent:         o.percent,
		color:           o.resolvedColor(),
		maxScaleFactor:  o.maxScaleFactor,
		maxBitmapPixels: o.maxBitmapPixels,
	}
}

// SetRectangle makes the shadow cast by a width x height rectangle whose
// top-left corner is at the user-space origin.
func (s *Shadow) SetRectangle(width, height float64) {
	s.shape = NewRectShape(width, height)
}

// SetPath makes the shadow cast by p, filled with the non-zero winding
// rule. The cached bitmap is tied to the identity of p: after modifying p
// in place, call SetPath again to re-render.
func (s *Shadow) SetPath(p *Path) {
	s.shape = NewPathShape(p)
	s.entry.Invalidate()
}

// SetShape sets the shape directly. A nil shape casts no shadow.
func (s *Shadow) SetShape(sh Shape) {
	if sh == nil {
		sh = RectShape{}
	}
	s.shape = sh
	if _, ok := sh.(PathShape); ok {
		s.entry.Invalidate()
	}
}

// Shape returns the current shape.
func (s *Shadow) Shape() Shape {
	return s.shape
}

// Extents returns the area covered by the shape, without the blur margin.
func (s *Shadow) Extents() Rect {
	return s.shape.Extents()
}

// SetRadius sets the blur radius in user units. Negative and NaN values
// become 0.
func (s *Shadow) SetRadius(r float64) {
	s.radius = nonNegative(r)
}

// Radius returns the blur radius.
func (s *Shadow) Radius() float64 {
	return s.radius
}

// SetPercent sets how much of the radius is blurred, clamped to [0, 1];
// NaN becomes 0.
// At 0 the shadow is a hard copy of the shape.
func (s *Shadow) SetPercent(p float64) {
	s.percent = clamp01(p)
}

// Percent returns the blur percent.
func (s *Shadow) Percent() float64 {
	return s.percent
}

// SetColor sets the shadow color. Changing the color never re-renders.
func (s *Shadow) SetColor(c RGBA) {
	s.color = c
}

// Color returns the shadow color.
func (s *Shadow) Color() RGBA {
	return s.color
}

// Stats returns counters describing past draws.
func (s *Shadow) Stats() Stats {
	es := s.entry.Stats()
	return Stats{
		Renders:     s.renders,
		Reuses:      es.Hits,
		Allocations: es.Allocations,
		LastOutcome: s.last.String(),
		Renderer:    s.kind.String(),
	}
}

// Release drops the cached bitmap. The next Draw renders again.
func (s *Shadow) Release() {
	s.entry.Reset()
	s.filler = nil
}

// Draw paints the shadow onto c at the user-space position of the shape.
//
// An empty shape draws nothing. With a zero radius or percent the shape is
// filled with the shadow color, unblurred. Otherwise the blurred bitmap is
// rendered at the device resolution of c, or taken from the cache when
// nothing it depends on has changed, and painted through c.DrawMask.
//
// Draw returns ErrBitmapTooLarge, leaving c untouched, when the bitmap
// would exceed the configured pixel limit, and an error wrapping the
// allocation failure when memory for it cannot be obtained.
func (s *Shadow) Draw(c Canvas) error {
	log := Logger()

	ext := s.shape.Extents()
	if ext.IsEmpty() {
		log.Debug("shadow: nothing to draw", "extents", ext)
		return nil
	}

	tint := s.color.WithAlpha(c.PaintAlpha())

	if s.radius == 0 || s.percent == 0 {
		switch sh := s.shape.(type) {
		case RectShape:
			c.FillRect(ext.X, ext.Y, ext.Width, ext.Height, tint)
		case PathShape:
			c.FillPath(sh.Path(), tint)
		}
		return nil
	}

	scale := s.deviceScale(c)
	l, err := newLayout(ext, s.shape, s.radius, s.percent, scale, s.maxBitmapPixels)
	if err != nil {
		log.Warn("shadow: skipped", "err", err)
		return err
	}

	kind := rendererGeneric
	if _, ok := s.shape.(RectShape); ok && l.fitsCornerTile() {
		kind = rendererRect
	}

	key := cacheKey{
		kind:    kind,
		width:   ext.Width,
		height:  ext.Height,
		radius:  s.radius,
		percent: s.percent,
		scale:   scale,
	}
	if ps, ok := s.shape.(PathShape); ok {
		key.path = ps.Path()
	}

	bw, bh := l.bitmapSize()
	out, err := s.entry.EnsureValid(bw, bh, key)
	if err != nil {
		log.Warn("shadow: skipped", "err", err)
		return fmt.Errorf("shadow: %w", err)
	}
	s.last, s.kind = out, kind
	if out.Fresh() {
		aw, ah := s.entry.Allocated()
		log.Debug("shadow: allocated bitmap", "width", aw, "height", ah)
	}

	if !out.Reused {
		pair := &filter.Pair{Front: s.entry.Bitmap(), Back: s.entry.Scratch(), Stride: bw}
		switch kind {
		case rendererRect:
			renderRect(pair, l)
		default:
			if out.NeedsClear {
				s.entry.Clear()
			}
			if s.filler == nil {
				s.filler = raster.NewFiller(0, 0)
			}
			renderGeneric(pair, s.filler, s.shape, ext, l)
		}
		s.entry.Commit()
		s.renders++
		log.Debug("shadow: rendered",
			"renderer", kind,
			"outcome", out,
			"width", bw,
			"height", bh,
			"blur", l.active,
		)
	}

	inv := 1 / scale
	maskToUser := Translate(ext.X, ext.Y).
		Multiply(Scale(inv, inv)).
		Multiply(Translate(float64(-l.margin), float64(-l.margin)))
	c.DrawMask(maskOver(s.entry.Bitmap(), bw, bh), maskToUser, tint)
	return nil
}

// deviceScale returns the bitmap resolution, in device pixels per user
// unit, for the current transform of c. Shrinking transforms still render
// at device resolution; magnification is capped at maxScaleFactor.
func (s *Shadow) deviceScale(c Canvas) float64 {
	ds := c.DeviceScale()
	if !(ds > 0) {
		ds = 1
	}
	sx, sy := c.Transform().ScaleFactors()
	return clampF(max(sx, sy)*ds, ds, s.maxScaleFactor*ds)
}
