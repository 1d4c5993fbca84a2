package shadow

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/shadow/internal/blend"
	internalimage "github.com/gogpu/shadow/internal/image"
	"github.com/gogpu/shadow/internal/raster"
)

// BlendMode selects the Porter-Duff operator used by paint operations.
type BlendMode uint8

const (
	BlendSourceOver      = BlendMode(blend.SourceOver) // default
	BlendClear           = BlendMode(blend.Clear)
	BlendSource          = BlendMode(blend.Source)
	BlendDestinationOver = BlendMode(blend.DestinationOver)
	BlendDestinationIn   = BlendMode(blend.DestinationIn)
	BlendDestinationOut  = BlendMode(blend.DestinationOut)
	BlendPlus            = BlendMode(blend.Plus)
)

// String returns the CSS-style operator name.
func (m BlendMode) String() string {
	return blend.Mode(m).String()
}

// Interpolation selects how masks are sampled under non-integer transforms.
type Interpolation uint8

const (
	// InterpolationBilinear blends the four nearest mask pixels.
	InterpolationBilinear = Interpolation(internalimage.InterpBilinear)
	// InterpolationNearest picks the mask pixel under each device pixel.
	InterpolationNearest = Interpolation(internalimage.InterpNearest)
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	return internalimage.InterpolationMode(i).String()
}

// contextState is the part of the Context saved by Push.
type contextState struct {
	matrix Matrix
	clip   image.Rectangle
	alpha  float64
	mode   BlendMode
}

// Context is a software Canvas backed by a premultiplied RGBA Pixmap.
// It maintains a transform, a rectangular device clip, a paint alpha and a
// blend mode, all saved and restored by Push and Pop.
//
// Context is not safe for concurrent use.
type Context struct {
	width       int
	height      int
	pixmap      *Pixmap
	deviceScale float64
	interp      Interpolation

	contextState
	stack []contextState

	filler *raster.Filler
	cov    []uint8
}

var _ Canvas = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions in
// device pixels.
//
//	dc := shadow.NewContext(800, 600)
//
//	// HiDPI: 2 device pixels per logical unit.
//	dc := shadow.NewContext(1600, 1200, shadow.WithDeviceScale(2))
func NewContext(width, height int, opts ...ContextOption) *Context {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(width, height)
	}
	width, height = pm.Width(), pm.Height()

	return &Context{
		width:       width,
		height:      height,
		pixmap:      pm,
		deviceScale: o.deviceScale,
		interp:      o.interp,
		contextState: contextState{
			matrix: Identity(),
			clip:   image.Rect(0, 0, width, height),
			alpha:  1,
		},
		stack:  make([]contextState, 0, 8),
		filler: raster.NewFiller(0, 0),
	}
}

// Width returns the width in device pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height in device pixels.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the drawing target.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the drawing target as an image.Image.
func (c *Context) Image() image.Image {
	return c.pixmap
}

// SavePNG saves the current drawing to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// EncodePNG writes the current drawing as PNG to w.
func (c *Context) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.pixmap.ToImage())
}

// Clear fills the whole target with transparent black, ignoring the clip.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the whole target with col, ignoring the clip.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// Push saves the transform, clip, alpha and blend mode.
func (c *Context) Push() {
	c.stack = append(c.stack, c.contextState)
}

// Pop restores the state saved by the matching Push.
// Pop without a matching Push does nothing.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.contextState = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Identity resets the current transform.
func (c *Context) Identity() {
	c.matrix = Identity()
}

// Translate applies a translation to the current transform.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scale to the current transform.
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate applies a rotation (radians) to the current transform.
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around the point (x, y).
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(m Matrix) {
	c.matrix = m
}

// Transform implements Canvas.
func (c *Context) Transform() Matrix {
	return c.matrix
}

// SetDeviceScale sets the number of device pixels per logical unit.
// Non-positive values reset it to 1.
func (c *Context) SetDeviceScale(s float64) {
	if !(s > 0) {
		s = 1
	}
	c.deviceScale = s
}

// DeviceScale implements Canvas.
func (c *Context) DeviceScale() float64 {
	return c.deviceScale
}

// SetAlpha sets the alpha reported by PaintAlpha, clamped to [0, 1].
// Paint operations do not apply it; drawers fold it into their colors.
func (c *Context) SetAlpha(a float64) {
	c.alpha = clamp01(a)
}

// PaintAlpha implements Canvas.
func (c *Context) PaintAlpha() float64 {
	return c.alpha
}

// SetBlendMode sets the compositing operator for subsequent paints.
func (c *Context) SetBlendMode(m BlendMode) {
	c.mode = m
}

// BlendMode returns the current compositing operator.
func (c *Context) BlendMode() BlendMode {
	return c.mode
}

// SetInterpolation sets how masks are sampled under non-integer transforms.
func (c *Context) SetInterpolation(i Interpolation) {
	c.interp = i
}

// ClipRect intersects the clip with the device pixels covered by the
// bounding box of the transformed rectangle.
func (c *Context) ClipRect(x, y, w, h float64) {
	b := c.deviceBounds(Rect{X: x, Y: y, Width: w, Height: h})
	c.clip = c.clip.Intersect(b)
}

// ResetClip removes all clipping, restoring the full target as drawable.
func (c *Context) ResetClip() {
	c.clip = image.Rect(0, 0, c.width, c.height)
}

// ClipBounds returns the current clip in device pixels.
func (c *Context) ClipBounds() image.Rectangle {
	return c.clip
}

// FillRect implements Canvas. Under an axis-aligned transform coverage is
// computed analytically per pixel; rectangles on pixel boundaries get hard
// edges.
func (c *Context) FillRect(x, y, w, h float64, col RGBA) {
	if !(w > 0) || !(h > 0) {
		return
	}
	m := c.deviceMatrix()
	if !m.IsAxisAligned() {
		p := NewPath()
		p.Rectangle(x, y, w, h)
		c.FillPath(p, col)
		return
	}

	p0 := m.TransformPoint(Pt(x, y))
	p1 := m.TransformPoint(Pt(x+w, y+h))
	src := col.premul8()
	f := blend.GetFunc(blend.Mode(c.mode))

	if raster.IsAligned(p0.X) && raster.IsAligned(p0.Y) && raster.IsAligned(p1.X) && raster.IsAligned(p1.Y) {
		r := image.Rect(raster.Snap(p0.X), raster.Snap(p0.Y), raster.Snap(p1.X), raster.Snap(p1.Y)).Intersect(c.clip)
		c.paintSpan(r, f, src, func(int, int) uint8 { return 255 })
		return
	}

	r := image.Rect(
		int(math.Floor(p0.X)), int(math.Floor(p0.Y)),
		int(math.Ceil(p1.X)), int(math.Ceil(p1.Y)),
	).Intersect(c.clip)
	c.paintSpan(r, f, src, func(px, py int) uint8 {
		cov := raster.AxisCoverage(p0.X, p1.X, px) * raster.AxisCoverage(p0.Y, p1.Y, py)
		return uint8(cov*255 + 0.5)
	})
}

// FillPath implements Canvas.
func (c *Context) FillPath(p *Path, col RGBA) {
	if p.IsEmpty() {
		return
	}
	m := c.deviceMatrix()
	r := c.deviceBoundsFor(p.Bounds(), m).Intersect(c.clip)
	if r.Empty() {
		return
	}

	w, h := r.Dx(), r.Dy()
	cov := c.coverage(w * h)
	c.filler.Reset(w, h)
	p.outline(c.filler, Translate(float64(-r.Min.X), float64(-r.Min.Y)).Multiply(m))
	c.filler.Fill(cov, w, w, h, 0, 0)

	src := col.premul8()
	f := blend.GetFunc(blend.Mode(c.mode))
	c.paintSpan(r, f, src, func(px, py int) uint8 {
		return cov[(py-r.Min.Y)*w+(px-r.Min.X)]
	})
}

// DrawMask implements Canvas. Integer translations copy mask values
// directly; other transforms sample the mask at each device pixel center.
func (c *Context) DrawMask(mask *Mask, maskToUser Matrix, col RGBA) {
	if mask == nil || mask.Width() == 0 || mask.Height() == 0 {
		return
	}
	full := c.deviceMatrix().Multiply(maskToUser)
	src := col.premul8()
	f := blend.GetFunc(blend.Mode(c.mode))

	if full.IsTranslation() && raster.IsAligned(full.C) && raster.IsAligned(full.F) {
		ox, oy := raster.Snap(full.C), raster.Snap(full.F)
		r := image.Rect(ox, oy, ox+mask.Width(), oy+mask.Height()).Intersect(c.clip)
		c.paintSpan(r, f, src, func(px, py int) uint8 {
			return mask.At(px-ox, py-oy)
		})
		return
	}

	if !full.IsInvertible() {
		return
	}
	bounds := Rect{Width: float64(mask.Width()), Height: float64(mask.Height())}
	r := c.deviceBoundsFor(bounds, full).Intersect(c.clip)
	inv := full.Invert()
	buf := mask.alphaBuf()
	mode := internalimage.InterpolationMode(c.interp)
	c.paintSpan(r, f, src, func(px, py int) uint8 {
		q := inv.TransformPoint(Pt(float64(px)+0.5, float64(py)+0.5))
		return internalimage.Sample(buf, q.X, q.Y, mode)
	})
}

// deviceMatrix maps user coordinates to device pixels.
func (c *Context) deviceMatrix() Matrix {
	return Scale(c.deviceScale, c.deviceScale).Multiply(c.matrix)
}

// deviceBounds returns the device pixels touched by the bounding box of r
// under the current transform.
func (c *Context) deviceBounds(r Rect) image.Rectangle {
	return c.deviceBoundsFor(r, c.deviceMatrix())
}

func (c *Context) deviceBoundsFor(r Rect, m Matrix) image.Rectangle {
	pts := [4]Point{
		m.TransformPoint(Pt(r.X, r.Y)),
		m.TransformPoint(Pt(r.X+r.Width, r.Y)),
		m.TransformPoint(Pt(r.X, r.Y+r.Height)),
		m.TransformPoint(Pt(r.X+r.Width, r.Y+r.Height)),
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	// Clamp before converting so huge shapes cannot overflow int.
	lim := float64(max(c.width, c.height) + 1)
	return image.Rect(
		int(math.Floor(clampF(minX, -1, lim))), int(math.Floor(clampF(minY, -1, lim))),
		int(math.Ceil(clampF(maxX, -1, lim))), int(math.Ceil(clampF(maxY, -1, lim))),
	)
}

// paintSpan composites src over every pixel of r with the coverage
// returned by cov.
func (c *Context) paintSpan(r image.Rectangle, f blend.Func, src [4]uint8, cov func(x, y int) uint8) {
	data := c.pixmap.Data()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * c.width * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			a := cov(x, y)
			if a == 0 {
				continue
			}
			i := row + x*4
			blend.Pixel(f, data[i:i+4], src, a)
		}
	}
}

// coverage returns a zeroed scratch buffer of n bytes.
func (c *Context) coverage(n int) []uint8 {
	if cap(c.cov) < n {
		c.cov = make([]uint8, n)
	}
	c.cov = c.cov[:n]
	clear(c.cov)
	return c.cov
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
