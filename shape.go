package shadow

// Rect is an axis-aligned rectangle in user units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Shape is the outline that casts a shadow: either a RectShape or a
// PathShape.
type Shape interface {
	// Extents returns the area the shape covers in user units. An empty
	// result means there is nothing to draw.
	Extents() Rect

	isShape()
}

// RectShape is a rectangle with its top-left corner at the origin.
type RectShape struct {
	Width, Height float64
}

// NewRectShape returns a rectangle shape; negative and NaN sizes become 0.
func NewRectShape(width, height float64) RectShape {
	return RectShape{Width: nonNegative(width), Height: nonNegative(height)}
}

// Extents implements Shape.
func (s RectShape) Extents() Rect {
	if !(s.Width > 0) || !(s.Height > 0) {
		return Rect{}
	}
	return Rect{Width: s.Width, Height: s.Height}
}

func (RectShape) isShape() {}

// PathShape is an arbitrary closed path, filled with the non-zero winding
// rule. Its extents are computed once, when the shape is created.
type PathShape struct {
	path   *Path
	bounds Rect
}

// NewPathShape returns a shape for p. A nil or empty path has empty
// extents.
func NewPathShape(p *Path) PathShape {
	s := PathShape{path: p}
	if !p.IsEmpty() {
		s.bounds = p.Bounds()
	}
	return s
}

// Path returns the path the shape was created from.
func (s PathShape) Path() *Path {
	return s.path
}

// Extents implements Shape. Curves contribute their control points, so the
// result may be slightly larger than the filled area.
func (s PathShape) Extents() Rect {
	if s.bounds.IsEmpty() {
		return Rect{}
	}
	return s.bounds
}

func (PathShape) isShape() {}
