package shadow

// Default shadow appearance used when neither an option nor a Style sets a
// value.
const (
	DefaultRadius  = 8.0
	DefaultPercent = 1.0
)

// DefaultColor is the default shadow color, black at 50% opacity.
func DefaultColor() RGBA {
	return RGBA{A: 0.5}
}

// Style carries shadow appearance that can be shared by many shadows.
// Nil fields inherit from Parent, and finally from the package defaults.
// A Style is never modified by this package.
type Style struct {
	Parent *Style
	Color  *RGBA
	Radius *float64
}

// ResolvedColor returns the first color set along the parent chain.
func (s *Style) ResolvedColor() RGBA {
	for st := s; st != nil; st = st.Parent {
		if st.Color != nil {
			return *st.Color
		}
	}
	return DefaultColor()
}

// ResolvedRadius returns the first radius set along the parent chain.
func (s *Style) ResolvedRadius() float64 {
	for st := s; st != nil; st = st.Parent {
		if st.Radius != nil {
			return *st.Radius
		}
	}
	return DefaultRadius
}
