package shadow

// ContextOption configures a Context during creation.
//
//	pm := shadow.NewPixmap(800, 600)
//	dc := shadow.NewContext(800, 600, shadow.WithPixmap(pm))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap      *Pixmap
	deviceScale float64
	interp      Interpolation
}

// defaultContextOptions returns the default context options.
func defaultContextOptions() contextOptions {
	return contextOptions{
		deviceScale: 1,
		interp:      InterpolationBilinear,
	}
}

// WithPixmap draws into an existing pixmap. The context takes its size
// from the pixmap.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithDeviceScale sets the number of device pixels per logical unit.
// Non-positive values are ignored.
func WithDeviceScale(s float64) ContextOption {
	return func(o *contextOptions) {
		if s > 0 {
			o.deviceScale = s
		}
	}
}

// WithInterpolation sets how masks are sampled under non-integer
// transforms.
func WithInterpolation(i Interpolation) ContextOption {
	return func(o *contextOptions) {
		o.interp = i
	}
}

// Option configures a Shadow during creation.
//
//	s := shadow.New(
//		shadow.WithRadius(12),
//		shadow.WithColor(shadow.RGBA{A: 0.3}),
//	)
type Option func(*options)

// Defaults for the resource limits of a Shadow.
const (
	// DefaultMaxScaleFactor bounds how far a transform may magnify the
	// shadow bitmap beyond the device scale.
	DefaultMaxScaleFactor = 4.0

	// DefaultMaxBitmapPixels is the largest shadow bitmap, in pixels, a
	// Shadow will allocate.
	DefaultMaxBitmapPixels = 1 << 26
)

type options struct {
	style           *Style
	color           *RGBA
	radius          *float64
	percent         float64
	maxScaleFactor  float64
	maxBitmapPixels int
}

func defaultOptions() options {
	return options{
		percent:         DefaultPercent,
		maxScaleFactor:  DefaultMaxScaleFactor,
		maxBitmapPixels: DefaultMaxBitmapPixels,
	}
}

// resolvedColor returns the explicit color, else the style's.
func (o *options) resolvedColor() RGBA {
	if o.color != nil {
		return *o.color
	}
	return o.style.ResolvedColor()
}

// resolvedRadius returns the explicit radius, else the style's.
func (o *options) resolvedRadius() float64 {
	if o.radius != nil {
		return *o.radius
	}
	return o.style.ResolvedRadius()
}

// WithStyle sets the style the shadow takes its color and radius from when
// WithColor or WithRadius are not given.
func WithStyle(s *Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithColor sets the shadow color.
func WithColor(c RGBA) Option {
	return func(o *options) {
		o.color = &c
	}
}

// WithRadius sets the blur radius in user units. Negative and NaN values
// become 0.
func WithRadius(r float64) Option {
	return func(o *options) {
		r = nonNegative(r)
		o.radius = &r
	}
}

// WithPercent sets the blur percent, clamped to [0, 1].
func WithPercent(p float64) Option {
	return func(o *options) {
		o.percent = clamp01(p)
	}
}

// WithMaxScaleFactor bounds the transform magnification applied to the
// shadow bitmap. Values below 1 are ignored.
func WithMaxScaleFactor(f float64) Option {
	return func(o *options) {
		if f >= 1 {
			o.maxScaleFactor = f
		}
	}
}

// WithMaxBitmapPixels sets the largest bitmap a shadow may allocate.
// Non-positive values are ignored.
func WithMaxBitmapPixels(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBitmapPixels = n
		}
	}
}
