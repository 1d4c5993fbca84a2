// Package shadow renders soft drop shadows for rectangles and closed paths.
//
// # Overview
//
// A Shadow describes the shape that casts it, a blur radius in user units, a
// blur percent in [0, 1] and a color. Draw rasterizes the shape into an 8-bit
// alpha bitmap, blurs it with a two-pass box filter approximating a Gaussian,
// and paints the result through a Canvas tinted with the shadow color.
//
// The blurred bitmap is cached. Redrawing an unchanged shadow (same shape,
// radius, percent and device scale) paints the cached bitmap without
// re-rendering, so shadows are cheap to draw every frame.
//
// # Quick Start
//
//	import "github.com/gogpu/shadow"
//
//	dc := shadow.NewContext(400, 300)
//	dc.ClearWithColor(shadow.White)
//
//	s := shadow.New(shadow.WithRadius(12), shadow.WithPercent(1))
//	s.SetRectangle(200, 120)
//
//	dc.Push()
//	dc.Translate(100, 90)
//	if err := s.Draw(dc); err != nil {
//		log.Fatal(err)
//	}
//	dc.Pop()
//
//	dc.SavePNG("shadow.png")
//
// # Renderers
//
// Rectangles whose blur fits inside them are rendered from a single blurred
// corner tile that is mirrored into the four corners and stretched along the
// edges, so the cost is independent of the rectangle size. Paths and small
// rectangles are rasterized and blurred in full. Both renderers produce the
// same pixels for the same rectangle.
//
// # Canvas
//
// The engine draws through the Canvas interface: the current transform, the
// device pixel scale, a global paint alpha and three paint operations. The
// software Context implements it on a premultiplied RGBA pixmap.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package shadow

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
