package shadow

// Canvas is the drawing surface a Shadow paints onto.
//
// User coordinates are mapped to logical coordinates by Transform, and
// logical coordinates to device pixels by DeviceScale. Paint operations take
// colors that are not premultiplied and use them as given; PaintAlpha is
// reported so that callers can fold it into their colors.
type Canvas interface {
	// Transform returns the current user-to-logical transform.
	Transform() Matrix

	// DeviceScale returns the number of device pixels per logical unit.
	DeviceScale() float64

	// PaintAlpha returns the opacity the caller should apply to its colors.
	PaintAlpha() float64

	// FillRect fills a rectangle given in user coordinates.
	FillRect(x, y, w, h float64, c RGBA)

	// FillPath fills p (user coordinates) with the non-zero winding rule.
	FillPath(p *Path, c RGBA)

	// DrawMask paints c through m. maskToUser maps mask pixel coordinates,
	// where pixel (i, j) covers [i, i+1) x [j, j+1), to user coordinates.
	DrawMask(m *Mask, maskToUser Matrix, c RGBA)
}
