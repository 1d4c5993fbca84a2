package shadow

import (
	"image"

	internalimage "github.com/gogpu/shadow/internal/image"
)

// Mask is an 8-bit alpha mask. Values range from 0 (fully transparent) to
// 255 (fully opaque). Rows are Stride bytes apart.
type Mask struct {
	width  int
	height int
	stride int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	width, height = max(width, 0), max(height, 0)
	return &Mask{
		width:  width,
		height: height,
		stride: width,
		data:   make([]uint8, width*height),
	}
}

// maskOver wraps an existing buffer without copying it.
func maskOver(data []uint8, width, height int) *Mask {
	return &Mask{width: width, height: height, stride: width, data: data}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Stride returns the distance in bytes between vertically adjacent values.
func (m *Mask) Stride() int { return m.stride }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.stride+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.stride+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for y := range m.height {
		row := m.data[y*m.stride : y*m.stride+m.width]
		for i := range row {
			row[i] = value
		}
	}
}

// Clear sets all values to 0.
func (m *Mask) Clear() {
	m.Fill(0)
}

// Clone creates a compact copy of the mask.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.width, m.height)
	for y := range m.height {
		copy(c.data[y*c.stride:(y+1)*c.stride], m.data[y*m.stride:y*m.stride+m.width])
	}
	return c
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// alphaBuf returns a sampling view of the mask.
func (m *Mask) alphaBuf() internalimage.AlphaBuf {
	return internalimage.AlphaBuf{Pix: m.data, Stride: m.stride, Width: m.width, Height: m.height}
}
