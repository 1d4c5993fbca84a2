package shadow

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular buffer of premultiplied RGBA pixels,
// 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied RGBA pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel replaces a single pixel with c.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	v := c.premul8()
	copy(p.data[i:i+4], v[:])
}

// GetPixel returns the unpremultiplied color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	a := p.data[i+3]
	if a == 0 {
		return Transparent
	}
	fa := float64(a)
	return RGBA{
		R: float64(p.data[i+0]) / fa,
		G: float64(p.data[i+1]) / fa,
		B: float64(p.data[i+2]) / fa,
		A: fa / 255,
	}
}

// pixel returns the raw premultiplied bytes of a pixel.
func (p *Pixmap) pixel(x, y int) [4]uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return [4]uint8{}
	}
	i := (y*p.width + x) * 4
	return [4]uint8{p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	v := c.premul8()
	for i := 0; i < len(p.data); i += 4 {
		copy(p.data[i:i+4], v[:])
	}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	v := p.pixel(x, y)
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
