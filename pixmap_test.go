package shadow

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
)

var _ image.Image = (*Pixmap)(nil)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, RGBA{1, 0.5, 0, 0.5})

	data := pm.Data()
	i := (5*10 + 5) * 4
	if data[i] != 128 || data[i+1] != 64 || data[i+2] != 0 || data[i+3] != 128 {
		t.Errorf("raw data = %v, want premultiplied (128, 64, 0, 128)", data[i:i+4])
	}

	got := pm.GetPixel(5, 5)
	if math.Abs(got.R-1) > 1e-9 || math.Abs(got.G-0.5) > 1e-9 || math.Abs(got.A-128.0/255) > 1e-9 {
		t.Errorf("GetPixel = %+v", got)
	}
	if pm.GetPixel(-1, 0) != Transparent || pm.GetPixel(0, 0) != Transparent {
		t.Error("GetPixel should return Transparent outside or on empty pixels")
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)
	original := append([]uint8(nil), pm.Data()...)

	for _, c := range []struct{ x, y int }{{-1, 2}, {4, 2}, {2, -1}, {2, 4}, {100, 100}} {
		pm.SetPixel(c.x, c.y, Red)
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Clear(RGBA{0, 0, 1, 1})

	if pm.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
	if pm.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not RGBAModel")
	}
	if got := pm.At(2, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("At(2, 1) = %v", got)
	}
	img := pm.ToImage()
	if img.RGBAAt(0, 0) != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("ToImage pixel = %v", img.RGBAAt(0, 0))
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("PNG not written: %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
