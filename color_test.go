package shadow

import (
	"image/color"
	"math"
	"testing"
)

var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque red", Red, 65535, 0, 0, 65535},
		{"transparent", RGBA{0, 0, 0, 0}, 0, 0, 0, 0},
		{"50% alpha red", RGBA{1, 0, 0, 0.5}, 32896, 0, 0, 32896},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
		ok   bool
	}{
		{"#000", RGBA{0, 0, 0, 1}, true},
		{"fff", RGBA{1, 1, 1, 1}, true},
		{"#f008", RGBA{1, 0, 0, 136.0 / 255}, true},
		{"#336699", RGBA{0.2, 0.4, 0.6, 1}, true},
		{"00000080", RGBA{0, 0, 0, 128.0 / 255}, true},
		{"#12345", RGBA{}, false},
		{"#zzzzzz", RGBA{}, false},
		{"", RGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseHex(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if !ok && Hex(tt.in) != Black {
				t.Errorf("Hex(%q) = %+v, want Black", tt.in, Hex(tt.in))
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if !colorsClose(got, RGBA{1, 0, 0, 128.0 / 255}) {
		t.Errorf("FromColor() = %+v", got)
	}
	if got := FromColor(color.RGBA{}); got.A != 0 {
		t.Errorf("FromColor(transparent).A = %v", got.A)
	}
}

func TestPremul8(t *testing.T) {
	tests := []struct {
		c    RGBA
		want [4]uint8
	}{
		{Black, [4]uint8{0, 0, 0, 255}},
		{RGBA{1, 1, 1, 0.5}, [4]uint8{128, 128, 128, 128}},
		{RGBA{2, -1, 0.5, 1}, [4]uint8{255, 0, 128, 255}},
		{Transparent, [4]uint8{}},
	}
	for _, tt := range tests {
		if got := tt.c.premul8(); got != tt.want {
			t.Errorf("%+v.premul8() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGBA{0.1, 0.2, 0.3, 0.8}.WithAlpha(0.5)
	if math.Abs(c.A-0.4) > 1e-12 || c.R != 0.1 {
		t.Errorf("WithAlpha = %+v", c)
	}
	p := RGBA{1, 0.5, 0, 0.5}.Premultiply()
	if p != (RGBA{0.5, 0.25, 0, 0.5}) {
		t.Errorf("Premultiply = %+v", p)
	}
}

func colorsClose(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
