package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("MulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t byte
		want    byte
	}{
		{0, 255, 0, 0},
		{0, 255, 255, 255},
		{0, 255, 128, 128},
		{100, 100, 77, 100},
		{200, 0, 51, 160},
	}
	for _, tt := range tests {
		if got := lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("lerp(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestPorterDuff(t *testing.T) {
	// Half-transparent red over opaque blue, premultiplied.
	src := [4]uint8{128, 0, 0, 128}
	dst := [4]uint8{0, 0, 255, 255}

	tests := []struct {
		mode Mode
		want [4]uint8
	}{
		{SourceOver, [4]uint8{128, 0, 127, 255}},
		{Clear, [4]uint8{0, 0, 0, 0}},
		{Source, [4]uint8{128, 0, 0, 128}},
		{DestinationOver, [4]uint8{0, 0, 255, 255}},
		{DestinationIn, [4]uint8{0, 0, 128, 128}},
		{DestinationOut, [4]uint8{0, 0, 127, 127}},
		{Plus, [4]uint8{128, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			px := dst
			Pixel(GetFunc(tt.mode), px[:], src, 255)
			if px != tt.want {
				t.Errorf("%v: got %v, want %v", tt.mode, px, tt.want)
			}
		})
	}
}

func TestPixelCoverage(t *testing.T) {
	px := [4]uint8{0, 0, 0, 0}
	Pixel(GetFunc(SourceOver), px[:], [4]uint8{0, 0, 0, 255}, 0)
	if px != [4]uint8{} {
		t.Errorf("zero coverage modified pixel: %v", px)
	}

	Pixel(GetFunc(SourceOver), px[:], [4]uint8{0, 0, 0, 255}, 128)
	if px[3] != 128 {
		t.Errorf("alpha after half coverage = %d, want 128", px[3])
	}

	// Source with partial coverage keeps part of the destination.
	px = [4]uint8{255, 255, 255, 255}
	Pixel(GetFunc(Source), px[:], [4]uint8{0, 0, 0, 0}, 64)
	if px[3] != 191 {
		t.Errorf("alpha after copy at 1/4 coverage = %d, want 191", px[3])
	}
}

func TestModeString(t *testing.T) {
	if got := Mode(200).String(); got != "unknown" {
		t.Errorf("Mode(200).String() = %q, want unknown", got)
	}
	if got := SourceOver.String(); got != "source-over" {
		t.Errorf("SourceOver.String() = %q", got)
	}
}

func TestGetFuncUnknownIsSourceOver(t *testing.T) {
	a := [4]uint8{10, 20, 30, 40}
	b := a
	Pixel(GetFunc(Mode(99)), a[:], [4]uint8{100, 0, 0, 100}, 255)
	Pixel(GetFunc(SourceOver), b[:], [4]uint8{100, 0, 0, 100}, 255)
	if a != b {
		t.Errorf("unknown mode = %v, source-over = %v", a, b)
	}
}
