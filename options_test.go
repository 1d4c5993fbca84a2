package shadow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContextOptions(t *testing.T) {
	pm := NewPixmap(2, 2)

	tests := []struct {
		name string
		opts []ContextOption
		want contextOptions
	}{
		{"defaults", nil, contextOptions{deviceScale: 1, interp: InterpolationBilinear}},
		{"device scale", []ContextOption{WithDeviceScale(1.5)}, contextOptions{deviceScale: 1.5, interp: InterpolationBilinear}},
		{"non-positive scale ignored", []ContextOption{WithDeviceScale(0), WithDeviceScale(-2)}, contextOptions{deviceScale: 1, interp: InterpolationBilinear}},
		{"nearest", []ContextOption{WithInterpolation(InterpolationNearest)}, contextOptions{deviceScale: 1, interp: InterpolationNearest}},
		{"pixmap", []ContextOption{WithPixmap(pm)}, contextOptions{pixmap: pm, deviceScale: 1, interp: InterpolationBilinear}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultContextOptions()
			for _, opt := range tt.opts {
				opt(&got)
			}
			if got != tt.want {
				t.Errorf("options = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShadowLimitOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantScale  float64
		wantPixels int
	}{
		{"defaults", nil, DefaultMaxScaleFactor, DefaultMaxBitmapPixels},
		{"explicit", []Option{WithMaxScaleFactor(2), WithMaxBitmapPixels(1000)}, 2, 1000},
		{"ignored", []Option{WithMaxScaleFactor(0.5), WithMaxBitmapPixels(0)}, DefaultMaxScaleFactor, DefaultMaxBitmapPixels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.opts...)
			got := [2]float64{s.maxScaleFactor, float64(s.maxBitmapPixels)}
			want := [2]float64{tt.wantScale, float64(tt.wantPixels)}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("limits mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorOptionOverridesStyle(t *testing.T) {
	green := Green
	st := &Style{Color: &green}

	if got := New(WithStyle(st)).Color(); got != Green {
		t.Errorf("style color = %+v, want green", got)
	}
	if got := New(WithStyle(st), WithColor(Red)).Color(); got != Red {
		t.Errorf("explicit color = %+v, want red", got)
	}
	if got := New(WithColor(Red), WithStyle(st)).Color(); got != Red {
		t.Errorf("option order changed the result: %+v", got)
	}
}
