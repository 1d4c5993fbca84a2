package shadow

import "testing"

func TestStyleResolution(t *testing.T) {
	red := Red
	radius := 3.0
	zero := 0.0

	base := &Style{Color: &red}
	child := &Style{Parent: base, Radius: &radius}
	flat := &Style{Parent: child, Radius: &zero}

	tests := []struct {
		name       string
		s          *Style
		wantColor  RGBA
		wantRadius float64
	}{
		{"nil style", nil, DefaultColor(), DefaultRadius},
		{"empty style", &Style{}, DefaultColor(), DefaultRadius},
		{"base", base, Red, DefaultRadius},
		{"child inherits color", child, Red, 3},
		{"explicit zero radius wins", flat, Red, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.ResolvedColor(); got != tt.wantColor {
				t.Errorf("ResolvedColor() = %+v, want %+v", got, tt.wantColor)
			}
			if got := tt.s.ResolvedRadius(); got != tt.wantRadius {
				t.Errorf("ResolvedRadius() = %v, want %v", got, tt.wantRadius)
			}
		})
	}
}

func TestDefaultColorIsImmutable(t *testing.T) {
	c := DefaultColor()
	c.A = 1
	if DefaultColor().A != 0.5 {
		t.Error("DefaultColor() changed after modifying a returned value")
	}
}
