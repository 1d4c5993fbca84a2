package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shadow"
)

// Scene is the YAML description of a demo image.
type Scene struct {
	Width      int           `yaml:"width,omitempty"`
	Height     int           `yaml:"height,omitempty"`
	Scale      float64       `yaml:"scale,omitempty"`
	Background string        `yaml:"background,omitempty"`
	Shadow     ShadowConfig  `yaml:"shadow"`
	Shapes     []ShapeConfig `yaml:"shapes"`
}

// ShadowConfig holds shadow settings. Unset fields inherit from the scene
// level, then from the library defaults.
type ShadowConfig struct {
	Color   string   `yaml:"color,omitempty"`
	Radius  *float64 `yaml:"radius,omitempty"`
	Percent *float64 `yaml:"percent,omitempty"`
	OffsetX float64  `yaml:"offset_x,omitempty"`
	OffsetY float64  `yaml:"offset_y,omitempty"`
}

// ShapeConfig describes one shape and its shadow.
//
// Kind is one of rect, rounded, circle, ellipse or polygon. Rectangles use
// X, Y, Width and Height; rounded rectangles add Corner; circles use X, Y
// as the center and Radius; ellipses use Width and Height as diameters;
// polygons list their vertices in Points.
type ShapeConfig struct {
	Kind   string        `yaml:"kind"`
	X      float64       `yaml:"x,omitempty"`
	Y      float64       `yaml:"y,omitempty"`
	Width  float64       `yaml:"width,omitempty"`
	Height float64       `yaml:"height,omitempty"`
	Radius float64       `yaml:"radius,omitempty"`
	Corner float64       `yaml:"corner,omitempty"`
	Points [][2]float64  `yaml:"points,omitempty"`
	Fill   string        `yaml:"fill,omitempty"`
	Shadow *ShadowConfig `yaml:"shadow,omitempty"`
}

// defaultScene is drawn when no scene file is given.
func defaultScene() *Scene {
	return &Scene{
		Width:      640,
		Height:     400,
		Scale:      1,
		Background: "#eef1f5",
		Shadow:     ShadowConfig{Color: "#00000066", OffsetX: 4, OffsetY: 6},
		Shapes: []ShapeConfig{
			{Kind: "rect", X: 60, Y: 60, Width: 160, Height: 110, Fill: "#ffffff"},
			{Kind: "rounded", X: 280, Y: 60, Width: 180, Height: 110, Corner: 18, Fill: "#4f86f7"},
			{Kind: "circle", X: 540, Y: 115, Radius: 55, Fill: "#f7b84f"},
			{Kind: "ellipse", X: 150, Y: 290, Width: 180, Height: 90, Fill: "#5fc27e"},
			{
				Kind:   "polygon",
				Points: [][2]float64{{300, 340}, {380, 230}, {460, 340}},
				Fill:   "#e05d5d",
				Shadow: &ShadowConfig{Radius: ptr(20.0)},
			},
			{Kind: "rect", X: 520, Y: 240, Width: 10, Height: 110, Fill: "#333333"},
		},
	}
}

// LoadOptional reads the scene at path. An empty path or a missing file
// yields the built-in scene.
func LoadOptional(path string) (*Scene, error) {
	if path == "" {
		return defaultScene(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultScene(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene and fills in defaults.
func ParseScene(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if sc.Width == 0 {
		sc.Width = 640
	}
	if sc.Height == 0 {
		sc.Height = 400
	}
	if sc.Scale == 0 {
		sc.Scale = 1
	}
	if sc.Background == "" {
		sc.Background = "#ffffff"
	}
	if sc.Width < 0 || sc.Height < 0 || sc.Scale < 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d at scale %g", sc.Width, sc.Height, sc.Scale)
	}
	return &sc, nil
}

// item is a resolved shape ready to draw.
type item struct {
	shadow *shadow.Shadow
	fill   shadow.RGBA
	x, y   float64 // translation applied to rectangles
	dx, dy float64 // shadow offset
	path   *shadow.Path
	rect   [2]float64
}

// Resolve turns the scene description into drawable items, one Shadow per
// shape so each keeps its own cached bitmap.
func (sc *Scene) Resolve() ([]*item, shadow.RGBA, error) {
	bg, ok := shadow.ParseHex(sc.Background)
	if !ok {
		return nil, shadow.RGBA{}, fmt.Errorf("invalid background color %q", sc.Background)
	}

	base, err := sc.Shadow.style(nil)
	if err != nil {
		return nil, shadow.RGBA{}, err
	}

	items := make([]*item, 0, len(sc.Shapes))
	for i, shc := range sc.Shapes {
		it, err := shc.resolve(base, sc.Shadow)
		if err != nil {
			return nil, shadow.RGBA{}, fmt.Errorf("shape %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, bg, nil
}

func (shc ShapeConfig) resolve(base *shadow.Style, scene ShadowConfig) (*item, error) {
	fill := shadow.White
	if shc.Fill != "" {
		c, ok := shadow.ParseHex(shc.Fill)
		if !ok {
			return nil, fmt.Errorf("invalid fill color %q", shc.Fill)
		}
		fill = c
	}

	sc := scene
	st := base
	if shc.Shadow != nil {
		var err error
		if st, err = shc.Shadow.style(base); err != nil {
			return nil, err
		}
		sc = *shc.Shadow
		if sc.OffsetX == 0 && sc.OffsetY == 0 {
			sc.OffsetX, sc.OffsetY = scene.OffsetX, scene.OffsetY
		}
		if sc.Percent == nil {
			sc.Percent = scene.Percent
		}
	}

	opts := []shadow.Option{shadow.WithStyle(st)}
	if sc.Percent != nil {
		opts = append(opts, shadow.WithPercent(*sc.Percent))
	}
	it := &item{
		shadow: shadow.New(opts...),
		fill:   fill,
		dx:     sc.OffsetX,
		dy:     sc.OffsetY,
	}

	switch strings.ToLower(shc.Kind) {
	case "rect", "":
		it.x, it.y = shc.X, shc.Y
		it.rect = [2]float64{shc.Width, shc.Height}
		it.shadow.SetRectangle(shc.Width, shc.Height)
		return it, nil
	case "rounded":
		it.path = shadow.NewPath()
		it.path.RoundedRectangle(shc.X, shc.Y, shc.Width, shc.Height, shc.Corner)
	case "circle":
		it.path = shadow.NewPath()
		it.path.Circle(shc.X, shc.Y, shc.Radius)
	case "ellipse":
		it.path = shadow.NewPath()
		it.path.Ellipse(shc.X, shc.Y, shc.Width/2, shc.Height/2)
	case "polygon":
		if len(shc.Points) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(shc.Points))
		}
		it.path = shadow.NewPath()
		it.path.MoveTo(shc.Points[0][0], shc.Points[0][1])
		for _, pt := range shc.Points[1:] {
			it.path.LineTo(pt[0], pt[1])
		}
		it.path.Close()
	default:
		return nil, fmt.Errorf("unknown shape kind %q", shc.Kind)
	}
	it.shadow.SetPath(it.path)
	return it, nil
}

// style builds a Style inheriting from parent.
func (c ShadowConfig) style(parent *shadow.Style) (*shadow.Style, error) {
	st := &shadow.Style{Parent: parent, Radius: c.Radius}
	if c.Color != "" {
		col, ok := shadow.ParseHex(c.Color)
		if !ok {
			return nil, fmt.Errorf("invalid shadow color %q", c.Color)
		}
		st.Color = &col
	}
	return st, nil
}

// draw paints the shadow, then the shape on top of it.
func (it *item) draw(dc *shadow.Context) error {
	dc.Push()
	defer dc.Pop()

	dc.Translate(it.x+it.dx, it.y+it.dy)
	if err := it.shadow.Draw(dc); err != nil {
		return err
	}
	dc.Translate(-it.dx, -it.dy)

	if it.path != nil {
		dc.FillPath(it.path, it.fill)
		return nil
	}
	dc.FillRect(0, 0, it.rect[0], it.rect[1], it.fill)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
