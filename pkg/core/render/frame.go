package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/grid"
)

// DefaultTitle is the signature title. It is drawn with a mirrored "D".
const DefaultTitle = "GRIDLOCK"

// Signature positions the signature overlay. All lengths are preview pixels
// and are multiplied by the frame scale when drawn.
type Signature struct {
	TitleOffsetX   float64 `toml:"title_offset_x" json:"title_offset_x"`
	SeedOffsetX    float64 `toml:"seed_offset_x" json:"seed_offset_x"`
	CubeOffsetY    float64 `toml:"cube_offset_y" json:"cube_offset_y"`
	VerticalOffset float64 `toml:"vertical_offset" json:"vertical_offset"`
	TextSize       float64 `toml:"text_size" json:"text_size"`
	CubeSize       float64 `toml:"cube_size" json:"cube_size"`
	CubeSpacing    float64 `toml:"cube_spacing" json:"cube_spacing"`
	LineWidth      float64 `toml:"line_width" json:"line_width"`
	LineFraction   float64 `toml:"line_fraction" json:"line_fraction"` // of canvas width
}

// DefaultSignature returns the standard signature placement.
func DefaultSignature() Signature {
	return Signature{
		TitleOffsetX:   -180,
		SeedOffsetX:    125,
		CubeOffsetY:    15,
		VerticalOffset: -25,
		TextSize:       12,
		CubeSize:       10,
		CubeSpacing:    2,
		LineWidth:      2,
		LineFraction:   0.75,
	}
}

// Style holds the presentation choices that are not part of the artwork.
type Style struct {
	Background color.Color
	Title      string
	Signature  Signature
}

// DefaultBackground is the canvas color, a dark grey.
var DefaultBackground = color.Gray{Y: 40}

// DefaultStyle returns the standard style.
func DefaultStyle() Style {
	return Style{
		Background: DefaultBackground,
		Title:      DefaultTitle,
		Signature:  DefaultSignature(),
	}
}

// ParseBackground parses a #rrggbb background color.
func ParseBackground(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Frame is one snapshot prepared for drawing at a given scale.
type Frame struct {
	Snapshot artwork.Snapshot
	Layout   grid.Layout
	Scale    float64
	Style    Style
}

// NewFrame prepares snap for drawing at scale k. The pattern is not
// regenerated; every length is multiplied by k when drawn.
func NewFrame(snap artwork.Snapshot, k float64, style Style) Frame {
	if !(k > 0) {
		k = 1
	}
	if style.Background == nil {
		style.Background = DefaultBackground
	}
	if style.Title == "" {
		style.Title = DefaultTitle
	}
	if style.Signature == (Signature{}) {
		style.Signature = DefaultSignature()
	}
	return Frame{
		Snapshot: snap,
		Layout:   snap.Layout.Scaled(k),
		Scale:    k,
		Style:    style,
	}
}

// PreviewFrame prepares snap at its own resolution.
func PreviewFrame(snap artwork.Snapshot, style Style) Frame {
	return NewFrame(snap, 1, style)
}

// ExportFrame prepares snap for a canvas width pixels wide. The scale is
// width divided by the preview width, so the export is the preview enlarged.
func ExportFrame(snap artwork.Snapshot, width float64, style Style) Frame {
	k := 1.0
	if snap.Layout.Width > 0 && width > 0 {
		k = width / snap.Layout.Width
	}
	return NewFrame(snap, k, style)
}

// Size returns the frame's canvas size in whole pixels.
func (f Frame) Size() (w, h int) {
	return int(math.Round(f.Layout.Width)), int(math.Round(f.Layout.Height))
}
