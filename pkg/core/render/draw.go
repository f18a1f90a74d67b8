package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gridlock/pkg/core/lattice"
	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/pattern"
)

// arcStep is the angular resolution used to flatten arcs, in degrees.
const arcStep = 5.0

// Draw paints f onto s: background, the pattern in every cell, then the
// signature. Nothing is regenerated; the frame's pattern is replayed as is.
func Draw(s Surface, f Frame) error {
	s.Clear(f.Style.Background)
	if err := drawGrid(s, f); err != nil {
		return err
	}
	return drawSignature(s, f)
}

func drawGrid(s Surface, f Frame) error {
	snap := f.Snapshot
	l := f.Layout
	props := snap.Mode.Properties

	shapes := make([]pattern.Shape, snap.Pattern.Len())
	for i, sh := range snap.Pattern.Shapes {
		shapes[i] = sh.Scaled(f.Scale)
	}

	s.Push()
	defer s.Pop()
	s.Translate(l.Padding.Left, l.Padding.Top)

	half := l.CellSize / 2
	for i := 0; i < l.Cols; i++ {
		for j := 0; j < l.Rows; j++ {
			x, y := l.CellOrigin(i, j)
			s.Push()
			s.Translate(x, y)
			if props.Rotation != 0 {
				s.Translate(half, half)
				s.Rotate(props.Rotation * math.Pi / 180)
				s.Translate(-half, -half)
			}
			for k, sh := range shapes {
				if err := drawShape(s, sh, shapeColor(snap.Colors, k, props.Opacity), props, f.Scale); err != nil {
					s.Pop()
					return err
				}
			}
			s.Pop()
		}
	}
	return nil
}

// shapeColor returns the color for shape i with the mode opacity applied.
func shapeColor(colors []colorful.Color, i int, opacity float64) color.Color {
	var c colorful.Color
	if len(colors) > 0 {
		c = colors[i%len(colors)]
	}
	r, g, b := c.RGB255()
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(opacity * 255))}
}

func drawShape(s Surface, sh pattern.Shape, c color.Color, props mode.Properties, k float64) error {
	s.SetColor(c)
	s.SetLineWidth(props.StrokeWidth * k)

	switch sh.Kind {
	case pattern.KindTriangle:
		if sh.Apex == nil {
			break
		}
		polygon(s, sh.Start, sh.End, *sh.Apex)
		return paint(s, props.Filled)
	case pattern.KindHexagon, pattern.KindDiamond, pattern.KindQuad, pattern.KindCross:
		if len(sh.Vertices) < 3 {
			break
		}
		polygon(s, sh.Vertices...)
		return paint(s, props.Filled)
	case pattern.KindArc:
		if !sh.HasArc() {
			break
		}
		arc(s, sh.Center.X, sh.Center.Y, sh.Radius, sh.StartAngle, sh.StartAngle+sh.Span)
		return s.Stroke()
	case pattern.KindRings:
		// Rings are always stroked.
		if sh.Center == nil || sh.Radius <= 0 {
			break
		}
		for _, r := range []float64{sh.Radius, sh.InnerRadius} {
			if r > 0 {
				arc(s, sh.Center.X, sh.Center.Y, r, 0, 360)
				s.ClosePath()
			}
		}
		return s.Stroke()
	}

	s.MoveTo(sh.Start.X, sh.Start.Y)
	s.LineTo(sh.End.X, sh.End.Y)
	return s.Stroke()
}

func paint(s Surface, filled bool) error {
	if filled {
		return s.Fill()
	}
	return s.Stroke()
}

func polygon(s Surface, pts ...lattice.Point) {
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
		} else {
			s.LineTo(p.X, p.Y)
		}
	}
	s.ClosePath()
}

// arc adds a circular arc from a1 to a2 degrees as a polyline. Flattening
// keeps arcs correct under any transform, including mirroring.
func arc(s Surface, cx, cy, r, a1, a2 float64) {
	n := max(1, int(math.Ceil(math.Abs(a2-a1)/arcStep)))
	for i := 0; i <= n; i++ {
		a := (a1 + (a2-a1)*float64(i)/float64(n)) * math.Pi / 180
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
}
