package render

import (
	"image/color"

	"github.com/matzehuels/gridlock/pkg/core/lattice"
)

// Title layout around the mirrored letter, in preview pixels relative to
// the title anchor.
const (
	titleHeadGap   = 30   // right edge of "GRI"
	titleMirrorMid = 24.5 // center of the mirrored "D"
	titleTailGap   = 20   // left edge of "LOCK"
	glyphCapHeight = 0.7  // of text size
	glyphStroke    = 0.1  // of text size
)

// drawSignature paints the signature line, one cube per assigned color, the
// title and the seed.
func drawSignature(s Surface, f Frame) error {
	snap := f.Snapshot
	sig := f.Style.Signature
	l := f.Layout
	k := f.Scale

	ink := shapeColor(snap.Colors, snap.SignatureColor, 1)
	n := float64(len(snap.Colors))
	centerX := l.Width / 2
	lineY := l.Height - l.Padding.Bottom*0.8 + (sig.VerticalOffset+snap.SignatureOffset)*k

	lineW := l.Width * sig.LineFraction
	s.SetColor(ink)
	s.SetLineWidth(sig.LineWidth * k)
	s.MoveTo(centerX-lineW/2, lineY)
	s.LineTo(centerX+lineW/2, lineY)
	if err := s.Stroke(); err != nil {
		return err
	}

	cube, gap := sig.CubeSize*k, sig.CubeSpacing*k
	x := centerX - (n*cube+(n-1)*gap)/2
	y := lineY + sig.CubeOffsetY*k - cube/2
	for i := range snap.Colors {
		s.SetColor(shapeColor(snap.Colors, i, 1))
		polygon(s,
			lattice.Point{X: x, Y: y},
			lattice.Point{X: x + cube, Y: y},
			lattice.Point{X: x + cube, Y: y + cube},
			lattice.Point{X: x, Y: y + cube},
		)
		if err := s.Fill(); err != nil {
			return err
		}
		x += cube + gap
	}

	textY := lineY + (10+sig.CubeSize/2)*k
	size := sig.TextSize * k
	legend := n * (sig.CubeSize + sig.CubeSpacing) / 2 * k

	s.SetColor(ink)
	if err := drawTitle(s, f.Style.Title, centerX-legend+sig.TitleOffsetX*k, textY, size, k, ink); err != nil {
		return err
	}
	return s.Text("seed: "+snap.Seed.String(), centerX+legend+sig.SeedOffsetX*k, textY, size, 0, 0.5)
}

// drawTitle right-aligns title at x. The default title is split around a
// mirrored "D", drawn as a stroked glyph under a horizontal flip.
func drawTitle(s Surface, title string, x, y, size, k float64, ink color.Color) error {
	if title != DefaultTitle {
		return s.Text(title, x, y, size, 1, 0.5)
	}

	if err := s.Text("GRI", x-titleHeadGap*k, y, size, 1, 0.5); err != nil {
		return err
	}

	h := size * glyphCapHeight
	w := h / 2
	s.Push()
	s.Translate(x-titleMirrorMid*k, y)
	s.Scale(-1, 1)
	s.SetColor(ink)
	s.SetLineWidth(size * glyphStroke)
	s.MoveTo(-w/2, -h/2)
	s.LineTo(-w/2, h/2)
	arc(s, -w/2, 0, h/2, -90, 90)
	err := s.Stroke()
	s.Pop()
	if err != nil {
		return err
	}

	return s.Text("LOCK", x-titleTailGap*k, y, size, 0, 0.5)
}
