package render

import "image/color"

// Surface is an immediate-mode 2D drawing target with a transform stack.
//
// Coordinates passed to path and text methods are in the current user space;
// implementations apply the accumulated transform. Push and Pop save and
// restore the transform only. Angles are in radians.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	SetColor(c color.Color)
	SetLineWidth(w float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill() error
	Stroke() error

	// Text draws s with its anchor point at (x, y). ax and ay select the
	// anchor within the text box: (0, 0.5) is left-middle, (1, 0.5) is
	// right-middle.
	Text(s string, x, y, size, ax, ay float64) error

	Clear(c color.Color)
}
