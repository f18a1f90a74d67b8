// Package grid computes the cell layout of the artwork canvas.
//
// A [Layout] places a cols×rows grid of square cells inside a canvas with
// fixed padding on each side. The cell side is the largest value that fits
// both axes, never less than one pixel. The same layout scaled by a factor k
// gives the export geometry: every length is multiplied by k so that the
// preview and the print are identical up to scale.
package grid

import "math"

// Padding is the blank margin around the grid, in pixels.
type Padding struct {
	Top    float64 `json:"top" toml:"top"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Left   float64 `json:"left" toml:"left"`
	Right  float64 `json:"right" toml:"right"`
}

// Uniform returns padding of p on all four sides.
func Uniform(p float64) Padding {
	return Padding{Top: p, Bottom: p, Left: p, Right: p}
}

// Scaled multiplies every side by k.
func (p Padding) Scaled(k float64) Padding {
	return Padding{Top: p.Top * k, Bottom: p.Bottom * k, Left: p.Left * k, Right: p.Right * k}
}

// Layout is the computed grid geometry for one canvas size.
type Layout struct {
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
	CellSize float64 `json:"cell_size"`
	Padding  Padding `json:"padding"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Compute lays out cols×rows square cells on a width×height canvas.
// Non-positive cols or rows are treated as 1. The available extent on each
// axis is floored at 1 so degenerate canvases still produce a usable cell.
func Compute(width, height float64, cols, rows int, pad Padding) Layout {
	cols = max(cols, 1)
	rows = max(rows, 1)

	availW := math.Max(1, width-pad.Left-pad.Right)
	availH := math.Max(1, height-pad.Top-pad.Bottom)
	cell := math.Max(1, math.Min(availW/float64(cols), availH/float64(rows)))

	return Layout{
		Cols:     cols,
		Rows:     rows,
		CellSize: cell,
		Padding:  pad,
		Width:    width,
		Height:   height,
	}
}

// Scaled returns the layout with every length multiplied by k. The cell
// counts are unchanged.
func (l Layout) Scaled(k float64) Layout {
	return Layout{
		Cols:     l.Cols,
		Rows:     l.Rows,
		CellSize: l.CellSize * k,
		Padding:  l.Padding.Scaled(k),
		Width:    l.Width * k,
		Height:   l.Height * k,
	}
}

// CellOrigin returns the top-left corner of cell (i, j) relative to the
// padded origin. i indexes columns and j indexes rows.
func (l Layout) CellOrigin(i, j int) (x, y float64) {
	return float64(i) * l.CellSize, float64(j) * l.CellSize
}

// GridSize returns the extent covered by the cells themselves.
func (l Layout) GridSize() (w, h float64) {
	return float64(l.Cols) * l.CellSize, float64(l.Rows) * l.CellSize
}

// Fit returns the largest canvas with the given aspect ratio (height/width)
// that fits inside a windowW×windowH window. Results are rounded down to
// whole pixels and never smaller than 1.
func Fit(windowW, windowH, aspect float64) (w, h float64) {
	if aspect <= 0 {
		aspect = 1
	}
	w = windowW
	h = w * aspect
	if h > windowH {
		h = windowH
		w = h / aspect
	}
	return math.Max(1, math.Floor(w)), math.Max(1, math.Floor(h))
}
