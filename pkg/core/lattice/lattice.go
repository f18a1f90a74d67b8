// Package lattice builds the regular point grid that shapes snap to.
package lattice

import (
	"math"

	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// Point is a position inside a cell, in cell-local pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Lattice is an ordered set of candidate points covering one cell.
type Lattice struct {
	Points   []Point
	Step     float64
	CellSize float64
}

// Generate returns the lattice for a cell of the given size. Points are
// spaced cellSize/divisor apart, floor(divisor)+1 per axis, ordered by x
// then y. Coordinates are computed from indices so the last column lands
// exactly on the cell edge for integral divisors.
func Generate(cellSize, divisor float64) (Lattice, error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return Lattice{}, errs.New(errs.ErrCodeConfiguration, "cell size must be positive, got %v", cellSize)
	}
	if !(divisor > 0) || math.IsInf(divisor, 0) {
		return Lattice{}, errs.New(errs.ErrCodeConfiguration, "lattice divisor must be positive, got %v", divisor)
	}

	step := cellSize / divisor
	n := int(math.Floor(divisor)) + 1
	pts := make([]Point, 0, n*n)
	for i := 0; i < n; i++ {
		x := float64(i) * step
		for j := 0; j < n; j++ {
			pts = append(pts, Point{X: x, Y: float64(j) * step})
		}
	}
	return Lattice{Points: pts, Step: step, CellSize: cellSize}, nil
}

// Len returns the number of points.
func (l Lattice) Len() int { return len(l.Points) }

// At returns point i.
func (l Lattice) At(i int) Point { return l.Points[i] }
