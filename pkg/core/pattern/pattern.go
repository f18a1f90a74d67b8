// Package pattern generates the set of shapes replayed in every grid cell.
//
// [Generate] samples shapes from a point lattice according to a mode's
// family. Sampling is driven entirely by the given [seed.Stream], so the same
// lattice, mode, count and stream position always yield the same pattern.
//
// The generator keeps drawing candidates until it has the requested number of
// shapes or has spent [MaxAttempts] draws. A candidate is rejected when its
// two defining points coincide or when its family's rule says it does not fit
// the cell. If nothing is accepted the pattern holds a single fallback shape,
// the cell diagonal, so the canvas is never blank.
package pattern

import (
	"math"

	"github.com/matzehuels/gridlock/pkg/core/lattice"
	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/seed"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// MaxAttempts bounds the number of candidates drawn per generation.
const MaxAttempts = 1000

// Pattern is the generated shape set for one cell.
type Pattern struct {
	Shapes   []Shape   `json:"shapes"`
	Angles   []float64 `json:"angles"`
	Fallback bool      `json:"fallback,omitempty"`
	Attempts int       `json:"attempts"`
}

// Len returns the number of shapes.
func (p Pattern) Len() int { return len(p.Shapes) }

// sampler draws one candidate. ok is false when the candidate is rejected.
type sampler func(lat lattice.Lattice, props mode.Properties, cell float64, rng *seed.Stream) (s Shape, ok bool)

var samplers = map[mode.Family]sampler{
	mode.FamilyDefault:       sampleSegment,
	mode.FamilyTriangle:      sampleTriangle,
	mode.FamilyHexagon:       sampleHexagon,
	mode.FamilyDiamond:       sampleDiamond,
	mode.FamilyArc:           sampleArc,
	mode.FamilyParallel:      sampleParallel,
	mode.FamilyQuadrilateral: sampleQuad,
	mode.FamilyCross:         sampleCross,
	mode.FamilyCircles:       sampleRings,
}

// Generate samples up to maxShapes shapes of m's family from lat.
//
// It returns an UNKNOWN_MODE error when m's family has no sampler and an
// INVALID_INPUT error when maxShapes is below 1 or the lattice is empty.
// Running out of attempts is not an error: the result then holds exactly one
// fallback shape and Fallback is set.
func Generate(lat lattice.Lattice, m mode.Mode, maxShapes int, cellSize float64, rng *seed.Stream) (Pattern, error) {
	sample, ok := samplers[m.Family]
	if !ok {
		return Pattern{}, errs.New(errs.ErrCodeUnknownMode, "mode %q has unknown family %q", m.Name, m.Family)
	}
	if maxShapes < 1 {
		return Pattern{}, errs.New(errs.ErrCodeInvalidInput, "max shapes must be at least 1, got %d", maxShapes)
	}
	if lat.Len() == 0 {
		return Pattern{}, errs.New(errs.ErrCodeInvalidInput, "lattice has no points")
	}

	p := Pattern{
		Shapes: make([]Shape, 0, maxShapes),
		Angles: make([]float64, 0, maxShapes),
	}
	for len(p.Shapes) < maxShapes && p.Attempts < MaxAttempts {
		p.Attempts++
		s, ok := sample(lat, m.Properties, cellSize, rng)
		if !ok || s.Start == s.End {
			continue
		}
		p.Shapes = append(p.Shapes, s)
		p.Angles = append(p.Angles, s.Angle)
	}

	if len(p.Shapes) == 0 {
		fb := FallbackShape(cellSize)
		p.Shapes = append(p.Shapes, fb)
		p.Angles = append(p.Angles, fb.Angle)
		p.Fallback = true
	}
	return p, nil
}

// FallbackShape returns the cell diagonal from (0, 0) to (cell, cell).
func FallbackShape(cellSize float64) Shape {
	return Shape{
		Kind:  KindSegment,
		Start: lattice.Point{},
		End:   lattice.Point{X: cellSize, Y: cellSize},
		Angle: 45,
	}
}

func pick(lat lattice.Lattice, rng *seed.Stream) lattice.Point {
	return seed.Pick(rng, lat.Points)
}

func segment(kind Kind, a, b lattice.Point) Shape {
	return Shape{Kind: kind, Start: a, End: b, Angle: Heading(a, b)}
}

func sampleSegment(lat lattice.Lattice, _ mode.Properties, _ float64, rng *seed.Stream) (Shape, bool) {
	a, b := pick(lat, rng), pick(lat, rng)
	return segment(KindSegment, a, b), true
}

func sampleTriangle(lat lattice.Lattice, _ mode.Properties, _ float64, rng *seed.Stream) (Shape, bool) {
	a, b := pick(lat, rng), pick(lat, rng)
	s := segment(KindTriangle, a, b)
	s.Apex = ptr(lattice.Point{X: b.X, Y: a.Y})
	return s, true
}

// sampleHexagon picks a center whose hexagon fits the cell and returns the
// chord between two adjacent vertices.
func sampleHexagon(lat lattice.Lattice, props mode.Properties, cell float64, rng *seed.Stream) (Shape, bool) {
	r := props.HexRadius * cell
	c := pick(lat, rng)
	k := rng.Intn(6)
	if !insideCell(c, r, cell) {
		return Shape{}, false
	}

	verts := make([]lattice.Point, 6)
	for i := range verts {
		verts[i] = polar(c, r, float64(i)*60)
	}
	s := segment(KindHexagon, verts[k], verts[(k+1)%6])
	s.Center = ptr(c)
	s.Radius = r
	s.Vertices = verts
	return s, true
}

// sampleDiamond runs from a random point to the midpoint of two others, with
// the midpoint pushed away from the cell center vertically.
func sampleDiamond(lat lattice.Lattice, props mode.Properties, cell float64, rng *seed.Stream) (Shape, bool) {
	a := pick(lat, rng)
	b, c := pick(lat, rng), pick(lat, rng)
	mid := lattice.Point{X: (b.X + c.X) / 2, Y: (b.Y + c.Y) / 2}
	half := cell / 2
	end := lattice.Point{X: mid.X, Y: clamp(half+(mid.Y-half)*props.DiamondStretch, 0, cell)}

	s := segment(KindDiamond, a, end)
	d := end.Sub(a)
	w := props.DiamondWidth
	center := lattice.Point{X: (a.X + end.X) / 2, Y: (a.Y + end.Y) / 2}
	// Perpendicular of d, scaled by the half-width factor.
	off := lattice.Point{X: -d.Y * w, Y: d.X * w}
	s.Vertices = []lattice.Point{
		a,
		clampPoint(center.Add(off), cell),
		end,
		clampPoint(center.Sub(off), cell),
	}
	return s, true
}

// sampleArc keeps only arcs whose endpoints stay inside the cell.
func sampleArc(lat lattice.Lattice, props mode.Properties, cell float64, rng *seed.Stream) (Shape, bool) {
	c := pick(lat, rng)
	r := rng.Range(props.ArcMinRadius, props.ArcMaxRadius) * cell
	from := rng.Range(0, 360)

	start := polar(c, r, from)
	end := polar(c, r, from+props.ArcSpan)
	if !insideCell(start, 0, cell) || !insideCell(end, 0, cell) {
		return Shape{}, false
	}
	s := segment(KindArc, start, end)
	s.Center = ptr(c)
	s.Radius = r
	s.StartAngle = from
	s.Span = props.ArcSpan
	return s, true
}

// sampleParallel places a full-height bar at a continuous x offset.
func sampleParallel(_ lattice.Lattice, _ mode.Properties, cell float64, rng *seed.Stream) (Shape, bool) {
	x := rng.Range(0, cell)
	return Shape{
		Kind:  KindSegment,
		Start: lattice.Point{X: x, Y: 0},
		End:   lattice.Point{X: x, Y: cell},
		Angle: 90,
	}, true
}

func sampleQuad(lat lattice.Lattice, props mode.Properties, cell float64, rng *seed.Stream) (Shape, bool) {
	a, b := pick(lat, rng), pick(lat, rng)
	off := lattice.Point{X: props.QuadOffsetX * cell, Y: props.QuadOffsetY * cell}
	off.X += off.Y * math.Tan(props.QuadSkew*math.Pi/180)
	s := segment(KindQuad, a, b)
	s.Vertices = []lattice.Point{a, b, clampPoint(b.Add(off), cell), clampPoint(a.Add(off), cell)}
	return s, true
}

// sampleCross centers a plus sign on a lattice point. The bar length is drawn
// between half and all of CrossSize; the bars are a fifth as thick as long.
func sampleCross(lat lattice.Lattice, props mode.Properties, cell float64, rng *seed.Stream) (Shape, bool) {
	c := pick(lat, rng)
	h := rng.Range(0.5, 1) * props.CrossSize * cell / 2
	if !insideCell(c, h, cell) {
		return Shape{}, false
	}

	t := h / 5
	s := segment(KindCross, lattice.Point{X: c.X - h, Y: c.Y}, lattice.Point{X: c.X + h, Y: c.Y})
	s.Center = ptr(c)
	s.Vertices = []lattice.Point{
		{X: c.X - t, Y: c.Y - h}, {X: c.X + t, Y: c.Y - h},
		{X: c.X + t, Y: c.Y - t}, {X: c.X + h, Y: c.Y - t},
		{X: c.X + h, Y: c.Y + t}, {X: c.X + t, Y: c.Y + t},
		{X: c.X + t, Y: c.Y + h}, {X: c.X - t, Y: c.Y + h},
		{X: c.X - t, Y: c.Y + t}, {X: c.X - h, Y: c.Y + t},
		{X: c.X - h, Y: c.Y - t}, {X: c.X - t, Y: c.Y - t},
	}
	return s, true
}

// sampleRings centers a pair of concentric rings on a lattice point. Both
// radii share one scale in [RingInner/RingOuter, 1), so the pair keeps its
// proportions; pairs that leave the cell are rejected.
func sampleRings(lat lattice.Lattice, props mode.Properties, cell float64, rng *seed.Stream) (Shape, bool) {
	c := pick(lat, rng)
	if props.RingOuter <= 0 {
		return Shape{}, false
	}
	k := rng.Range(props.RingInner/props.RingOuter, 1)
	outer := k * props.RingOuter * cell
	if !insideCell(c, outer, cell) {
		return Shape{}, false
	}

	s := segment(KindRings, lattice.Point{X: c.X - outer, Y: c.Y}, lattice.Point{X: c.X + outer, Y: c.Y})
	s.Center = ptr(c)
	s.Radius = outer
	s.InnerRadius = k * props.RingInner * cell
	return s, true
}

func polar(c lattice.Point, r, deg float64) lattice.Point {
	rad := deg * math.Pi / 180
	return lattice.Point{X: c.X + r*math.Cos(rad), Y: c.Y + r*math.Sin(rad)}
}

// insideCell reports whether the disc of radius r around p lies in the cell,
// with a small tolerance for rounding.
func insideCell(p lattice.Point, r, cell float64) bool {
	const eps = 1e-9
	return p.X-r >= -eps && p.Y-r >= -eps && p.X+r <= cell+eps && p.Y+r <= cell+eps
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampPoint(p lattice.Point, cell float64) lattice.Point {
	return lattice.Point{X: clamp(p.X, 0, cell), Y: clamp(p.Y, 0, cell)}
}
