// Package mode defines the shape families and the registry of named modes.
//
// A [Mode] bundles everything that distinguishes one look of the artwork from
// another: which [Family] of shapes the generator samples, how many shapes it
// may place, how fine the candidate lattice is, and the drawing properties
// the renderer applies. Generator and renderer read the same Mode value, so a
// pattern drawn at preview and export resolution always agrees with the rules
// that produced it.
//
// The built-in registry holds ten modes:
//
//	default        two-point strokes on a 4-step lattice
//	triangle       right triangles on a 3-step lattice
//	hexagon        hexagon chords around a random center
//	diamond        rhombi along vertically stretched segments
//	arc            90° arcs of random radius
//	parallel       full-height vertical bars at random offsets
//	quadrilateral  offset parallelograms
//	parallelogram  quadrilaterals sheared by 15°
//	cross          plus signs of random size around lattice points
//	circles        concentric ring pairs around lattice points
//
// Additional modes can be registered over any existing family.
package mode

import (
	"slices"

	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// Family identifies the sampling rule and drawing routine for a mode.
type Family string

// Known families.
const (
	FamilyDefault       Family = "default"
	FamilyTriangle      Family = "triangle"
	FamilyHexagon       Family = "hexagon"
	FamilyDiamond       Family = "diamond"
	FamilyArc           Family = "arc"
	FamilyParallel      Family = "parallel"
	FamilyQuadrilateral Family = "quadrilateral"
	FamilyCross         Family = "cross"
	FamilyCircles       Family = "circles"
)

var families = []Family{
	FamilyDefault, FamilyTriangle, FamilyHexagon, FamilyDiamond,
	FamilyArc, FamilyParallel, FamilyQuadrilateral, FamilyCross, FamilyCircles,
}

// Families returns all known families.
func Families() []Family { return slices.Clone(families) }

// Known reports whether f is a known family.
func (f Family) Known() bool { return slices.Contains(families, f) }

// Properties are the drawing and sampling parameters of a mode. Lengths are
// fractions of the cell size unless noted.
type Properties struct {
	StrokeWidth    float64 `json:"stroke_width" toml:"stroke_width"`       // pixels at preview scale
	Opacity        float64 `json:"opacity" toml:"opacity"`                 // 0..1
	Rotation       float64 `json:"rotation" toml:"rotation"`               // degrees, about the cell center
	HexRadius      float64 `json:"hex_radius" toml:"hex_radius"`
	DiamondStretch float64 `json:"diamond_stretch" toml:"diamond_stretch"` // vertical factor
	DiamondWidth   float64 `json:"diamond_width" toml:"diamond_width"`     // half-width per unit length
	ArcMinRadius   float64 `json:"arc_min_radius" toml:"arc_min_radius"`
	ArcMaxRadius   float64 `json:"arc_max_radius" toml:"arc_max_radius"`
	ArcSpan        float64 `json:"arc_span" toml:"arc_span"` // degrees
	QuadOffsetX    float64 `json:"quad_offset_x" toml:"quad_offset_x"`
	QuadOffsetY    float64 `json:"quad_offset_y" toml:"quad_offset_y"`
	QuadSkew       float64 `json:"quad_skew" toml:"quad_skew"`     // degrees of horizontal shear
	CrossSize      float64 `json:"cross_size" toml:"cross_size"`   // bar length at full size
	RingInner      float64 `json:"ring_inner" toml:"ring_inner"`   // inner radius at full size
	RingOuter      float64 `json:"ring_outer" toml:"ring_outer"`   // outer radius at full size
	Filled         bool    `json:"filled" toml:"filled"`
}

// Mode is a named generation and drawing configuration.
type Mode struct {
	Name           string     `json:"name" toml:"-"`
	Title          string     `json:"title" toml:"title"`
	Family         Family     `json:"family" toml:"family"`
	MaxShapes      int        `json:"max_shapes" toml:"max_shapes"`
	LatticeDivisor float64    `json:"lattice_divisor" toml:"lattice_divisor"`
	Properties     Properties `json:"properties" toml:"properties"`
}

// Validate checks the mode for values the generator cannot work with.
func (m Mode) Validate() error {
	if m.Name == "" {
		return errs.New(errs.ErrCodeConfiguration, "mode name cannot be empty")
	}
	if !m.Family.Known() {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: unknown family %q", m.Name, m.Family)
	}
	if m.MaxShapes < 1 {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: max shapes must be at least 1", m.Name)
	}
	if !(m.LatticeDivisor > 0) {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: lattice divisor must be positive", m.Name)
	}
	p := m.Properties
	if p.StrokeWidth < 0 {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: stroke width cannot be negative", m.Name)
	}
	if p.Opacity < 0 || p.Opacity > 1 {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: opacity must be within [0, 1]", m.Name)
	}
	if m.Family == FamilyArc && (p.ArcMinRadius <= 0 || p.ArcMaxRadius < p.ArcMinRadius) {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: arc radii must satisfy 0 < min <= max", m.Name)
	}
	if m.Family == FamilyHexagon && p.HexRadius <= 0 {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: hex radius must be positive", m.Name)
	}
	if m.Family == FamilyQuadrilateral && (p.QuadSkew <= -90 || p.QuadSkew >= 90) {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: quad skew must be within (-90, 90)", m.Name)
	}
	if m.Family == FamilyCross && (p.CrossSize <= 0 || p.CrossSize > 1) {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: cross size must be within (0, 1]", m.Name)
	}
	if m.Family == FamilyCircles && (p.RingInner <= 0 || p.RingOuter < p.RingInner || p.RingOuter > 0.5) {
		return errs.New(errs.ErrCodeConfiguration, "mode %q: ring radii must satisfy 0 < inner <= outer <= 0.5", m.Name)
	}
	return nil
}

// base returns the properties shared by every built-in mode.
func base() Properties {
	return Properties{StrokeWidth: 2, Opacity: 1}
}

// Template returns the first built-in mode of family f. New modes declared
// over a family start from it.
func Template(f Family) (Mode, bool) {
	for _, m := range Builtins() {
		if m.Family == f {
			return m, true
		}
	}
	return Mode{}, false
}

// Builtins returns the built-in modes in registration order.
func Builtins() []Mode {
	def := base()

	tri := base()
	tri.StrokeWidth = 3
	tri.Opacity = 0.8
	tri.Rotation = 45
	tri.Filled = true

	hex := base()
	hex.HexRadius = 0.3

	dia := base()
	dia.DiamondStretch = 1.5
	dia.DiamondWidth = 0.25
	dia.Filled = true

	arc := base()
	arc.ArcMinRadius = 0.2
	arc.ArcMaxRadius = 0.4
	arc.ArcSpan = 90

	par := base()
	par.StrokeWidth = 3

	quad := base()
	quad.QuadOffsetX = 0.2
	quad.QuadOffsetY = 0.1
	quad.Filled = true

	skew := base()
	skew.Opacity = 0.9
	skew.QuadOffsetY = 0.25
	skew.QuadSkew = 15

	cross := base()
	cross.Opacity = 0.9
	cross.CrossSize = 0.7

	rings := base()
	rings.Opacity = 0.85
	rings.RingInner = 0.2
	rings.RingOuter = 0.4

	return []Mode{
		{Name: "default", Title: "Default", Family: FamilyDefault, MaxShapes: 5, LatticeDivisor: 4, Properties: def},
		{Name: "triangle", Title: "Triangle", Family: FamilyTriangle, MaxShapes: 7, LatticeDivisor: 3, Properties: tri},
		{Name: "hexagon", Title: "Hexagon", Family: FamilyHexagon, MaxShapes: 4, LatticeDivisor: 3, Properties: hex},
		{Name: "diamond", Title: "Diamond", Family: FamilyDiamond, MaxShapes: 5, LatticeDivisor: 4, Properties: dia},
		{Name: "arc", Title: "Arc", Family: FamilyArc, MaxShapes: 3, LatticeDivisor: 4, Properties: arc},
		{Name: "parallel", Title: "Parallel", Family: FamilyParallel, MaxShapes: 5, LatticeDivisor: 6, Properties: par},
		{Name: "quadrilateral", Title: "Quadrilateral", Family: FamilyQuadrilateral, MaxShapes: 5, LatticeDivisor: 3, Properties: quad},
		{Name: "parallelogram", Title: "Parallelogram", Family: FamilyQuadrilateral, MaxShapes: 5, LatticeDivisor: 3, Properties: skew},
		{Name: "cross", Title: "Cross", Family: FamilyCross, MaxShapes: 4, LatticeDivisor: 3, Properties: cross},
		{Name: "circles", Title: "Circles", Family: FamilyCircles, MaxShapes: 3, LatticeDivisor: 4, Properties: rings},
	}
}
