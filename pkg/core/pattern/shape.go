package pattern

import (
	"math"

	"github.com/matzehuels/gridlock/pkg/core/lattice"
)

// Kind discriminates shape descriptors.
type Kind string

// Shape kinds.
const (
	KindSegment  Kind = "segment"
	KindTriangle Kind = "triangle"
	KindHexagon  Kind = "hexagon"
	KindDiamond  Kind = "diamond"
	KindArc      Kind = "arc"
	KindQuad     Kind = "quad"
	KindCross    Kind = "cross"
	KindRings    Kind = "rings"
)

// Shape is one generated primitive in cell-local coordinates.
//
// Start and End are the two defining points every kind carries; Angle is the
// heading from Start to End. The remaining fields are only set for the kinds
// that need them.
type Shape struct {
	Kind  Kind          `json:"kind"`
	Start lattice.Point `json:"start"`
	End   lattice.Point `json:"end"`
	Angle float64       `json:"angle"`

	Apex        *lattice.Point  `json:"apex,omitempty"`   // triangle
	Center      *lattice.Point  `json:"center,omitempty"` // hexagon, arc, cross, rings
	Radius      float64         `json:"radius,omitempty"` // hexagon, arc, outer ring
	InnerRadius float64         `json:"inner_radius,omitempty"`
	StartAngle  float64         `json:"start_angle,omitempty"`
	Span        float64         `json:"span,omitempty"`
	Vertices    []lattice.Point `json:"vertices,omitempty"` // hexagon, diamond, quad, cross outline
}

// HasArc reports whether the shape carries usable arc geometry. Arc shapes
// without it are drawn as plain segments.
func (s Shape) HasArc() bool {
	return s.Kind == KindArc && s.Center != nil && s.Radius > 0
}

// Scaled returns a copy with every length multiplied by k. Angles are kept.
func (s Shape) Scaled(k float64) Shape {
	out := s
	out.Start = s.Start.Scale(k)
	out.End = s.End.Scale(k)
	out.Radius = s.Radius * k
	out.InnerRadius = s.InnerRadius * k
	if s.Apex != nil {
		p := s.Apex.Scale(k)
		out.Apex = &p
	}
	if s.Center != nil {
		p := s.Center.Scale(k)
		out.Center = &p
	}
	if s.Vertices != nil {
		out.Vertices = make([]lattice.Point, len(s.Vertices))
		for i, v := range s.Vertices {
			out.Vertices[i] = v.Scale(k)
		}
	}
	return out
}

// Heading returns atan2(dy, dx) from a to b in degrees.
func Heading(a, b lattice.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

func ptr(p lattice.Point) *lattice.Point { return &p }
