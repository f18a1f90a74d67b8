package pattern

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/gridlock/pkg/core/lattice"
	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/seed"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

const cell = 84.0

func generate(t *testing.T, modeName, s string, n int) Pattern {
	t.Helper()
	m, err := mode.Default().Lookup(modeName)
	if err != nil {
		t.Fatal(err)
	}
	lat, err := lattice.Generate(cell, m.LatticeDivisor)
	if err != nil {
		t.Fatal(err)
	}
	p, err := Generate(lat, m, n, cell, seed.NewStream(seed.MustParse(s)))
	if err != nil {
		t.Fatalf("Generate(%s) error: %v", modeName, err)
	}
	return p
}

func TestGenerateDeterministic(t *testing.T) {
	for _, name := range mode.Default().Names() {
		t.Run(name, func(t *testing.T) {
			a := generate(t, name, "0x822b8fec20", 5)
			b := generate(t, name, "0x822b8fec20", 5)
			if !reflect.DeepEqual(a, b) {
				t.Error("same seed and mode produced different patterns")
			}
		})
	}
}

func TestGenerateProperties(t *testing.T) {
	seeds := []string{"0x822b8fec20", "0xc3f7f484d5", "0x9b8d5a395d", "0x0000000000", "0xffffffffff"}
	for _, name := range mode.Default().Names() {
		for _, s := range seeds {
			for _, n := range []int{1, 5, 9} {
				p := generate(t, name, s, n)

				if p.Len() == 0 {
					t.Fatalf("%s/%s/%d: empty pattern", name, s, n)
				}
				if p.Len() > n {
					t.Errorf("%s/%s/%d: %d shapes exceeds bound", name, s, n, p.Len())
				}
				if len(p.Angles) != p.Len() {
					t.Errorf("%s/%s/%d: %d angles for %d shapes", name, s, n, len(p.Angles), p.Len())
				}
				if p.Attempts > MaxAttempts {
					t.Errorf("%s/%s/%d: %d attempts exceeds budget", name, s, n, p.Attempts)
				}
				for i, sh := range p.Shapes {
					if !p.Fallback && sh.Start == sh.End {
						t.Errorf("%s/%s/%d: shape %d is degenerate", name, s, n, i)
					}
					if want := Heading(sh.Start, sh.End); math.Abs(p.Angles[i]-want) > 1e-9 {
						t.Errorf("%s/%s/%d: angle %v, want %v", name, s, n, p.Angles[i], want)
					}
					for _, pt := range append([]lattice.Point{sh.Start, sh.End}, sh.Vertices...) {
						if !insideCell(pt, 0, cell) {
							t.Errorf("%s/%s/%d: shape %d point %+v outside cell", name, s, n, i, pt)
						}
					}
				}
			}
		}
	}
}

func TestGenerateFamilies(t *testing.T) {
	tests := []struct {
		mode  string
		kinds []Kind
		check func(t *testing.T, s Shape)
	}{
		{"default", []Kind{KindSegment}, nil},
		{"triangle", []Kind{KindTriangle}, func(t *testing.T, s Shape) {
			if s.Apex == nil || *s.Apex != (lattice.Point{X: s.End.X, Y: s.Start.Y}) {
				t.Errorf("apex = %v, want (end.x, start.y)", s.Apex)
			}
		}},
		{"hexagon", []Kind{KindHexagon}, func(t *testing.T, s Shape) {
			if len(s.Vertices) != 6 || s.Center == nil {
				t.Fatalf("hexagon needs center and 6 vertices, got %+v", s)
			}
			chord := math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
			if math.Abs(chord-s.Radius) > 1e-9 {
				t.Errorf("adjacent chord %v, want radius %v", chord, s.Radius)
			}
		}},
		{"diamond", []Kind{KindDiamond}, func(t *testing.T, s Shape) {
			if len(s.Vertices) != 4 {
				t.Errorf("diamond has %d vertices, want 4", len(s.Vertices))
			}
		}},
		{"arc", []Kind{KindArc, KindSegment}, func(t *testing.T, s Shape) {
			if s.Kind == KindSegment {
				return
			}
			if !s.HasArc() {
				t.Fatal("arc without geometry")
			}
			if s.Radius < 0.2*cell || s.Radius >= 0.4*cell {
				t.Errorf("radius %v outside [0.2, 0.4)·cell", s.Radius)
			}
			if s.Span != 90 {
				t.Errorf("span = %v, want 90", s.Span)
			}
		}},
		{"parallel", []Kind{KindSegment}, func(t *testing.T, s Shape) {
			if s.Start.X != s.End.X || s.Start.Y != 0 || s.End.Y != cell || s.Angle != 90 {
				t.Errorf("parallel bar %+v is not a full-height vertical", s)
			}
		}},
		{"quadrilateral", []Kind{KindQuad}, func(t *testing.T, s Shape) {
			if len(s.Vertices) != 4 || s.Vertices[0] != s.Start || s.Vertices[1] != s.End {
				t.Errorf("quad vertices %+v should start with start and end", s.Vertices)
			}
		}},
		{"parallelogram", []Kind{KindQuad}, func(t *testing.T, s Shape) {
			if len(s.Vertices) != 4 {
				t.Errorf("parallelogram has %d vertices, want 4", len(s.Vertices))
			}
		}},
		{"cross", []Kind{KindCross}, func(t *testing.T, s Shape) {
			if len(s.Vertices) != 12 || s.Center == nil {
				t.Fatalf("cross needs center and 12 vertices, got %+v", s)
			}
			h := (s.End.X - s.Start.X) / 2
			if h < 0.35*cell/2 || h >= 0.7*cell/2 {
				t.Errorf("half bar %v outside [0.35, 0.7)·cell/2", h)
			}
			v := s.Vertices[0]
			if math.Abs(v.X-(s.Center.X-h/5)) > 1e-9 || math.Abs(v.Y-(s.Center.Y-h)) > 1e-9 {
				t.Errorf("cross outline starts at %+v", v)
			}
		}},
		{"circles", []Kind{KindRings}, func(t *testing.T, s Shape) {
			if s.Center == nil {
				t.Fatal("rings without center")
			}
			if s.Radius < 0.2*cell || s.Radius >= 0.4*cell {
				t.Errorf("outer radius %v outside [0.2, 0.4)·cell", s.Radius)
			}
			if math.Abs(s.InnerRadius-s.Radius/2) > 1e-9 {
				t.Errorf("inner radius %v, want half of %v", s.InnerRadius, s.Radius)
			}
			if !insideCell(*s.Center, s.Radius, cell) {
				t.Errorf("rings at %+v radius %v leave the cell", *s.Center, s.Radius)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			p := generate(t, tt.mode, "0x822b8fec20", 9)
			for _, s := range p.Shapes {
				if !containsKind(tt.kinds, s.Kind) {
					t.Errorf("unexpected kind %q", s.Kind)
				}
				if tt.check != nil {
					tt.check(t, s)
				}
			}
		})
	}
}

func TestParallelOffsets(t *testing.T) {
	for _, s := range []string{"0x822b8fec20", "0xc3f7f484d5", "0x9b8d5a395d", "0x0000000000"} {
		p := generate(t, "parallel", s, 9)
		if p.Len() != 9 {
			t.Fatalf("%s: %d bars, want 9", s, p.Len())
		}
		seen := make(map[float64]bool)
		for _, sh := range p.Shapes {
			x := sh.Start.X
			if x < 0 || x >= cell {
				t.Errorf("%s: bar at x=%v outside [0, cell)", s, x)
			}
			if seen[x] {
				t.Errorf("%s: two bars share x=%v", s, x)
			}
			seen[x] = true
		}
	}
}

func TestQuadSkew(t *testing.T) {
	m, err := mode.Default().Lookup("parallelogram")
	if err != nil {
		t.Fatal(err)
	}
	shear := m.Properties.QuadOffsetY * cell * math.Tan(m.Properties.QuadSkew*math.Pi/180)
	if shear == 0 {
		t.Fatal("parallelogram mode has no shear")
	}
	off := lattice.Point{X: m.Properties.QuadOffsetX*cell + shear, Y: m.Properties.QuadOffsetY * cell}

	p := generate(t, "parallelogram", "0x822b8fec20", 5)
	for i, s := range p.Shapes {
		for j, base := range map[int]lattice.Point{2: s.End, 3: s.Start} {
			want := clampPoint(base.Add(off), cell)
			got := s.Vertices[j]
			if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
				t.Errorf("shape %d vertex %d = %+v, want %+v", i, j, got, want)
			}
		}
	}
}

func TestGenerateFallback(t *testing.T) {
	m, _ := mode.Default().Lookup("default")
	// A divisor below 1 leaves a single point, so no two points can differ.
	lat, err := lattice.Generate(cell, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if lat.Len() != 1 {
		t.Fatalf("lattice has %d points, want 1", lat.Len())
	}

	p, err := Generate(lat, m, 5, cell, seed.NewStream(seed.MustParse("0x822b8fec20")))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 || !p.Fallback {
		t.Fatalf("got %d shapes (fallback=%v), want exactly one fallback", p.Len(), p.Fallback)
	}
	if p.Attempts != MaxAttempts {
		t.Errorf("Attempts = %d, want %d", p.Attempts, MaxAttempts)
	}
	if fb := p.Shapes[0]; !reflect.DeepEqual(fb, FallbackShape(cell)) || p.Angles[0] != 45 {
		t.Errorf("fallback = %+v at %v°", fb, p.Angles[0])
	}
}

func TestGenerateErrors(t *testing.T) {
	lat, _ := lattice.Generate(cell, 4)
	rng := seed.NewStream(seed.MustParse("0x822b8fec20"))

	_, err := Generate(lat, mode.Mode{Name: "spiral", Family: "spiral"}, 5, cell, rng)
	if !errs.IsUnknownMode(err) {
		t.Errorf("unknown family error = %v, want UNKNOWN_MODE", err)
	}

	m, _ := mode.Default().Lookup("default")
	if _, err := Generate(lat, m, 0, cell, rng); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("zero count error = %v, want INVALID_INPUT", err)
	}
	if _, err := Generate(lattice.Lattice{}, m, 5, cell, rng); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("empty lattice error = %v, want INVALID_INPUT", err)
	}
}

func TestScaled(t *testing.T) {
	for _, name := range mode.Default().Names() {
		p := generate(t, name, "0xc3f7f484d5", 5)
		for _, s := range p.Shapes {
			got := s.Scaled(4)
			if got.Start != s.Start.Scale(4) || got.End != s.End.Scale(4) {
				t.Errorf("%s: endpoints not scaled", name)
			}
			if got.Radius != s.Radius*4 || got.Angle != s.Angle {
				t.Errorf("%s: radius/angle mismatch", name)
			}
			for i, v := range s.Vertices {
				if got.Vertices[i] != v.Scale(4) {
					t.Errorf("%s: vertex %d not scaled", name, i)
				}
			}
			if s.Center != nil && *got.Center != s.Center.Scale(4) {
				t.Errorf("%s: center not scaled", name)
			}
		}
	}
}

func TestHasArc(t *testing.T) {
	c := lattice.Point{X: 10, Y: 10}
	tests := []struct {
		name string
		s    Shape
		want bool
	}{
		{"complete", Shape{Kind: KindArc, Center: &c, Radius: 5}, true},
		{"no center", Shape{Kind: KindArc, Radius: 5}, false},
		{"zero radius", Shape{Kind: KindArc, Center: &c}, false},
		{"not an arc", Shape{Kind: KindHexagon, Center: &c, Radius: 5}, false},
	}
	for _, tt := range tests {
		if got := tt.s.HasArc(); got != tt.want {
			t.Errorf("%s: HasArc() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}
