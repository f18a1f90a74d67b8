package mode

import (
	"slices"
	"testing"

	errs "github.com/matzehuels/gridlock/pkg/errors"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name      string
		family    Family
		maxShapes int
		divisor   float64
	}{
		{"default", FamilyDefault, 5, 4},
		{"triangle", FamilyTriangle, 7, 3},
		{"hexagon", FamilyHexagon, 4, 3},
		{"diamond", FamilyDiamond, 5, 4},
		{"arc", FamilyArc, 3, 4},
		{"parallel", FamilyParallel, 5, 6},
		{"quadrilateral", FamilyQuadrilateral, 5, 3},
		{"parallelogram", FamilyQuadrilateral, 5, 3},
		{"cross", FamilyCross, 4, 3},
		{"circles", FamilyCircles, 3, 4},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.name, err)
			}
			if m.Family != tt.family {
				t.Errorf("Family = %q, want %q", m.Family, tt.family)
			}
			if m.MaxShapes != tt.maxShapes {
				t.Errorf("MaxShapes = %d, want %d", m.MaxShapes, tt.maxShapes)
			}
			if m.LatticeDivisor != tt.divisor {
				t.Errorf("LatticeDivisor = %v, want %v", m.LatticeDivisor, tt.divisor)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("spiral")
	if !errs.IsUnknownMode(err) {
		t.Errorf("Lookup(spiral) error = %v, want UNKNOWN_MODE", err)
	}
}

func TestNamesOrder(t *testing.T) {
	want := []string{"default", "triangle", "hexagon", "diamond", "arc", "parallel", "quadrilateral", "parallelogram", "cross", "circles"}
	if got := Default().Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNext(t *testing.T) {
	r := Default()
	if got := r.Next("default"); got != "triangle" {
		t.Errorf("Next(default) = %q, want triangle", got)
	}
	if got := r.Next("quadrilateral"); got != "parallelogram" {
		t.Errorf("Next(quadrilateral) = %q, want parallelogram", got)
	}
	if got := r.Next("circles"); got != "default" {
		t.Errorf("Next(circles) = %q, want default (wrap)", got)
	}
	if got := r.Next("missing"); got != "default" {
		t.Errorf("Next(missing) = %q, want default", got)
	}
	if got := NewRegistry().Next("default"); got != "" {
		t.Errorf("empty registry Next() = %q, want empty", got)
	}
}

func TestRegisterOverride(t *testing.T) {
	r := Default()
	m, _ := r.Lookup("arc")
	m.Properties.ArcSpan = 180
	if err := r.Register(m); err != nil {
		t.Fatal(err)
	}
	got, _ := r.Lookup("arc")
	if got.Properties.ArcSpan != 180 {
		t.Errorf("ArcSpan = %v, want 180", got.Properties.ArcSpan)
	}
	if len(r.Names()) != len(Builtins()) {
		t.Errorf("override should not add a name, got %v", r.Names())
	}

	custom := Mode{Name: "dense", Family: FamilyDefault, MaxShapes: 9, LatticeDivisor: 8, Properties: base()}
	if err := r.Register(custom); err != nil {
		t.Fatal(err)
	}
	if r.Next("circles") != "dense" {
		t.Error("new mode should be appended to the cycle")
	}
}

func TestValidate(t *testing.T) {
	ok := Mode{Name: "x", Family: FamilyDefault, MaxShapes: 1, LatticeDivisor: 1, Properties: base()}
	tests := []struct {
		name   string
		mutate func(*Mode)
	}{
		{"empty name", func(m *Mode) { m.Name = "" }},
		{"unknown family", func(m *Mode) { m.Family = "spiral" }},
		{"zero shapes", func(m *Mode) { m.MaxShapes = 0 }},
		{"zero divisor", func(m *Mode) { m.LatticeDivisor = 0 }},
		{"negative stroke", func(m *Mode) { m.Properties.StrokeWidth = -1 }},
		{"opacity above one", func(m *Mode) { m.Properties.Opacity = 1.5 }},
		{"arc radii reversed", func(m *Mode) {
			m.Family = FamilyArc
			m.Properties.ArcMinRadius, m.Properties.ArcMaxRadius = 0.4, 0.2
		}},
		{"hex without radius", func(m *Mode) { m.Family = FamilyHexagon }},
		{"quad skew at 90", func(m *Mode) {
			m.Family = FamilyQuadrilateral
			m.Properties.QuadSkew = 90
		}},
		{"cross without size", func(m *Mode) { m.Family = FamilyCross }},
		{"cross larger than cell", func(m *Mode) {
			m.Family = FamilyCross
			m.Properties.CrossSize = 1.2
		}},
		{"ring radii reversed", func(m *Mode) {
			m.Family = FamilyCircles
			m.Properties.RingInner, m.Properties.RingOuter = 0.4, 0.2
		}},
		{"outer ring past the cell", func(m *Mode) {
			m.Family = FamilyCircles
			m.Properties.RingInner, m.Properties.RingOuter = 0.2, 0.6
		}},
	}

	if err := ok.Validate(); err != nil {
		t.Fatalf("valid mode rejected: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ok
			tt.mutate(&m)
			if err := m.Validate(); !errs.IsConfiguration(err) {
				t.Errorf("Validate() = %v, want configuration error", err)
			}
		})
	}
}

func TestFamilies(t *testing.T) {
	for _, f := range Families() {
		if !f.Known() {
			t.Errorf("%q should be known", f)
		}
	}
	if Family("spiral").Known() {
		t.Error("spiral should not be known")
	}
}

func TestTemplate(t *testing.T) {
	for _, f := range Families() {
		m, ok := Template(f)
		if !ok {
			t.Errorf("Template(%s) missing", f)
			continue
		}
		if m.Family != f {
			t.Errorf("Template(%s).Family = %s", f, m.Family)
		}
	}
	if _, ok := Template("spiral"); ok {
		t.Error("Template(spiral) should not exist")
	}
}
