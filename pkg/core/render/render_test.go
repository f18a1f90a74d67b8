package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
)

// recorder is a Surface that logs every call. Lengths are collected
// separately so two recordings can be compared up to scale.
type recorder struct {
	ops     []string
	lengths []float64
	texts   []string
	fills   int
	strokes int
	depth   int
}

func (r *recorder) op(name string, lengths ...float64) {
	r.ops = append(r.ops, name)
	r.lengths = append(r.lengths, lengths...)
}

func (r *recorder) Push() { r.depth++; r.op("push") }
func (r *recorder) Pop()  { r.depth--; r.op("pop") }

func (r *recorder) Translate(x, y float64) { r.op("translate", x, y) }
func (r *recorder) Rotate(a float64)       { r.op(fmt.Sprintf("rotate %.6f", a)) }
func (r *recorder) Scale(sx, sy float64)   { r.op(fmt.Sprintf("scale %v %v", sx, sy)) }

func (r *recorder) SetColor(c color.Color) {
	cr, cg, cb, ca := c.RGBA()
	r.op(fmt.Sprintf("color %d %d %d %d", cr>>8, cg>>8, cb>>8, ca>>8))
}
func (r *recorder) SetLineWidth(w float64) { r.op("width", w) }
func (r *recorder) MoveTo(x, y float64)    { r.op("move", x, y) }
func (r *recorder) LineTo(x, y float64)    { r.op("line", x, y) }
func (r *recorder) ClosePath()             { r.op("close") }
func (r *recorder) Fill() error            { r.fills++; r.op("fill"); return nil }
func (r *recorder) Stroke() error          { r.strokes++; r.op("stroke"); return nil }
func (r *recorder) Clear(color.Color)      { r.op("clear") }

func (r *recorder) Text(s string, x, y, size, ax, ay float64) error {
	r.texts = append(r.texts, s)
	r.op(fmt.Sprintf("text %q %v %v", s, ax, ay), x, y, size)
	return nil
}

func snapshot(t *testing.T, mode string) artwork.Snapshot {
	t.Helper()
	a, err := artwork.New(artwork.Settings{Seed: "0x822b8fec20", Mode: mode}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return a.Current()
}

func TestScaleEquivalence(t *testing.T) {
	for _, mode := range []string{"default", "triangle", "hexagon", "diamond", "arc", "parallel", "quadrilateral", "parallelogram", "cross", "circles"} {
		t.Run(mode, func(t *testing.T) {
			snap := snapshot(t, mode)

			var preview, export recorder
			if err := Draw(&preview, PreviewFrame(snap, DefaultStyle())); err != nil {
				t.Fatal(err)
			}
			if err := Draw(&export, ExportFrame(snap, 4000, DefaultStyle())); err != nil {
				t.Fatal(err)
			}

			if strings.Join(preview.ops, "\n") != strings.Join(export.ops, "\n") {
				t.Fatal("preview and export issue different drawing operations")
			}
			if len(preview.lengths) != len(export.lengths) {
				t.Fatalf("length count %d vs %d", len(preview.lengths), len(export.lengths))
			}
			for i, v := range preview.lengths {
				if want := 4 * v; math.Abs(export.lengths[i]-want) > 1e-6*math.Max(1, math.Abs(want)) {
					t.Fatalf("length %d: export %v, want 4 × %v", i, export.lengths[i], v)
				}
			}
		})
	}
}

func TestDrawStructure(t *testing.T) {
	snap := snapshot(t, "default")
	var r recorder
	if err := Draw(&r, PreviewFrame(snap, DefaultStyle())); err != nil {
		t.Fatal(err)
	}

	if r.depth != 0 {
		t.Errorf("unbalanced push/pop, depth %d", r.depth)
	}
	if r.ops[0] != "clear" {
		t.Errorf("first op = %q, want clear", r.ops[0])
	}

	cells := snap.Layout.Cols * snap.Layout.Rows
	// One stroke per shape per cell, the signature line and the mirrored D.
	if want := cells*snap.Pattern.Len() + 2; r.strokes != want {
		t.Errorf("strokes = %d, want %d", r.strokes, want)
	}
	if r.fills != len(snap.Colors) {
		t.Errorf("fills = %d, want one cube per color (%d)", r.fills, len(snap.Colors))
	}

	want := []string{"GRI", "LOCK", "seed: 0x822b8fec20"}
	if strings.Join(r.texts, "|") != strings.Join(want, "|") {
		t.Errorf("texts = %v, want %v", r.texts, want)
	}
}

func TestCustomTitle(t *testing.T) {
	snap := snapshot(t, "default")
	style := DefaultStyle()
	style.Title = "GP // 1017"

	var r recorder
	if err := Draw(&r, PreviewFrame(snap, style)); err != nil {
		t.Fatal(err)
	}
	if r.texts[0] != "GP // 1017" || len(r.texts) != 2 {
		t.Errorf("texts = %v", r.texts)
	}
}

func TestRotationAboutCellCenter(t *testing.T) {
	snap := snapshot(t, "triangle")
	var r recorder
	if err := Draw(&r, PreviewFrame(snap, DefaultStyle())); err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, op := range r.ops {
		if op == fmt.Sprintf("rotate %.6f", math.Pi/4) {
			found = true
			break
		}
	}
	if !found {
		t.Error("triangle mode should rotate cells by 45°")
	}
}

func TestShapeColorOpacity(t *testing.T) {
	snap := snapshot(t, "default")
	c := shapeColor(snap.Colors, 0, 0.8).(color.NRGBA)
	if c.A != 204 {
		t.Errorf("alpha = %d, want 204", c.A)
	}
	if c := shapeColor(nil, 0, 1).(color.NRGBA); c.A != 255 {
		t.Errorf("empty palette alpha = %d", c.A)
	}
}

func TestFrames(t *testing.T) {
	snap := snapshot(t, "default")

	f := ExportFrame(snap, 4000, Style{})
	if f.Scale != 4 {
		t.Errorf("Scale = %v, want 4", f.Scale)
	}
	if w, h := f.Size(); w != 4000 || h != 4400 {
		t.Errorf("Size() = %dx%d, want 4000x4400", w, h)
	}
	if f.Style.Title != DefaultTitle || f.Style.Background == nil {
		t.Error("zero style should be filled with defaults")
	}

	if p := PreviewFrame(snap, DefaultStyle()); p.Scale != 1 || p.Layout != snap.Layout {
		t.Error("preview frame should use the snapshot layout")
	}
}
