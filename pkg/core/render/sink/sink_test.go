package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/render"
)

func testSnapshot(t *testing.T, modeName string) artwork.Snapshot {
	t.Helper()
	art, err := artwork.New(artwork.Settings{
		Seed:   "0x822b8fec20",
		Mode:   modeName,
		Width:  200,
		Height: 220,
		Cols:   4,
		Rows:   4,
	}, nil)
	if err != nil {
		t.Fatalf("artwork.New: %v", err)
	}
	return art.Current()
}

func TestRenderPNGSize(t *testing.T) {
	snap := testSnapshot(t, "default")

	tests := []struct {
		name  string
		frame render.Frame
		w, h  int
	}{
		{"preview", render.PreviewFrame(snap, render.DefaultStyle()), 200, 220},
		{"export", render.ExportFrame(snap, 400, render.DefaultStyle()), 400, 440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(tt.frame)
			if err != nil {
				t.Fatalf("RenderPNG: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestRenderPNGBackground(t *testing.T) {
	snap := testSnapshot(t, "default")
	data, err := RenderPNG(render.PreviewFrame(snap, render.DefaultStyle()))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	// The top-left corner lies in the padding.
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 40 || g>>8 != 40 || b>>8 != 40 {
		t.Errorf("corner = (%d,%d,%d), want grey 40", r>>8, g>>8, b>>8)
	}
}

func TestRenderSVG(t *testing.T) {
	for _, name := range []string{"default", "triangle", "hexagon", "diamond", "arc", "parallel", "quadrilateral", "parallelogram", "cross", "circles"} {
		t.Run(name, func(t *testing.T) {
			snap := testSnapshot(t, name)
			data, err := RenderSVG(render.ExportFrame(snap, 400, render.DefaultStyle()))
			if err != nil {
				t.Fatalf("RenderSVG: %v", err)
			}
			out := string(data)
			for _, want := range []string{"<svg", `width="400"`, `height="440"`, "seed: 0x822b8fec20", "GRI", "LOCK", "</svg>"} {
				if !strings.Contains(out, want) {
					t.Errorf("SVG missing %q", want)
				}
			}
			if n := strings.Count(out, "<path"); n < snap.Layout.Cols*snap.Layout.Rows {
				t.Errorf("SVG has %d paths, want at least one per cell", n)
			}
		})
	}
}

func TestRenderSVGOpacity(t *testing.T) {
	snap := testSnapshot(t, "triangle")
	data, err := RenderSVG(render.PreviewFrame(snap, render.DefaultStyle()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "rgba(") {
		t.Error("triangle mode should draw translucent shapes")
	}
}

func TestRenderSVGFontFamily(t *testing.T) {
	snap := testSnapshot(t, "default")
	data, err := RenderSVG(render.PreviewFrame(snap, render.DefaultStyle()), WithFontFamily("monospace"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "font-family:monospace") {
		t.Error("font family option not applied")
	}
}

func TestRenderJSON(t *testing.T) {
	snap := testSnapshot(t, "default")
	data, err := RenderJSON(render.ExportFrame(snap, 400, render.DefaultStyle()))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var doc struct {
		Seed   string            `json:"seed"`
		Mode   string            `json:"mode"`
		Shapes []json.RawMessage `json:"shapes"`
		Colors []string          `json:"colors"`
		Layout struct {
			Width float64 `json:"width"`
		} `json:"layout"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Seed != "0x822b8fec20" || doc.Mode != "default" {
		t.Errorf("header = %s/%s", doc.Seed, doc.Mode)
	}
	if len(doc.Shapes) != len(doc.Colors) || len(doc.Shapes) == 0 {
		t.Errorf("shapes = %d, colors = %d", len(doc.Shapes), len(doc.Colors))
	}
	if doc.Layout.Width != 200 {
		t.Errorf("layout width = %v, want preview width 200", doc.Layout.Width)
	}
}

func TestCSSColor(t *testing.T) {
	if got := cssColor(render.DefaultBackground); got != "rgb(40,40,40)" {
		t.Errorf("cssColor(grey) = %q", got)
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		1.5:     "1.5",
		84:      "84",
		10.25:   "10.25",
		-2.5:    "-2.5",
		3.14159: "3.14",
		-0.001:  "0",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}
