package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/palette"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	def := Default()
	if cfg.Seed != def.Seed || cfg.Mode != def.Mode || cfg.Grid != def.Grid {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
}

func TestDecodePartial(t *testing.T) {
	in := `
seed = "0x822b8fec20"
mode = "hexagon"
shapes = 3
formats = ["png", "svg"]

[canvas]
export_width = 8000
background = "#101010"

[grid]
cols = 8

[signature]
vertical_offset = -35

[cache]
backend = "redis"
ttl = "72h"
`
	cfg, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	def := Default()
	if cfg.Seed != "0x822b8fec20" || cfg.Mode != "hexagon" || cfg.Shapes != 3 {
		t.Errorf("top-level = %s/%s/%d", cfg.Seed, cfg.Mode, cfg.Shapes)
	}
	if !slices.Equal(cfg.Formats, []string{"png", "svg"}) {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if cfg.Canvas.ExportWidth != 8000 || cfg.Canvas.ExportHeight != def.Canvas.ExportHeight {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if cfg.Grid.Cols != 8 || cfg.Grid.Rows != def.Grid.Rows {
		t.Errorf("grid = %+v, rows should keep the default", cfg.Grid)
	}
	if cfg.Signature.VerticalOffset != -35 || cfg.Signature.TextSize != def.Signature.TextSize {
		t.Errorf("signature = %+v", cfg.Signature)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.TTL.Duration != 72*time.Hour {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Padding != def.Padding {
		t.Errorf("padding = %+v, want default", cfg.Padding)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", `seed = `},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"bad background", "[canvas]\nbackground = \"grey\""},
		{"bad format", `formats = ["gif"]`},
		{"bad ttl", "[cache]\nttl = \"soon\""},
		{"empty theme", "[[themes]]\nname = \"Empty\"\ncolors = []"},
		{"traversal", `output_dir = "../prints"`},
		{"mode without family", "[modes.spiral]\nmax_shapes = 3"},
		{"mode unknown family", "[modes.spiral]\nfamily = \"spiral\""},
		{"mode invalid", "[modes.default]\nmax_shapes = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("Decode should fail")
			}
			if !errs.IsConfiguration(err) {
				t.Errorf("error should be a configuration error, got %v", err)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("mode = [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errs.IsConfiguration(err) {
		t.Errorf("Load(malformed) = %v, want configuration error", err)
	}
}

func TestModeOverrides(t *testing.T) {
	in := `
[modes.arc]
max_shapes = 6
properties = { arc_span = 180 }

[modes.bigarc]
family = "arc"
properties = { arc_min_radius = 0.3, arc_max_radius = 0.5 }
`
	cfg, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(cfg.ModeOverrides) != 2 {
		t.Fatalf("ModeOverrides = %d, want 2", len(cfg.ModeOverrides))
	}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}

	arc, err := reg.Lookup("arc")
	if err != nil {
		t.Fatal(err)
	}
	if arc.MaxShapes != 6 || arc.Properties.ArcSpan != 180 {
		t.Errorf("arc override = %+v", arc)
	}
	if arc.Properties.ArcMinRadius != 0.2 || arc.LatticeDivisor != 4 {
		t.Errorf("unset keys should keep built-in values, got %+v", arc)
	}

	big, err := reg.Lookup("bigarc")
	if err != nil {
		t.Fatal(err)
	}
	if big.Family != mode.FamilyArc || big.Properties.ArcMaxRadius != 0.5 || big.MaxShapes != 3 {
		t.Errorf("bigarc = %+v", big)
	}

	names := reg.Names()
	if names[len(names)-1] != "bigarc" {
		t.Errorf("new modes should be appended, got %v", names)
	}
}

func TestUnknownKeys(t *testing.T) {
	cfg, err := Decode(strings.NewReader("colour = \"red\"\n[grid]\ncolumns = 3"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(cfg.Unknown, "colour") || !slices.Contains(cfg.Unknown, "grid.columns") {
		t.Errorf("Unknown = %v", cfg.Unknown)
	}
}

func TestPaletteThemes(t *testing.T) {
	in := `
[[themes]]
name = "Mono"
colors = ["#111111", "#eeeeee"]

[[themes]]
name = "Default"
colors = ["#ff0000"]
`
	cfg, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	themes, err := cfg.PaletteThemes()
	if err != nil {
		t.Fatal(err)
	}
	builtin := len(palette.Themes())
	if len(themes) != builtin+1 {
		t.Errorf("themes = %d, want %d", len(themes), builtin+1)
	}
	if got := themes[0].Hexes(); !slices.Equal(got, []string{"#ff0000"}) {
		t.Errorf("Default should be replaced in place, got %v", got)
	}
	if themes[len(themes)-1].Name != "Mono" {
		t.Errorf("custom theme should be appended, got %s", themes[len(themes)-1].Name)
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.Seed = "0x822b8fec20"
	cfg.Grid = Grid{Cols: 4, Rows: 4}
	cfg.Canvas.PreviewWidth, cfg.Canvas.PreviewHeight = 200, 220

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatal(err)
	}
	art, err := artwork.New(settings, nil)
	if err != nil {
		t.Fatalf("artwork from config: %v", err)
	}
	snap := art.Current()
	if snap.Seed.String() != "0x822b8fec20" || snap.Layout.Cols != 4 {
		t.Errorf("snapshot = %s, %d cols", snap.Seed, snap.Layout.Cols)
	}

	opts, err := cfg.ExportOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Width != 4000 || opts.Height != 4400 || opts.Style.Title != "GRIDLOCK" {
		t.Errorf("export options = %+v", opts)
	}
}

func TestStyleBackground(t *testing.T) {
	cfg := Default()
	style, err := cfg.Style()
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := style.Background.RGBA()
	if r>>8 != 40 || g>>8 != 40 || b>>8 != 40 {
		t.Errorf("default background = (%d,%d,%d), want grey 40", r>>8, g>>8, b>>8)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = "0x822b8fec20"
	cfg.Themes = []Theme{{Name: "Mono", Colors: []string{"#111111", "#eeeeee"}}}

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := Write(cfg, path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != cfg.Seed || got.Cache.TTL != cfg.Cache.TTL || len(got.Themes) != 1 {
		t.Errorf("round trip = %+v", got)
	}
	if got.Path != path {
		t.Errorf("Path = %q, want %q", got.Path, path)
	}
	if len(got.Unknown) != 0 {
		t.Errorf("written config should have no unknown keys, got %v", got.Unknown)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(Default(), &buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`seed = "0xc3f7f484d5"`, "[canvas]", "[signature]", `ttl = "168h0m0s"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("encoded config missing %q:\n%s", want, buf.String())
		}
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/xdg/config", AppName, "config.toml") {
		t.Errorf("DefaultPath() = %q", path)
	}

	cfg := Default()
	dir, err := cfg.CacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/xdg/cache", AppName) {
		t.Errorf("CacheDir() = %q", dir)
	}

	cfg.Cache.Dir = "/custom"
	if dir, _ := cfg.CacheDir(); dir != "/custom" {
		t.Errorf("CacheDir() with override = %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	if path, _ := DefaultPath(); path != filepath.Join(home, ".config", AppName, "config.toml") {
		t.Errorf("DefaultPath() without XDG = %q", path)
	}
}
