// Package config loads the gridlock TOML configuration.
//
// The file is optional. Every key has a default, and a file only needs the
// keys it changes:
//
//	seed = "0x822b8fec20"
//	mode = "hexagon"
//	theme = "Golid"
//	output_dir = "prints"
//
//	[canvas]
//	export_width = 8000
//	export_height = 8800
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "72h"
//
//	[[themes]]
//	name = "Mono"
//	colors = ["#111111", "#eeeeee"]
//
//	[modes.bigarc]
//	family = "arc"
//	max_shapes = 6
//	properties = { arc_min_radius = 0.3, arc_max_radius = 0.5, arc_span = 180 }
//
// A [modes.<name>] table with the name of a built-in mode overrides only the
// keys it sets. A new name starts from the first built-in mode of its family.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/matzehuels/gridlock/pkg/cache"
	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/grid"
	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/palette"
	"github.com/matzehuels/gridlock/pkg/core/render"
	"github.com/matzehuels/gridlock/pkg/core/seed"
	errs "github.com/matzehuels/gridlock/pkg/errors"
	"github.com/matzehuels/gridlock/pkg/pipeline"
)

// AppName names the config and cache directories.
const AppName = "gridlock"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the effective configuration.
type Config struct {
	Seed      string   `toml:"seed"`
	Mode      string   `toml:"mode"`
	Theme     string   `toml:"theme"`
	Shapes    int      `toml:"shapes"` // 0 uses the mode default
	Title     string   `toml:"title"`
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`

	Canvas    Canvas           `toml:"canvas"`
	Grid      Grid             `toml:"grid"`
	Padding   grid.Padding     `toml:"padding"`
	Signature render.Signature `toml:"signature"`
	Cache     Cache            `toml:"cache"`
	Studio    Studio           `toml:"studio"`
	Themes    []Theme          `toml:"themes"`

	// ModeOverrides are the [modes.<name>] tables, decoded and validated.
	ModeOverrides []mode.Mode `toml:"-"`

	// Unknown lists keys in the file that no field consumed.
	Unknown []string `toml:"-"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

// Canvas sizes the preview and export canvases.
type Canvas struct {
	PreviewWidth  float64 `toml:"preview_width"`
	PreviewHeight float64 `toml:"preview_height"`
	ExportWidth   float64 `toml:"export_width"`
	ExportHeight  float64 `toml:"export_height"`
	Background    string  `toml:"background"`
}

// Grid is the cell grid.
type Grid struct {
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`
}

// Cache selects the artifact cache backend.
type Cache struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"` // file backend; empty uses the XDG cache dir
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	TTL           Duration `toml:"ttl"`
}

// Studio configures the interactive command.
type Studio struct {
	PreviewDir string `toml:"preview_dir"` // empty uses the OS temp dir
	Resume     bool   `toml:"resume"`      // reopen the latest session
	FitWidth   int    `toml:"fit_width"`   // window size the preview is fit into
	FitHeight  int    `toml:"fit_height"`
}

// Theme is a [[themes]] entry.
type Theme struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

// Duration is a time.Duration written as a Go duration string ("72h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed:      seed.Default,
		Mode:      "default",
		Theme:     "Default",
		Title:     render.DefaultTitle,
		OutputDir: pipeline.DefaultOutputDir,
		Formats:   slices.Clone(pipeline.DefaultFormats),
		Canvas: Canvas{
			PreviewWidth:  1000,
			PreviewHeight: 1100,
			ExportWidth:   pipeline.DefaultExportWidth,
			ExportHeight:  pipeline.DefaultExportHeight,
			Background:    "#282828",
		},
		Grid:      Grid{Cols: 10, Rows: 10},
		Padding:   grid.Uniform(80),
		Signature: render.DefaultSignature(),
		Cache: Cache{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{cache.TTLArtifact},
		},
		Studio: Studio{FitWidth: 1920, FitHeight: 1080},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gridlock/config.toml, falling back
// to ~/.config/gridlock/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured one, or
// $XDG_CACHE_HOME/gridlock, or ~/.cache/gridlock.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Validate checks values that have no safe fallback. Seeds and shape
// counts are not checked here; the artwork replaces bad ones with defaults.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errs.New(errs.ErrCodeConfiguration, "cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Canvas.Background != "" {
		if err := errs.ValidateHexColor(c.Canvas.Background); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "canvas background")
		}
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return errs.Wrap(errs.ErrCodeConfiguration, err, "formats")
	}
	if c.OutputDir != "" {
		if err := errs.ValidateOutputDir(c.OutputDir); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "output_dir")
		}
	}
	for _, t := range c.Themes {
		if _, err := palette.ParseTheme(t.Name, t.Colors); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "theme %q", t.Name)
		}
	}
	return nil
}

// Registry returns the built-in modes with the overrides registered on top.
func (c *Config) Registry() (*mode.Registry, error) {
	r := mode.Default()
	for _, m := range c.ModeOverrides {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// PaletteThemes returns the built-in themes followed by the configured ones.
// A configured theme with a built-in name replaces it in place.
func (c *Config) PaletteThemes() ([]palette.Theme, error) {
	themes := palette.Themes()
	for _, t := range c.Themes {
		parsed, err := palette.ParseTheme(t.Name, t.Colors)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeConfiguration, err, "theme %q", t.Name)
		}
		if i := palette.Find(themes, t.Name); i >= 0 {
			themes[i] = parsed
		} else {
			themes = append(themes, parsed)
		}
	}
	return themes, nil
}

// Settings returns the artwork settings the configuration describes.
func (c *Config) Settings() (artwork.Settings, error) {
	reg, err := c.Registry()
	if err != nil {
		return artwork.Settings{}, err
	}
	themes, err := c.PaletteThemes()
	if err != nil {
		return artwork.Settings{}, err
	}
	return artwork.Settings{
		Seed:       c.Seed,
		Mode:       c.Mode,
		Theme:      c.Theme,
		ShapeCount: c.Shapes,
		Width:      c.Canvas.PreviewWidth,
		Height:     c.Canvas.PreviewHeight,
		Cols:       c.Grid.Cols,
		Rows:       c.Grid.Rows,
		Padding:    c.Padding,
		Registry:   reg,
		Themes:     themes,
	}, nil
}

// Style returns the presentation style.
func (c *Config) Style() (render.Style, error) {
	style := render.Style{Title: c.Title, Signature: c.Signature}
	if c.Canvas.Background != "" {
		bg, err := render.ParseBackground(c.Canvas.Background)
		if err != nil {
			return render.Style{}, errs.Wrap(errs.ErrCodeConfiguration, err, "canvas background")
		}
		style.Background = bg
	} else {
		style.Background = render.DefaultBackground
	}
	return style, nil
}

// ExportOptions returns pipeline options for an export.
func (c *Config) ExportOptions() (pipeline.Options, error) {
	style, err := c.Style()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Formats:   slices.Clone(c.Formats),
		Width:     c.Canvas.ExportWidth,
		Height:    c.Canvas.ExportHeight,
		OutputDir: c.OutputDir,
		Style:     style,
	}, nil
}
