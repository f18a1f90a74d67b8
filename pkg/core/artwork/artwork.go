// Package artwork holds the current state of a piece and the commands that
// change it.
//
// An [Artwork] owns one immutable [Snapshot] at a time. Every command builds
// a complete replacement snapshot (seed, mode, theme, layout, pattern and
// colors) and swaps it in only when regeneration succeeds, so a failed
// command always leaves the previous artwork on screen.
//
// Regeneration is a pure function of the snapshot inputs: a fresh stream is
// keyed by the seed, the pattern is sampled from it, and the colors continue
// the same stream. Two artworks with equal inputs always hold equal patterns
// and colors.
//
// Recoverable problems (an invalid configured seed, a theme without colors,
// an exhausted sampling budget) are logged as warnings and replaced by safe
// values. An unknown mode fails the command.
package artwork

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridlock/pkg/core/grid"
	"github.com/matzehuels/gridlock/pkg/core/lattice"
	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/palette"
	"github.com/matzehuels/gridlock/pkg/core/pattern"
	"github.com/matzehuels/gridlock/pkg/core/seed"
	errs "github.com/matzehuels/gridlock/pkg/errors"
	"github.com/matzehuels/gridlock/pkg/observability"
)

// SignatureStep is the distance one AdjustSignatureOffset key press moves
// the signature.
const SignatureStep = 10

// Settings are the inputs for a new artwork. Zero values select defaults.
type Settings struct {
	Seed       string
	Mode       string
	Theme      string
	ShapeCount int // 0 uses the mode's MaxShapes

	Width, Height float64
	Cols, Rows    int
	Padding       grid.Padding

	SignatureOffset float64

	Registry *mode.Registry
	Themes   []palette.Theme
	Source   seed.Source
}

// SetDefaults fills unset fields with the standard configuration.
func (s *Settings) SetDefaults() {
	if s.Seed == "" {
		s.Seed = seed.Default
	}
	if s.Mode == "" {
		s.Mode = "default"
	}
	if s.Width <= 0 {
		s.Width = 1000
	}
	if s.Height <= 0 {
		s.Height = 1100
	}
	if s.Cols <= 0 {
		s.Cols = 10
	}
	if s.Rows <= 0 {
		s.Rows = 10
	}
	if s.Padding == (grid.Padding{}) {
		s.Padding = grid.Uniform(80)
	}
	if s.Registry == nil {
		s.Registry = mode.Default()
	}
	if len(s.Themes) == 0 {
		s.Themes = palette.Themes()
	}
}

// Snapshot is one complete, immutable state of the artwork.
type Snapshot struct {
	Seed            seed.Seed
	Mode            mode.Mode
	ThemeIndex      int
	Theme           palette.Theme
	ShapeCount      int
	SignatureColor  int
	SignatureOffset float64
	Layout          grid.Layout
	Pattern         pattern.Pattern
	Colors          palette.Assignment
}

// SignatureHex returns the color used for the signature line and text.
func (s Snapshot) SignatureHex() string {
	if len(s.Colors) == 0 {
		return palette.FallbackHex
	}
	return s.Colors[s.SignatureColor%len(s.Colors)].Hex()
}

// inputs is everything regeneration depends on.
type inputs struct {
	seed            seed.Seed
	mode            mode.Mode
	themeIndex      int
	shapes          int
	signatureColor  int
	signatureOffset float64
	layout          grid.Layout
}

// Artwork is the mutable holder of the current snapshot. It is not safe for
// concurrent use; callers serialize commands.
type Artwork struct {
	registry *mode.Registry
	themes   []palette.Theme
	source   seed.Source
	logger   *log.Logger

	cols, rows int
	padding    grid.Padding

	in      inputs
	current Snapshot
}

// New builds the initial artwork. An invalid seed or shape count is replaced
// by the default with a warning; an unknown mode or theme is an error.
func New(cfg Settings, logger *log.Logger) (*Artwork, error) {
	cfg.SetDefaults()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &Artwork{
		registry: cfg.Registry,
		themes:   cfg.Themes,
		source:   cfg.Source,
		logger:   logger,
		cols:     cfg.Cols,
		rows:     cfg.Rows,
		padding:  cfg.Padding,
	}

	sd, err := seed.Parse(cfg.Seed)
	if err != nil {
		logger.Warn("invalid seed, using default", "seed", cfg.Seed, "default", seed.Default)
		sd = seed.MustParse(seed.Default)
	}

	m, err := a.registry.Lookup(cfg.Mode)
	if err != nil {
		return nil, err
	}

	themeIndex := 0
	if cfg.Theme != "" {
		if themeIndex = palette.Find(a.themes, cfg.Theme); themeIndex < 0 {
			return nil, errs.New(errs.ErrCodeInvalidTheme, "unknown theme %q", cfg.Theme)
		}
	}

	shapes := cfg.ShapeCount
	if shapes != 0 {
		if err := errs.ValidateShapeCount(shapes); err != nil {
			logger.Warn("invalid shape count, using mode default", "shapes", shapes, "mode", m.Name)
			shapes = 0
		}
	}

	in := inputs{
		seed:            sd,
		mode:            m,
		themeIndex:      themeIndex,
		shapes:          shapes,
		signatureOffset: cfg.SignatureOffset,
		layout:          grid.Compute(cfg.Width, cfg.Height, a.cols, a.rows, a.padding),
	}
	if _, err := a.apply(in); err != nil {
		return nil, err
	}
	return a, nil
}

// Current returns the current snapshot.
func (a *Artwork) Current() Snapshot { return a.current }

// Registry returns the mode registry the artwork draws from.
func (a *Artwork) Registry() *mode.Registry { return a.registry }

// Themes returns the themes the artwork cycles through.
func (a *Artwork) Themes() []palette.Theme { return a.themes }

// apply regenerates from in and installs the result. On error nothing changes.
func (a *Artwork) apply(in inputs) (Snapshot, error) {
	snap, err := a.regenerate(in)
	if err != nil {
		return a.current, err
	}
	a.in = in
	a.in.themeIndex = snap.ThemeIndex
	a.in.signatureColor = snap.SignatureColor
	a.current = snap
	return snap, nil
}

func (a *Artwork) regenerate(in inputs) (Snapshot, error) {
	start := time.Now()

	count := in.shapes
	if count == 0 {
		count = in.mode.MaxShapes
	}

	cell := in.layout.CellSize
	lat, err := lattice.Generate(cell, in.mode.LatticeDivisor)
	if err != nil {
		return Snapshot{}, err
	}

	rng := seed.NewStream(in.seed)
	p, err := pattern.Generate(lat, in.mode, count, cell, rng)
	if err != nil {
		return Snapshot{}, err
	}
	if p.Fallback {
		a.logger.Warn("no shape accepted, using fallback diagonal",
			"mode", in.mode.Name, "seed", in.seed, "attempts", p.Attempts)
	}

	themeIndex := in.themeIndex
	var theme palette.Theme
	if themeIndex >= 0 && themeIndex < len(a.themes) {
		theme = a.themes[themeIndex]
	}
	colors, err := palette.Assign(p, &theme, rng)
	if err != nil {
		a.logger.Warn("theme has no colors, using fallback", "index", themeIndex, "theme", theme.Name)
		themeIndex = 0
		theme = palette.Fallback()
	}

	sigColor := in.signatureColor
	if sigColor >= len(colors) {
		sigColor = 0
	}

	observability.Generation().OnGenerate(in.mode.Name, p.Len(), p.Attempts, p.Fallback, time.Since(start))
	a.logger.Debug("generated pattern",
		"seed", in.seed, "mode", in.mode.Name, "theme", theme.Name,
		"shapes", p.Len(), "attempts", p.Attempts)

	return Snapshot{
		Seed:            in.seed,
		Mode:            in.mode,
		ThemeIndex:      themeIndex,
		Theme:           theme,
		ShapeCount:      count,
		SignatureColor:  sigColor,
		SignatureOffset: in.signatureOffset,
		Layout:          in.layout,
		Pattern:         p,
		Colors:          colors,
	}, nil
}
