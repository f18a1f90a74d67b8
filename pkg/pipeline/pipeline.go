// Package pipeline turns artwork snapshots into files.
//
// The same snapshot is rendered at export resolution into every requested
// format, optionally through an artifact cache, and written to the output
// directory as <seed>.<ext>. The CLI render command and the studio's export
// key both go through a [Runner], so the two produce identical files.
//
// # Stages
//
//  1. Build: generate a snapshot from settings, or replay a JSON description
//  2. Render: draw the snapshot at export scale into each format
//  3. Write: store the artifacts as <seed>.<ext>
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	snap, err := pipeline.Build(settings, logger)
//	result, err := runner.Export(ctx, snap, pipeline.Options{
//	    Formats:   []string{"png", "svg"},
//	    OutputDir: "prints",
//	})
//	fmt.Println(result.Paths["png"]) // prints/0x822b8fec20.png
package pipeline

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridlock/pkg/core/grid"
	"github.com/matzehuels/gridlock/pkg/core/render"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultExportWidth is the export canvas width in pixels.
	DefaultExportWidth = 4000.0

	// DefaultExportHeight is the export canvas height in pixels.
	DefaultExportHeight = 4400.0

	// DefaultOutputDir is where exports are written.
	DefaultOutputDir = "."
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultFormats is what an export writes when no format is given.
var DefaultFormats = []string{FormatPNG}

// =============================================================================
// Options
// =============================================================================

// Options configures an export.
type Options struct {
	Formats   []string     `json:"formats,omitempty"`
	Width     float64      `json:"width,omitempty"`
	Height    float64      `json:"height,omitempty"`
	OutputDir string       `json:"output_dir,omitempty"`
	Refresh   bool         `json:"refresh,omitempty"` // ignore cached artifacts
	Style     render.Style `json:"-"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of an export.
type Result struct {
	Seed      string
	Artifacts map[string][]byte
	Paths     map[string]string
	Width     int
	Height    int
	Stats     Stats
}

// Stats contains export statistics.
type Stats struct {
	RenderTime time.Duration
	Bytes      int
	CacheHits  int
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format %q (want png, svg, pdf or json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills unset fields. Duplicate formats are dropped.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	} else {
		seen := make(map[string]bool, len(o.Formats))
		formats := o.Formats[:0:0]
		for _, f := range o.Formats {
			if !seen[f] {
				seen[f] = true
				formats = append(formats, f)
			}
		}
		o.Formats = formats
	}
	if o.Width <= 0 {
		o.Width = DefaultExportWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultExportHeight
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
}

// ValidateAndSetDefaults applies defaults and validates the result.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if math.IsInf(o.Width, 0) || math.IsInf(o.Height, 0) {
		return errs.New(errs.ErrCodeInvalidInput, "export size must be finite")
	}
	return errs.ValidateOutputDir(o.OutputDir)
}

// Scale returns the factor that fits a preview layout into the export box
// while keeping its aspect ratio.
func (o *Options) Scale(preview grid.Layout) float64 {
	if preview.Width <= 0 || preview.Height <= 0 {
		return 1
	}
	return math.Min(o.Width/preview.Width, o.Height/preview.Height)
}

// String describes the options for logs.
func (o Options) String() string {
	return fmt.Sprintf("%v %gx%g -> %s", o.Formats, o.Width, o.Height, o.OutputDir)
}
