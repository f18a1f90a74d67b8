package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlock/pkg/config"
	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/seed"
	"github.com/matzehuels/gridlock/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command. Flags
// that are not set keep the value from the configuration file.
type renderOpts struct {
	seed    string  // hex seed, e.g. 0x822b8fec20
	random  bool    // draw a fresh seed instead
	mode    string  // mode name
	theme   string  // theme name
	shapes  int     // shape count 1-9, 0 for the mode default
	title   string  // signature title
	formats string  // comma-separated output formats
	width   float64 // export canvas width
	height  float64 // export canvas height
	output  string  // output directory
	replay  string  // JSON description to regenerate from
	refresh bool    // ignore cached artifacts
	noCache bool    // disable the artifact cache
}

// renderCommand creates the render command for exporting one artwork.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an artwork to PNG, SVG, PDF or JSON",
		Long: `Render draws the artwork described by the configuration and flags and
writes one <seed>.<format> file per format into the output directory.

Rendered files are cached by content, so rendering the same artwork twice
only writes the cached bytes back out.`,
		Example: `  gridlock render --seed 0x822b8fec20 --mode hexagon
  gridlock render --random --formats png,svg --output prints
  gridlock render --replay prints/0x822b8fec20.json --formats svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			applyRenderFlags(cmd.Flags().Changed, &cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.seed, "seed", "", "hex seed, e.g. 0x822b8fec20")
	f.BoolVar(&opts.random, "random", false, "use a freshly generated seed")
	f.StringVarP(&opts.mode, "mode", "m", "", "mode name (see 'gridlock modes')")
	f.StringVarP(&opts.theme, "theme", "t", "", "theme name (see 'gridlock themes')")
	f.IntVarP(&opts.shapes, "shapes", "n", 0, "number of shapes, 1-9 (0 uses the mode default)")
	f.StringVar(&opts.title, "title", "", "signature title")
	f.StringVarP(&opts.formats, "formats", "f", "", "output format(s): png (default), svg, pdf, json (comma-separated)")
	f.Float64Var(&opts.width, "width", 0, "export width in pixels")
	f.Float64Var(&opts.height, "height", 0, "export height in pixels")
	f.StringVarP(&opts.output, "output", "o", "", "output directory")
	f.StringVar(&opts.replay, "replay", "", "regenerate the artwork recorded in a JSON description")
	f.BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.MarkFlagsMutuallyExclusive("seed", "random", "replay")

	return cmd
}

// applyRenderFlags layers the flags the user set over cfg.
func applyRenderFlags(changed func(string) bool, cfg *config.Config, opts renderOpts) {
	if changed("seed") {
		cfg.Seed = opts.seed
	}
	if changed("mode") {
		cfg.Mode = opts.mode
	}
	if changed("theme") {
		cfg.Theme = opts.theme
	}
	if changed("shapes") {
		cfg.Shapes = opts.shapes
	}
	if changed("title") {
		cfg.Title = opts.title
	}
	if changed("formats") {
		cfg.Formats = parseFormats(opts.formats)
	}
	if changed("width") {
		cfg.Canvas.ExportWidth = opts.width
	}
	if changed("height") {
		cfg.Canvas.ExportHeight = opts.height
	}
	if changed("output") {
		cfg.OutputDir = opts.output
	}
}

// runRender builds the snapshot and exports it.
func (c *CLI) runRender(ctx context.Context, cfg config.Config, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if opts.random {
		settings.Seed = seed.Generate(nil).String()
	}

	exportOpts, err := cfg.ExportOptions()
	if err != nil {
		return err
	}
	exportOpts.Refresh = opts.refresh
	exportOpts.Logger = logger

	var snap artwork.Snapshot
	if opts.replay != "" {
		snap, err = pipeline.Replay(opts.replay, settings, logger)
	} else {
		snap, err = pipeline.Build(settings, logger)
	}
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s (%s)", snap.Seed, strings.Join(exportOpts.Formats, ", ")))
	spinner.Start()
	prog := newProgress(logger)
	res, err := runner.Export(ctx, snap, exportOpts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done("Exported " + snap.Seed.String())

	printSuccess("Rendered %s %s", StyleHighlight.Render(snap.Seed.String()),
		StyleDim.Render(fmt.Sprintf("(%s, %s, %d×%d)", snap.Mode.Name, snap.Theme.Name, res.Width, res.Height)))
	printStats(snap.Pattern.Len(), len(snap.Colors), res.Stats.CacheHits == len(res.Paths))
	for _, format := range slices.Sorted(maps.Keys(res.Paths)) {
		printFile(res.Paths[format])
	}
	printNewline()
	printNextStep("Explore it interactively", fmt.Sprintf("%s studio --seed %s --mode %s", appName, snap.Seed, snap.Mode.Name))
	return nil
}
