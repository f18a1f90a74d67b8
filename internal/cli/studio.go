package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlock/pkg/config"
	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/grid"
	"github.com/matzehuels/gridlock/pkg/core/render"
	errs "github.com/matzehuels/gridlock/pkg/errors"
	"github.com/matzehuels/gridlock/pkg/pipeline"
	"github.com/matzehuels/gridlock/pkg/session"
)

// studioKeys lists the studio controls in display order.
var studioKeys = [][]string{
	{"a", "new random seed"},
	{"d", "next color theme"},
	{"m", "next mode"},
	{"1-9", "number of shapes"},
	{"c", "next signature color"},
	{"v / b", "move signature up / down"},
	{"s", "export at print size"},
	{"q", "quit and save the session"},
}

const studioHelp = "a seed · d theme · m mode · 1-9 shapes · c signature · v/b move · s export · q quit"

// studioOpts holds the command-line flags for the studio command.
type studioOpts struct {
	seed       string
	mode       string
	theme      string
	resume     bool
	previewDir string
	noCache    bool
}

// studioCommand creates the interactive studio command.
func (c *CLI) studioCommand() *cobra.Command {
	var opts studioOpts

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Explore seeds interactively with a live preview",
		Long: `Studio opens a key-driven session on one artwork. Every key press runs
one command (new seed, next theme, next mode, ...) and redraws the preview
PNG, which any image viewer that reloads on change can display.

The session is saved on every change and can be reopened with --resume.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			changed := cmd.Flags().Changed
			if changed("seed") {
				cfg.Seed = opts.seed
			}
			if changed("mode") {
				cfg.Mode = opts.mode
			}
			if changed("theme") {
				cfg.Theme = opts.theme
			}
			if changed("resume") {
				cfg.Studio.Resume = opts.resume
			}
			if changed("preview-dir") {
				cfg.Studio.PreviewDir = opts.previewDir
			}
			return c.runStudio(cmd.Context(), cfg, opts.noCache)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.seed, "seed", "", "initial hex seed")
	f.StringVarP(&opts.mode, "mode", "m", "", "initial mode")
	f.StringVarP(&opts.theme, "theme", "t", "", "initial theme")
	f.BoolVar(&opts.resume, "resume", false, "reopen the most recent session")
	f.StringVar(&opts.previewDir, "preview-dir", "", "directory for the preview PNG (default: OS temp dir)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache for exports")

	return cmd
}

// runStudio sets up the artwork, preview file and session, then hands the
// terminal to the studio model until the user quits.
func (c *CLI) runStudio(ctx context.Context, cfg config.Config, noCache bool) error {
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if cfg.Studio.FitWidth > 0 && cfg.Studio.FitHeight > 0 && cfg.Canvas.ExportWidth > 0 {
		aspect := cfg.Canvas.ExportHeight / cfg.Canvas.ExportWidth
		settings.Width, settings.Height = grid.Fit(float64(cfg.Studio.FitWidth), float64(cfg.Studio.FitHeight), aspect)
	}

	store, err := session.NewFileStore("")
	if err != nil {
		return err
	}
	if err := store.Cleanup(ctx); err != nil {
		c.Logger.Warn("session cleanup failed", "err", err)
	}

	var sess *session.Session
	if cfg.Studio.Resume {
		latest, err := store.Latest(ctx)
		switch {
		case err != nil:
			c.Logger.Warn("cannot read sessions", "err", err)
		case latest == nil:
			printInfo("No session to resume, starting a new one")
		default:
			sess = latest
			settings = latest.Apply(settings)
		}
	}
	if sess == nil {
		sess = session.New(session.DefaultTTL)
	}

	previewDir := cfg.Studio.PreviewDir
	if previewDir == "" {
		previewDir = os.TempDir()
	}
	if err := os.MkdirAll(previewDir, 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create preview dir")
	}
	base := filepath.Join(previewDir, appName+"-"+sess.ShortID())

	// The terminal belongs to the studio view, so logs go to a file.
	logFile, err := os.OpenFile(base+".log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "open studio log")
	}
	defer logFile.Close()
	logger := newLogger(logFile, c.Logger.GetLevel()).With("session", sess.ShortID())

	art, err := artwork.New(settings, logger)
	if err != nil {
		return err
	}
	restoreSignatureColor(art, sess.SignatureColor)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	runner.Logger = logger

	style, err := cfg.Style()
	if err != nil {
		return err
	}
	exportOpts, err := cfg.ExportOptions()
	if err != nil {
		return err
	}
	exportOpts.Logger = logger

	m := &studioModel{
		ctx:     ctx,
		art:     art,
		runner:  runner,
		store:   store,
		sess:    sess,
		style:   style,
		export:  exportOpts,
		preview: base + ".png",
		logger:  logger,
	}
	m.redraw(art.Current())

	printControls()
	printKeyValue("preview", m.preview)
	printKeyValue("log", logFile.Name())
	printNewline()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*studioModel); ok {
		printSuccess("Session %s saved", StyleHighlight.Render(fm.sess.ShortID()))
		printDetail("%s · %s · %s", fm.art.Current().Seed, fm.art.Current().Mode.Name, fm.art.Current().Theme.Name)
		printNextStep("Resume it", appName+" studio --resume")
	}
	return nil
}

// restoreSignatureColor cycles art until the signature uses index want.
// An index beyond the current colors is ignored.
func restoreSignatureColor(art *artwork.Artwork, want int) {
	n := len(art.Current().Colors)
	for i := 0; i < n && art.Current().SignatureColor != want; i++ {
		art.CycleSignatureColor()
	}
}

// printControls prints the key table shown before the studio starts.
func printControls() {
	fmt.Println(StyleTitle.Render("Studio controls"))
	fmt.Println(newTable([]string{"Key", "Action"}, studioKeys, nil).Render())
}

// =============================================================================
// studioModel - key-driven artwork session
// =============================================================================

// studioModel is the bubbletea model for the studio. Every key runs one
// artwork command to completion before the next message is handled.
type studioModel struct {
	ctx     context.Context
	art     *artwork.Artwork
	runner  *pipeline.Runner
	store   session.Store
	sess    *session.Session
	style   render.Style
	export  pipeline.Options
	preview string
	logger  *log.Logger

	status   string
	err      error
	width    int
	quitting bool
}

func (m *studioModel) Init() tea.Cmd {
	return nil
}

func (m *studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m *studioModel) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "a", "A":
		m.apply(m.art.NewSeed())
	case "d", "D":
		m.apply(m.art.CycleTheme())
	case "m", "M":
		m.apply(m.art.CycleMode())
	case "c", "C":
		m.apply(m.art.CycleSignatureColor(), nil)
	case "v", "V":
		m.apply(m.art.AdjustSignatureOffset(-artwork.SignatureStep), nil)
	case "b", "B":
		m.apply(m.art.AdjustSignatureOffset(artwork.SignatureStep), nil)
	case "s", "S":
		m.exportCurrent()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.apply(m.art.SetShapeCount(int(key[0] - '0')))
		}
	}
	return m, nil
}

// apply reports a failed command and keeps the previous artwork, or
// redraws after a successful one.
func (m *studioModel) apply(snap artwork.Snapshot, err error) {
	if err != nil {
		m.err = err
		m.status = errs.UserMessage(err)
		m.logger.Warn("command rejected", "err", err)
		return
	}
	m.redraw(snap)
}

// redraw writes the preview and saves the session.
func (m *studioModel) redraw(snap artwork.Snapshot) {
	m.err = nil
	if err := m.runner.WritePreview(snap, m.style, m.preview); err != nil {
		m.err = err
		m.status = "preview failed: " + errs.UserMessage(err)
		m.logger.Error("write preview", "path", m.preview, "err", err)
		return
	}
	m.status = fmt.Sprintf("%s · %s · %s", snap.Seed, snap.Mode.Name, snap.Theme.Name)

	m.sess.Capture(snap)
	if err := m.store.Set(m.ctx, m.sess); err != nil {
		m.logger.Warn("save session", "err", err)
	}
}

func (m *studioModel) exportCurrent() {
	snap := m.art.Current()
	res, err := m.runner.Export(m.ctx, snap, m.export)
	if err != nil {
		m.err = err
		m.status = "export failed: " + errs.UserMessage(err)
		return
	}
	m.err = nil
	names := make([]string, 0, len(res.Paths))
	dir := m.export.OutputDir
	for _, p := range res.Paths {
		names = append(names, filepath.Base(p))
		dir = filepath.Dir(p)
	}
	slices.Sort(names)
	m.status = fmt.Sprintf("exported %s to %s", strings.Join(names, ", "), dir)
}

func (m *studioModel) View() string {
	if m.quitting {
		return ""
	}
	snap := m.art.Current()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(render.DefaultTitle+" studio") + "  " + StyleDim.Render("session "+m.sess.ShortID()))
	b.WriteString("\n\n")
	b.WriteString(keyValue("seed", snap.Seed.String()) + "\n")
	b.WriteString(keyValue("mode", snap.Mode.Name) + "\n")
	b.WriteString(keyValue("theme", snap.Theme.Name) + "\n")
	b.WriteString(keyValue("shapes", fmt.Sprintf("%d", snap.Pattern.Len())) + "\n")
	b.WriteString(keyValue("signature", fmt.Sprintf("color %d · offset %+.0f", snap.SignatureColor, snap.SignatureOffset)) + "\n")
	b.WriteString(keyValue("colors", swatch(snap.Colors.Hexes())) + "\n")
	b.WriteString(keyValue("preview", m.preview) + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.status)
	case m.status != "":
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + m.status)
	}
	b.WriteString("\n\n")

	help := StyleDim
	if m.width > 0 {
		help = help.Width(m.width)
	}
	b.WriteString(help.Render(studioHelp))
	return b.String()
}
