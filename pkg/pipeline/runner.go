package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gridlock/pkg/cache"
	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/render"
	pkgio "github.com/matzehuels/gridlock/pkg/io"
	"github.com/matzehuels/gridlock/pkg/observability"
)

// Runner renders and writes exports with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Export renders snap and writes one <seed>.<ext> file per format.
func (r *Runner) Export(ctx context.Context, snap artwork.Snapshot, opts Options) (result *Result, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	sd := snap.Seed.String()
	start := time.Now()
	observability.Export().OnExportStart(ctx, sd, opts.Formats)
	defer func() {
		observability.Export().OnExportComplete(ctx, sd, opts.Formats, time.Since(start), err)
	}()

	artifacts, hits, err := r.RenderWithCacheInfo(ctx, snap, opts)
	if err != nil {
		return nil, err
	}

	k := opts.Scale(snap.Layout)
	w, h := render.NewFrame(snap, k, opts.Style).Size()
	result = &Result{
		Seed:      sd,
		Artifacts: artifacts,
		Paths:     make(map[string]string, len(artifacts)),
		Width:     w,
		Height:    h,
		Stats:     Stats{RenderTime: time.Since(start), CacheHits: hits},
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	for _, format := range opts.Formats {
		data := artifacts[format]
		path := filepath.Join(opts.OutputDir, sd+"."+format)
		if err := writeFile(path, data); err != nil {
			return nil, err
		}
		result.Paths[format] = path
		result.Stats.Bytes += len(data)
		logger.Info("exported", "path", path, "size", fmt.Sprintf("%dx%d", w, h), "bytes", len(data))
	}
	return result, nil
}

// RenderWithCacheInfo renders every requested format, serving cached
// artifacts where possible. It returns how many formats came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, snap artwork.Snapshot, opts Options) (map[string][]byte, int, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}
	logger := r.logger(opts)

	var doc bytes.Buffer
	if err := pkgio.WriteJSON(snap, &doc); err != nil {
		return nil, 0, fmt.Errorf("serialize snapshot for cache key: %w", err)
	}
	docHash := cache.Hash(doc.Bytes())

	k := opts.Scale(snap.Layout)
	frame := render.NewFrame(snap, k, opts.Style)
	w, h := frame.Size()
	styleHash := StyleHash(frame.Style)
	modeHash := ModeHash(snap.Mode)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(docHash, cache.ArtifactKeyOpts{Format: format, Width: w, Height: h, Style: styleHash, Mode: modeHash})
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, format)
				artifacts[format] = data
				continue
			} else if err != nil {
				logger.Warn("cache read failed", "format", format, "err", err)
			}
		}
		observability.Cache().OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}
	hits := len(opts.Formats) - len(missing)
	if len(missing) == 0 {
		logger.Debug("all artifacts from cache", "seed", snap.Seed, "formats", opts.Formats)
		return artifacts, hits, nil
	}

	rendered, err := Render(snap, k, frame.Style, missing)
	if err != nil {
		return nil, 0, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(docHash, cache.ArtifactKeyOpts{Format: format, Width: w, Height: h, Style: styleHash, Mode: modeHash})
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return artifacts, hits, nil
}

// WritePreview renders snap at preview resolution to path. The file is
// replaced atomically so viewers never see a partial image.
func (r *Runner) WritePreview(snap artwork.Snapshot, style render.Style, path string) error {
	data, err := Preview(snap, style)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// StyleHash identifies a presentation style for cache keys.
func StyleHash(s render.Style) string {
	var bg color.Color = render.DefaultBackground
	if s.Background != nil {
		bg = s.Background
	}
	c, _ := colorful.MakeColor(opaque(bg))
	data, _ := json.Marshal(struct {
		Background string           `json:"background"`
		Title      string           `json:"title"`
		Signature  render.Signature `json:"signature"`
	}{c.Hex(), s.Title, s.Signature})
	return cache.Hash(data)[:16]
}

// ModeHash identifies everything about a mode that changes how its
// shapes are sampled or drawn. A config override of a built-in mode keeps
// the name but changes the hash.
func ModeHash(m mode.Mode) string {
	data, _ := json.Marshal(m)
	return cache.Hash(data)[:16]
}

// opaque drops alpha so colorful.MakeColor accepts the color.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}

func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
