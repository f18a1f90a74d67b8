package sink

import (
	"bytes"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/gridlock/pkg/core/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	font []byte
}

// WithFont replaces the embedded Go Regular font with TTF or OTF data.
func WithFont(data []byte) PNGOption { return func(r *pngRenderer) { r.font = data } }

// RenderPNG rasterizes f with the gg software renderer.
func RenderPNG(f render.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{font: goregular.TTF}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.Size()
	s, err := newRaster(max(w, 1), max(h, 1), r.font)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if err := render.Draw(s, f); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.ctx.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// raster adapts a gg.Context to render.Surface.
type raster struct {
	ctx   *gg.Context
	fonts *text.FontSource
	faces map[float64]text.Face
}

func newRaster(w, h int, font []byte) (*raster, error) {
	src, err := text.NewFontSource(font)
	if err != nil {
		return nil, err
	}
	return &raster{
		ctx:   gg.NewContext(w, h),
		fonts: src,
		faces: make(map[float64]text.Face),
	}, nil
}

func (r *raster) Close() error {
	err := r.ctx.Close()
	if cerr := r.fonts.Close(); err == nil {
		err = cerr
	}
	return err
}

func (r *raster) Push()                  { r.ctx.Push() }
func (r *raster) Pop()                   { r.ctx.Pop() }
func (r *raster) Translate(x, y float64) { r.ctx.Translate(x, y) }
func (r *raster) Rotate(angle float64)   { r.ctx.Rotate(angle) }
func (r *raster) Scale(sx, sy float64)   { r.ctx.Scale(sx, sy) }
func (r *raster) SetColor(c color.Color) { r.ctx.SetColor(c) }
func (r *raster) SetLineWidth(w float64) { r.ctx.SetLineWidth(w) }
func (r *raster) MoveTo(x, y float64)    { r.ctx.MoveTo(x, y) }
func (r *raster) LineTo(x, y float64)    { r.ctx.LineTo(x, y) }
func (r *raster) ClosePath()             { r.ctx.ClosePath() }
func (r *raster) Fill() error            { return r.ctx.Fill() }
func (r *raster) Stroke() error          { return r.ctx.Stroke() }
func (r *raster) Clear(c color.Color)    { r.ctx.ClearWithColor(gg.FromColor(c)) }

// Text places the anchor in device space and draws untransformed glyphs.
func (r *raster) Text(s string, x, y, size, ax, ay float64) error {
	key := math.Round(size*4) / 4
	face, ok := r.faces[key]
	if !ok {
		face = r.fonts.Face(key)
		r.faces[key] = face
	}

	m := r.ctx.GetTransform()
	p := m.TransformPoint(gg.Pt(x, y))
	r.ctx.Identity()
	r.ctx.SetFont(face)
	r.ctx.DrawStringAnchored(s, p.X, p.Y, ax, ay)
	r.ctx.SetTransform(m)
	return nil
}
