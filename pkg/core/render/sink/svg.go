package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	"github.com/matzehuels/gridlock/pkg/core/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
}

// WithFontFamily sets the CSS font family used for signature text.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// RenderSVG writes f as a standalone SVG document.
func RenderSVG(f render.Frame, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{fontFamily: "Helvetica, Arial, sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	w, h := f.Size()
	canvas := svg.New(&buf)
	canvas.Start(w, h)
	canvas.Title(fmt.Sprintf("%s %s", f.Style.Title, f.Snapshot.Seed))

	s := &vector{canvas: canvas, width: w, height: h, fontFamily: r.fontFamily, matrix: gg.Identity()}
	if err := render.Draw(s, f); err != nil {
		return nil, err
	}

	canvas.End()
	return buf.Bytes(), nil
}

// RenderPDF renders f as SVG and converts it with rsvg-convert.
func RenderPDF(f render.Frame, opts ...SVGOption) ([]byte, error) {
	data, err := RenderSVG(f, opts...)
	if err != nil {
		return nil, err
	}
	w, h := f.Size()
	return render.ToPDF(data, w, h)
}

// vector adapts an svgo canvas to render.Surface. svgo has no transform
// stack, so points are mapped to device space with a gg.Matrix before they
// are written.
type vector struct {
	canvas        *svg.SVG
	width, height int
	fontFamily    string

	matrix gg.Matrix
	stack  []gg.Matrix

	fill      string
	lineWidth float64
	path      strings.Builder
}

func (v *vector) Push() { v.stack = append(v.stack, v.matrix) }

func (v *vector) Pop() {
	if n := len(v.stack); n > 0 {
		v.matrix = v.stack[n-1]
		v.stack = v.stack[:n-1]
	}
}

func (v *vector) Translate(x, y float64) { v.matrix = v.matrix.Multiply(gg.Translate(x, y)) }
func (v *vector) Rotate(angle float64)   { v.matrix = v.matrix.Multiply(gg.Rotate(angle)) }
func (v *vector) Scale(sx, sy float64)   { v.matrix = v.matrix.Multiply(gg.Scale(sx, sy)) }

func (v *vector) SetColor(c color.Color) { v.fill = cssColor(c) }
func (v *vector) SetLineWidth(w float64) { v.lineWidth = w }

func (v *vector) MoveTo(x, y float64) { v.point('M', x, y) }
func (v *vector) LineTo(x, y float64) { v.point('L', x, y) }
func (v *vector) ClosePath()          { v.path.WriteString("Z") }

func (v *vector) point(cmd byte, x, y float64) {
	p := v.matrix.TransformPoint(gg.Pt(x, y))
	fmt.Fprintf(&v.path, "%c%s %s", cmd, num(p.X), num(p.Y))
}

func (v *vector) Fill() error {
	v.flush("fill:" + v.fill + ";stroke:none")
	return nil
}

func (v *vector) Stroke() error {
	w := v.lineWidth * v.deviceScale()
	v.flush(fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round", v.fill, num(w)))
	return nil
}

func (v *vector) flush(style string) {
	if v.path.Len() > 0 {
		v.canvas.Path(v.path.String(), style)
	}
	v.path.Reset()
}

// deviceScale is the uniform scale factor of the current transform.
func (v *vector) deviceScale() float64 {
	m := v.matrix
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

func (v *vector) Text(s string, x, y, size, ax, ay float64) error {
	p := v.matrix.TransformPoint(gg.Pt(x, y))
	anchor := "start"
	switch {
	case ax >= 1:
		anchor = "end"
	case ax > 0:
		anchor = "middle"
	}
	baseline := "auto"
	if ay > 0 && ay < 1 {
		baseline = "central"
	}
	style := fmt.Sprintf("fill:%s;font-family:%s;font-size:%spx;text-anchor:%s;dominant-baseline:%s",
		v.fill, v.fontFamily, num(size*v.deviceScale()), anchor, baseline)
	v.canvas.Text(int(math.Round(p.X)), int(math.Round(p.Y)), s, style)
	return nil
}

func (v *vector) Clear(c color.Color) {
	v.canvas.Rect(0, 0, v.width, v.height, "fill:"+cssColor(c))
}

// cssColor formats c as rgba(), keeping alpha for translucent shapes.
func cssColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/255)
}

// num formats f with at most two decimals.
func num(f float64) string {
	r := math.Round(f*100) / 100
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
