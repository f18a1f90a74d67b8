package pipeline

import (
	"fmt"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/render"
	"github.com/matzehuels/gridlock/pkg/core/render/sink"
)

// RenderFormat draws f in one format.
func RenderFormat(f render.Frame, format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(f)
	case FormatSVG:
		return sink.RenderSVG(f)
	case FormatPDF:
		return sink.RenderPDF(f)
	case FormatJSON:
		return sink.RenderJSON(f)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Render draws snap at scale k into every format.
func Render(snap artwork.Snapshot, k float64, style render.Style, formats []string) (map[string][]byte, error) {
	f := render.NewFrame(snap, k, style)
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := RenderFormat(f, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// Preview draws snap as a PNG at its own resolution.
func Preview(snap artwork.Snapshot, style render.Style) ([]byte, error) {
	return sink.RenderPNG(render.PreviewFrame(snap, style))
}
