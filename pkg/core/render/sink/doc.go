// Package sink provides output format renderers for artwork frames.
//
// # Overview
//
// A "sink" turns a [render.Frame] into bytes. Every sink draws through
// [render.Draw], so the same frame produces the same geometry in every
// format:
//
//   - PNG: raster output from the gg software renderer
//   - SVG: vector output written with svgo
//   - PDF: print output (requires rsvg-convert)
//   - JSON: the pattern description, see package io
//
// # PNG Output
//
// [RenderPNG] rasterizes the frame at its own size. Signature text uses the
// embedded Go Regular font unless [WithFont] supplies another:
//
//	f := render.ExportFrame(snap, 4000, render.DefaultStyle())
//	png, err := sink.RenderPNG(f)
//
// # SVG and PDF Output
//
// [RenderSVG] writes every path in device coordinates; the transform stack
// is resolved while drawing. [RenderPDF] converts that SVG with
// [render.ToPDF], which needs librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.Frame]: github.com/matzehuels/gridlock/pkg/core/render.Frame
// [render.Draw]: github.com/matzehuels/gridlock/pkg/core/render.Draw
// [render.ToPDF]: github.com/matzehuels/gridlock/pkg/core/render.ToPDF
package sink
