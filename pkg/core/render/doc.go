// Package render draws an artwork snapshot onto a 2D surface.
//
// # Overview
//
// Rendering is split between a fixed drawing routine and pluggable surfaces.
// [Draw] walks a [Frame] and issues path, fill, stroke and text calls on a
// [Surface]; the sink package provides raster (PNG), vector (SVG) and PDF
// surfaces on top of it.
//
// # Scale
//
// A frame carries a scale factor k. The preview is drawn at k = 1 and an
// export at k = exportWidth / previewWidth. The pattern is never regenerated
// for export: every coordinate, stroke width and text size is the preview
// value multiplied by k, so the print is the preview enlarged.
//
//	preview := render.PreviewFrame(snap, render.DefaultStyle())
//	export := render.ExportFrame(snap, 4000, render.DefaultStyle())
//
// # Signature
//
// Below the grid the signature overlay draws a line in the selected color,
// one square per assigned color, the title and the seed. The default title
// "GRIDLOCK" is drawn with its "D" mirrored.
package render
