// Package io reads and writes the JSON description of an artwork.
//
// # Overview
//
// A description records everything needed to reproduce or inspect an
// artwork without rendering it:
//
//   - The seed, mode, theme and shape count that produced it
//   - The grid layout at preview resolution
//   - Every shape with its heading angle and assigned color
//   - Whether the generator fell back to the diagonal, and how many
//     attempts it used
//
// # JSON Format
//
//	{
//	  "seed": "0x822b8fec20",
//	  "mode": "default",
//	  "theme": "Default",
//	  "theme_index": 0,
//	  "shape_count": 5,
//	  "layout": {"cols": 10, "rows": 10, "cell_size": 84, ...},
//	  "signature": {"color": 0, "offset": 0},
//	  "shapes": [
//	    {"kind": "segment", "start": {"x": 0, "y": 21}, "end": {"x": 63, "y": 84}, "angle": 45}
//	  ],
//	  "angles": [45],
//	  "colors": ["#66aeaa"],
//	  "attempts": 1
//	}
//
// Shape fields beyond kind, start, end and angle appear only for the shape
// kinds that use them (apex, center, radius, start_angle, span, vertices).
//
// # Replay
//
// A description is a reproducible recipe: [Document.Settings] yields
// artwork settings that regenerate the same shapes and colors, because
// generation is a pure function of the seed and the settings.
//
//	doc, err := io.ImportJSON("0x822b8fec20.json")
//	art, err := artwork.New(doc.Settings(), logger)
package io
