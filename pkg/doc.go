// Package pkg provides the core libraries for Gridlock generative artwork.
//
// # Overview
//
// Gridlock draws geometric shapes on a grid of cells. Every cell of an
// artwork shows the same pattern: a handful of segments, triangles,
// hexagons, diamonds, arcs or parallelograms sampled from a lattice of
// points inside the cell. A 40-bit hex seed, a mode and a color theme fully
// determine the result. The pkg directory is organized into three areas:
//
//  1. [core] - Domain logic (seeds, geometry, modes, patterns, colors, rendering)
//  2. [pipeline] - Orchestration (build → render → export, with caching)
//  3. Infrastructure ([cache], [config], [session], [io], [errors])
//
// # Architecture
//
// The typical data flow through Gridlock:
//
//	seed + mode + theme
//	         ↓
//	    [core/artwork] package (snapshot of the current piece)
//	         ↓
//	    [core/pattern] + [core/palette] (shapes and their colors)
//	         ↓
//	    [core/render] package (grid, signature, surfaces)
//	         ↓
//	    PNG/SVG/PDF/JSON output
//
// # Quick Start
//
// Build an artwork and export it at print size:
//
//	import (
//	    "github.com/matzehuels/gridlock/pkg/core/artwork"
//	    "github.com/matzehuels/gridlock/pkg/pipeline"
//	)
//
//	art, _ := artwork.New(artwork.Settings{Seed: "0x822b8fec20", Mode: "hexagon"}, logger)
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, _ := runner.Export(ctx, art.Current(), pipeline.Options{
//	    Formats:   []string{"png", "svg"},
//	    OutputDir: "prints",
//	})
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/seed] - Hex seeds and the deterministic stream every generation
// draws from.
//
// [core/grid] and [core/lattice] - Canvas layout and the point lattice
// shapes are anchored to.
//
// [core/mode] - The registry of named modes. Each mode is a shape family
// plus drawing properties.
//
// [core/pattern] - Shape sampling with per-family acceptance rules and a
// bounded attempt budget.
//
// [core/palette] - Color themes and the per-shape color assignment.
//
// [core/artwork] - The current snapshot and the commands that replace it.
//
// [core/render] - Drawing onto a [render.Surface], the signature overlay,
// and the PNG, SVG and JSON sinks in [core/render/sink].
//
// ## Infrastructure
//
// [pipeline] - Export orchestration shared by the render command and the
// studio: scale, render every format, cache, write files.
//
// [cache] - Artifact cache with file, Redis and null backends.
//
// [config] - TOML configuration with theme and mode overrides.
//
// [session] - Persisted studio sessions for --resume.
//
// [io] - JSON artwork descriptions, written on export and replayable.
//
// [observability] - Hooks for generation, export and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                              # All tests
//	go test ./pkg/core/pattern/...                 # Specific package
//	GRIDLOCK_TEST_REDIS=localhost:6379 go test ./pkg/cache/...
//
// [core]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core
// [core/seed]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/seed
// [core/grid]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/grid
// [core/lattice]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/lattice
// [core/mode]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/mode
// [core/pattern]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/pattern
// [core/palette]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/palette
// [core/artwork]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/artwork
// [core/render]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/render
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/render/sink
// [render.Surface]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/core/render#Surface
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/config
// [session]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/session
// [io]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridlock/pkg/observability
package pkg
