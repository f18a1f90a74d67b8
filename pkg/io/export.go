package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
	"github.com/matzehuels/gridlock/pkg/core/grid"
	"github.com/matzehuels/gridlock/pkg/core/pattern"
)

// Document is the JSON description of one artwork.
type Document struct {
	Seed       string      `json:"seed"`
	Mode       string      `json:"mode"`
	Theme      string      `json:"theme"`
	ThemeIndex int         `json:"theme_index"`
	ShapeCount int         `json:"shape_count"`
	Layout     grid.Layout `json:"layout"`
	Signature  signature   `json:"signature"`

	Shapes   []pattern.Shape `json:"shapes"`
	Angles   []float64       `json:"angles"`
	Colors   []string        `json:"colors"`
	Fallback bool            `json:"fallback,omitempty"`
	Attempts int             `json:"attempts"`
}

type signature struct {
	Color  int     `json:"color"`
	Offset float64 `json:"offset"`
}

// NewDocument describes snap. Shapes are in preview coordinates.
func NewDocument(snap artwork.Snapshot) Document {
	return Document{
		Seed:       snap.Seed.String(),
		Mode:       snap.Mode.Name,
		Theme:      snap.Theme.Name,
		ThemeIndex: snap.ThemeIndex,
		ShapeCount: snap.ShapeCount,
		Layout:     snap.Layout,
		Signature:  signature{Color: snap.SignatureColor, Offset: snap.SignatureOffset},
		Shapes:     snap.Pattern.Shapes,
		Angles:     snap.Pattern.Angles,
		Colors:     snap.Colors.Hexes(),
		Fallback:   snap.Pattern.Fallback,
		Attempts:   snap.Pattern.Attempts,
	}
}

// WriteJSON encodes snap as an indented Document and writes it to w.
// The output can be read back with [ReadJSON] and replayed with
// [Document.Settings].
func WriteJSON(snap artwork.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(snap)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes snap to a JSON file at path.
func ExportJSON(snap artwork.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(snap, f)
}
