package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// ReadJSON decodes a Document from r.
//
// The seed must be valid and every color a #rgb or #rrggbb hex string.
// The shapes are decoded as written; they are not checked against the seed.
// Use [Document.Settings] to regenerate the artwork and compare.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode pattern")
	}
	if err := errs.ValidateSeed(doc.Seed); err != nil {
		return Document{}, err
	}
	if doc.Mode == "" {
		return Document{}, errs.New(errs.ErrCodeInvalidFormat, "pattern has no mode")
	}
	for i, c := range doc.Colors {
		if err := errs.ValidateHexColor(c); err != nil {
			return Document{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "color %d", i)
		}
	}
	return doc, nil
}

// ImportJSON reads a Document from the file at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, errs.Wrap(errs.ErrCodeNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Settings returns artwork settings that regenerate the described artwork.
// Registry and themes are left unset so the caller can supply its own.
func (d Document) Settings() artwork.Settings {
	l := d.Layout
	return artwork.Settings{
		Seed:            d.Seed,
		Mode:            d.Mode,
		Theme:           d.Theme,
		ShapeCount:      d.ShapeCount,
		Width:           l.Width,
		Height:          l.Height,
		Cols:            l.Cols,
		Rows:            l.Rows,
		Padding:         l.Padding,
		SignatureOffset: d.Signature.Offset,
	}
}
