package artwork

import (
	"github.com/matzehuels/gridlock/pkg/core/grid"
	"github.com/matzehuels/gridlock/pkg/core/seed"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// NewSeed replaces the seed with a freshly generated one.
func (a *Artwork) NewSeed() (Snapshot, error) {
	in := a.in
	in.seed = seed.Generate(a.source)
	a.logger.Info("new seed", "seed", in.seed)
	return a.apply(in)
}

// SetSeed replaces the seed with s. An invalid seed is rejected and the
// current artwork is kept.
func (a *Artwork) SetSeed(s string) (Snapshot, error) {
	sd, err := seed.Parse(s)
	if err != nil {
		return a.current, err
	}
	in := a.in
	in.seed = sd
	return a.apply(in)
}

// CycleTheme advances to the next theme, wrapping around.
func (a *Artwork) CycleTheme() (Snapshot, error) {
	in := a.in
	in.themeIndex = (in.themeIndex + 1) % len(a.themes)
	snap, err := a.apply(in)
	if err == nil {
		a.logger.Info("theme", "name", snap.Theme.Name)
	}
	return snap, err
}

// CycleMode advances to the next registered mode.
func (a *Artwork) CycleMode() (Snapshot, error) {
	return a.SetMode(a.registry.Next(a.in.mode.Name))
}

// SetMode switches to the named mode. An unknown name fails with an
// UNKNOWN_MODE error and the current artwork is kept.
func (a *Artwork) SetMode(name string) (Snapshot, error) {
	m, err := a.registry.Lookup(name)
	if err != nil {
		a.logger.Warn("mode switch rejected", "mode", name, "current", a.in.mode.Name)
		return a.current, err
	}
	in := a.in
	in.mode = m
	snap, err := a.apply(in)
	if err == nil {
		a.logger.Info("mode", "name", m.Name)
	}
	return snap, err
}

// SetShapeCount sets the number of shapes to place, 1 through 9.
func (a *Artwork) SetShapeCount(n int) (Snapshot, error) {
	if err := errs.ValidateShapeCount(n); err != nil {
		return a.current, err
	}
	in := a.in
	in.shapes = n
	return a.apply(in)
}

// CycleSignatureColor moves the signature to the next assigned color.
// The pattern is unchanged.
func (a *Artwork) CycleSignatureColor() Snapshot {
	n := len(a.current.Colors)
	if n == 0 {
		return a.current
	}
	a.in.signatureColor = (a.current.SignatureColor + 1) % n
	a.current.SignatureColor = a.in.signatureColor
	return a.current
}

// AdjustSignatureOffset moves the signature vertically by delta pixels at
// preview scale. Negative values move it up.
func (a *Artwork) AdjustSignatureOffset(delta float64) Snapshot {
	a.in.signatureOffset += delta
	a.current.SignatureOffset = a.in.signatureOffset
	return a.current
}

// Resize recomputes the layout for a new canvas size and regenerates. The
// seed is kept, so the pattern is the same up to scale.
func (a *Artwork) Resize(width, height float64) (Snapshot, error) {
	in := a.in
	in.layout = grid.Compute(width, height, a.cols, a.rows, a.padding)
	return a.apply(in)
}
