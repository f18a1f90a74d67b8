// Package palette holds the color themes and assigns theme colors to shapes.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gridlock/pkg/core/pattern"
	"github.com/matzehuels/gridlock/pkg/core/seed"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// FallbackHex is the color used when a theme has no colors.
const FallbackHex = "#FF0000"

// Theme is a named, ordered list of colors.
type Theme struct {
	Name   string
	Colors []colorful.Color
}

// Hexes returns the theme colors as #rrggbb strings.
func (t Theme) Hexes() []string {
	out := make([]string, len(t.Colors))
	for i, c := range t.Colors {
		out[i] = c.Hex()
	}
	return out
}

// Assignment is one color per shape, in shape order.
type Assignment []colorful.Color

// Hexes returns the assigned colors as #rrggbb strings.
func (a Assignment) Hexes() []string {
	return Theme{Colors: a}.Hexes()
}

// ParseTheme builds a theme from hex color strings.
func ParseTheme(name string, hexes []string) (Theme, error) {
	if name == "" {
		return Theme{}, errs.New(errs.ErrCodeInvalidTheme, "theme name cannot be empty")
	}
	if len(hexes) == 0 {
		return Theme{}, errs.New(errs.ErrCodeInvalidTheme, "theme %q has no colors", name)
	}
	t := Theme{Name: name, Colors: make([]colorful.Color, len(hexes))}
	for i, h := range hexes {
		if err := errs.ValidateHexColor(h); err != nil {
			return Theme{}, errs.Wrap(errs.ErrCodeInvalidTheme, err, "theme %q", name)
		}
		c, err := colorful.Hex(h)
		if err != nil {
			return Theme{}, errs.Wrap(errs.ErrCodeInvalidTheme, err, "theme %q: color %q", name, h)
		}
		t.Colors[i] = c
	}
	return t, nil
}

// Fallback returns the single-color fallback theme.
func Fallback() Theme {
	c, _ := colorful.Hex(FallbackHex)
	return Theme{Name: "Fallback", Colors: []colorful.Color{c}}
}

// Assign draws one color per shape from theme, with replacement, continuing
// rng. A nil or empty theme assigns the fallback color to every shape and
// returns an INVALID_THEME error alongside the usable assignment.
func Assign(p pattern.Pattern, theme *Theme, rng *seed.Stream) (Assignment, error) {
	var err error
	src := theme
	if theme == nil || len(theme.Colors) == 0 {
		name := "<nil>"
		if theme != nil {
			name = theme.Name
		}
		err = errs.New(errs.ErrCodeInvalidTheme, "theme %s has no colors, using fallback", name)
		fb := Fallback()
		src = &fb
	}

	out := make(Assignment, p.Len())
	for i := range out {
		out[i] = seed.Pick(rng, src.Colors)
	}
	return out, err
}
