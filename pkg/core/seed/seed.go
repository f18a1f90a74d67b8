// Package seed provides the hex seeds and deterministic random streams that
// drive pattern generation.
//
// A [Seed] is a 40-bit value written as "0x" followed by ten hex digits. A
// [Stream] is a pseudo-random sequence keyed by a seed: two streams built
// from the same seed produce the same values in the same order, on every
// run and on every machine. Nothing in this package reads external entropy
// except [Generate], which only picks new seeds.
//
// Streams are cheap; build a fresh one for every generation instead of
// sharing one across calls:
//
//	s, err := seed.Parse("0x822b8fec20")
//	rng := seed.NewStream(s)
//	x := rng.Range(0, 100)
//	p := seed.Pick(rng, points)
package seed

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	errs "github.com/matzehuels/gridlock/pkg/errors"
)

const (
	// Bits is the width of a seed value.
	Bits = 40

	// Mask keeps the low 40 bits of a value.
	Mask = uint64(1)<<Bits - 1

	// Default is the seed used when none is configured.
	Default = "0xc3f7f484d5"

	// Fallback replaces a generated seed that fails validation.
	Fallback = "0x9b8d5a395d"

	prefix = "0x"
	digits = 10
)

// Seed is a validated 40-bit seed.
type Seed struct {
	value uint64
}

// Parse validates s and returns its seed. Upper-case digits are accepted and
// normalized; any other deviation from the format is a configuration error.
func Parse(s string) (Seed, error) {
	if err := errs.ValidateSeed(s); err != nil {
		return Seed{}, err
	}
	v, err := strconv.ParseUint(s[len(prefix):], 16, 64)
	if err != nil {
		return Seed{}, errs.Wrap(errs.ErrCodeInvalidSeed, err, "parse seed %q", s)
	}
	return Seed{value: v}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Seed {
	sd, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sd
}

// FromValue builds a seed from the low 40 bits of v.
func FromValue(v uint64) Seed {
	return Seed{value: v & Mask}
}

// Value returns the 40-bit integer value.
func (s Seed) Value() uint64 { return s.value }

// String returns the canonical lower-case form, e.g. "0x822b8fec20".
func (s Seed) String() string {
	return fmt.Sprintf("%s%0*x", prefix, digits, s.value)
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Source supplies raw entropy for new seeds.
type Source interface {
	Uint64() uint64
}

// SourceFunc adapts a function to Source.
type SourceFunc func() uint64

// Uint64 calls f.
func (f SourceFunc) Uint64() uint64 { return f() }

// globalSource draws from the math/rand/v2 top-level generator.
var globalSource = SourceFunc(rand.Uint64)

// Generate returns a new random seed drawn from src (the process-wide
// generator when src is nil). The seed is built one hex digit at a time and
// validated; if validation fails the Fallback seed is returned instead.
func Generate(src Source) Seed {
	if src == nil {
		src = globalSource
	}
	const hexDigits = "0123456789abcdef"
	var b strings.Builder
	b.WriteString(prefix)
	raw := src.Uint64()
	for i := 0; i < digits; i++ {
		b.WriteByte(hexDigits[(raw>>(4*(digits-1-i)))&0xf])
	}
	s, err := Parse(b.String())
	if err != nil {
		return MustParse(Fallback)
	}
	return s
}
