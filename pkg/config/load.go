package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridlock/pkg/core/mode"
	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// document is the on-disk shape. Mode tables are decoded after the rest so
// each can start from the mode it overrides.
type document struct {
	Config
	Modes map[string]toml.Primitive `toml:"modes"`
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults; a malformed one is a configuration error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeConfiguration, err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeConfiguration, err, "read %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Decode reads TOML from r on top of the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	doc := document{Config: Default()}
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeConfiguration, err, "parse config")
	}

	cfg := doc.Config
	names := make([]string, 0, len(doc.Modes))
	for name := range doc.Modes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		m, err := decodeMode(md, name, doc.Modes[name])
		if err != nil {
			return Config{}, err
		}
		cfg.ModeOverrides = append(cfg.ModeOverrides, m)
	}

	for _, key := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, key.String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeMode overlays a [modes.<name>] table on the built-in mode of that
// name, or on the family template for a new name.
func decodeMode(md toml.MetaData, name string, prim toml.Primitive) (mode.Mode, error) {
	var head struct {
		Family mode.Family `toml:"family"`
	}
	if err := md.PrimitiveDecode(prim, &head); err != nil {
		return mode.Mode{}, errs.Wrap(errs.ErrCodeConfiguration, err, "mode %q", name)
	}

	m, ok := builtin(name)
	if !ok {
		if head.Family == "" {
			return mode.Mode{}, errs.New(errs.ErrCodeConfiguration, "mode %q: new modes need a family", name)
		}
		if m, ok = mode.Template(head.Family); !ok {
			return mode.Mode{}, errs.New(errs.ErrCodeConfiguration, "mode %q: unknown family %q", name, head.Family)
		}
		m.Title = name
	}

	if err := md.PrimitiveDecode(prim, &m); err != nil {
		return mode.Mode{}, errs.Wrap(errs.ErrCodeConfiguration, err, "mode %q", name)
	}
	m.Name = name
	if err := m.Validate(); err != nil {
		return mode.Mode{}, err
	}
	return m, nil
}

func builtin(name string) (mode.Mode, bool) {
	for _, m := range mode.Builtins() {
		if m.Name == name {
			return m, true
		}
	}
	return mode.Mode{}, false
}

// Write encodes cfg as TOML to path, creating parent directories.
// Mode overrides are not written.
func Write(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(cfg, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes cfg as TOML.
func Encode(cfg Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
