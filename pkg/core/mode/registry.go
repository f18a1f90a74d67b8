package mode

import (
	"slices"
	"sync"

	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// Registry maps mode names to modes and remembers registration order.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	modes map[string]Mode
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modes: make(map[string]Mode)}
}

// Default returns a registry holding the built-in modes.
func Default() *Registry {
	r := NewRegistry()
	for _, m := range Builtins() {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
	return r
}

// Register validates m and adds it. Registering an existing name replaces
// the mode in place and keeps its position in the cycle order.
func (r *Registry) Register(m Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modes[m.Name]; !ok {
		r.order = append(r.order, m.Name)
	}
	r.modes[m.Name] = m
	return nil
}

// Lookup returns the mode registered under name, or an UNKNOWN_MODE error.
func (r *Registry) Lookup(name string) (Mode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modes[name]
	if !ok {
		return Mode{}, errs.New(errs.ErrCodeUnknownMode, "unknown mode %q", name)
	}
	return m, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Modes returns the registered modes in registration order.
func (r *Registry) Modes() []Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Mode, len(r.order))
	for i, name := range r.order {
		out[i] = r.modes[name]
	}
	return out
}

// Next returns the name following name in registration order, wrapping
// around. An unregistered name yields the first mode.
func (r *Registry) Next(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return ""
	}
	i := slices.Index(r.order, name)
	return r.order[(i+1)%len(r.order)]
}
