package builtin

import (
	"fmt"
	"log/slog"
)

// Registry holds the builtin entries the compiler resolves by name.
//
// Population happens once during process-wide initialization and is
// never revisited: there is no unregistration or mutation path. After
// that point the registry is effectively immutable and safe for
// unsynchronized concurrent reads from any number of execution threads,
// which is why it carries no lock.
type Registry struct {
	entries map[string]*Entry
	order   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds a validated entry. Names are globally unique within the
// registry; a duplicate is a programmer error in the registration table
// and panics, matching the population-at-startup contract.
func (r *Registry) Register(e *Entry) {
	if _, exists := r.entries[e.Name]; exists {
		panic(fmt.Sprintf("builtin with name '%s' already registered", e.Name))
	}
	slog.Debug("Registering builtin.", "name", e.Name, "num_inputs", e.NumInputs)
	r.entries[e.Name] = e
	r.order = append(r.order, e.Name)
}

// Lookup resolves a builtin by its external name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// All returns every entry in registration order, for the compiler (and
// the manifest verifier) to iterate.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Len reports the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
