package generators

import (
	"fmt"
	"sync"
)

// UnknownGeneratorError is raised by Registry.Create for a name that was
// never registered (spec.md §7 "UnknownGenerator").
type UnknownGeneratorError struct {
	Name      string
	Available []string
}

func (e *UnknownGeneratorError) Error() string {
	return fmt.Sprintf("unknown generator: %s. available: %v", e.Name, e.Available)
}

// Constructor builds a fresh Generator instance.
type Constructor func() Generator

// Registry is a name-keyed, registration-order-preserving store of
// generator constructors (spec.md §4.D). A zero Registry is not usable;
// construct one with NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	order []string
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// DefaultRegistry returns a registry pre-populated with the three core
// strategies, in the canonical class/usecase/flow order. Spec.md §9
// recommends a facade-owned registry over true global mutable state, so
// callers construct one of these per facade rather than sharing a
// package-level singleton.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("class", func() Generator { return ClassDiagram{} })
	r.Register("usecase", func() Generator { return UseCaseDiagram{} })
	r.Register("flow", func() Generator { return FlowDiagram{} })
	return r
}

// Register adds a generator constructor under name. Re-registering an
// existing name overwrites its constructor without disturbing its
// position in registration order.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[name]; !exists {
		r.order = append(r.order, name)
	}
	r.ctors[name] = ctor
}

// Create builds a single generator by name, or returns *UnknownGeneratorError.
func (r *Registry) Create(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.ctors[name]
	if !ok {
		return nil, &UnknownGeneratorError{Name: name, Available: r.availableLocked()}
	}
	return ctor(), nil
}

// NamedGenerator pairs a registry name with the generator instance it
// constructed. CreateAll returns these in registration order so
// downstream iteration (the facade's diagram assembly) is stable.
type NamedGenerator struct {
	Name      string
	Generator Generator
}

// CreateAll builds one instance of every registered generator, in
// registration order.
func (r *Registry) CreateAll() []NamedGenerator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]NamedGenerator, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, NamedGenerator{Name: name, Generator: r.ctors[name]()})
	}
	return out
}

// Available returns the registered names in registration order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.availableLocked()
}

func (r *Registry) availableLocked() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
