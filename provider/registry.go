package provider

import (
	"sort"
	"sync"

	"github.com/notedly/minutes/errors"
)

// Registry holds named backend factories and the instances built from
// them. Create builds at most one instance per name; later calls with
// the same name return the cached backend.
type Registry[T Provider] struct {
	mu        sync.Mutex
	factories map[string]Factory[T]
	instances map[string]T
}

// NewRegistry returns an empty Registry.
func NewRegistry[T Provider]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
		instances: make(map[string]T),
	}
}

// RegisterFactory registers a factory under the given name, replacing
// any previous registration.
func (r *Registry[T]) RegisterFactory(name string, factory Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create returns the backend registered under name, building it on
// first use with the given configuration.
func (r *Registry[T]) Create(name string, cfg map[string]any) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.instances[name]; ok {
		return inst, nil
	}
	factory, ok := r.factories[name]
	if !ok {
		var zero T
		return zero, errors.NotFound("provider factory", name)
	}
	inst, err := factory(cfg)
	if err != nil {
		var zero T
		return zero, err
	}
	r.instances[name] = inst
	return inst, nil
}

// List returns the sorted names of all registered factories.
func (r *Registry[T]) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
