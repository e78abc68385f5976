package registry

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface that all listener modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory creates a new instance of a registered type.
type Factory func() any

// Registry holds all the registered type factories for a single application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// RegisterType registers a factory under a qualified type name.
func (r *Registry) RegisterType(typeName string, factory Factory) {
	if _, exists := r.factories[typeName]; exists {
		panic(fmt.Sprintf("type '%s' already registered", typeName))
	}
	slog.Debug("Registering listener type.", "type", typeName)
	r.factories[typeName] = factory
}

// Instantiate implements listener.Instantiator.
func (r *Registry) Instantiate(typeName string) (any, error) {
	factory, ok := r.factories[typeName]
	if !ok {
		return nil, fmt.Errorf("type '%s' not registered", typeName)
	}
	obj := factory()
	if obj == nil {
		return nil, fmt.Errorf("factory for type '%s' returned nil", typeName)
	}
	return obj, nil
}

// TypeNames returns all registered type names, sorted.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Missing returns the distinct type names from typeNames that are not
// registered, sorted.
func (r *Registry) Missing(typeNames []string) []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, name := range typeNames {
		if _, ok := r.factories[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing
}
