package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFieldType is returned when a lookup names a type the registry has
// never seen. Callers branch on it with errors.Is.
var ErrUnknownFieldType = errors.New("schema: unknown field type")

// Registry stores type schemas by field type name, providing discovery and
// duplication safeguards.
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeSchema
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]TypeSchema),
	}
}

// Register adds a type schema keyed by its Type. Duplicate names return an
// error.
func (r *Registry) Register(ts TypeSchema) error {
	if ts.Type == "" {
		return fmt.Errorf("schema: type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[ts.Type]; exists {
		return fmt.Errorf("schema: type %q already registered", ts.Type)
	}

	r.types[ts.Type] = ts
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(ts TypeSchema) {
	if err := r.Register(ts); err != nil {
		panic(err)
	}
}

// Lookup retrieves a type schema by field type name.
func (r *Registry) Lookup(fieldType string) (TypeSchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ts, ok := r.types[fieldType]
	if !ok {
		return TypeSchema{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
	}
	return ts, nil
}

// Has reports whether a field type is registered.
func (r *Registry) Has(fieldType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[fieldType]
	return ok
}

// List returns a sorted list of registered field type names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry pre-populated with the documented ACF
// field types. The instance is built once and must not be mutated by callers;
// use NewRegistry plus Register for custom type sets.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, ts := range builtinTypes() {
			defaultRegistry.MustRegister(ts)
		}
	})
	return defaultRegistry
}
