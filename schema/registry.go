package schema

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps spec-version strings to schemas.
type Registry struct {
	mu sync.RWMutex

	schemas map[string]*Schema
}

// NewRegistry creates a new registry with the built-in schemas registered.
func NewRegistry() *Registry {
	reg := &Registry{schemas: map[string]*Schema{}}
	reg.registerBuiltins()
	return reg
}

func (r *Registry) Register(s *Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, exists := r.schemas[s.Version]; exists && existing != s {
		return fmt.Errorf("schema for version %q already registered", s.Version)
	}
	r.schemas[s.Version] = s
	return nil
}

// Resolve returns the schema for a spec version, or an error wrapping
// ErrUnsupportedVersion.
func (r *Registry) Resolve(version string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, exists := r.schemas[version]; exists {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
}

// Versions returns all registered spec versions, sorted.
func (r *Registry) Versions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.schemas))
}

// Default is the registry used by the record model.
var Default = NewRegistry()

// Current returns the schema records are built to by default.
func Current() *Schema {
	s, err := Default.Resolve(CurrentVersion)
	if err != nil {
		panic(err)
	}
	return s
}
