package submit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores entity descriptors by name.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]Entity),
	}
}

// Register adds an entity by its Name(). Duplicate names return an error.
func (r *Registry) Register(entity Entity) error {
	if entity == nil {
		return fmt.Errorf("submit: entity is required")
	}
	name := normalizeEntityName(entity.Name())
	if name == "" {
		return fmt.Errorf("submit: entity name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[name]; exists {
		return fmt.Errorf("submit: entity %q already registered", name)
	}

	r.entities[name] = entity
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(entity Entity) {
	if err := r.Register(entity); err != nil {
		panic(err)
	}
}

// Get retrieves an entity by name.
func (r *Registry) Get(name string) (Entity, error) {
	key := normalizeEntityName(name)
	if key == "" {
		return nil, fmt.Errorf("submit: entity name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.entities[key]
	if !ok {
		return nil, fmt.Errorf("submit: entity %q not found", key)
	}
	return entity, nil
}

// Has reports whether an entity is registered.
func (r *Registry) Has(name string) bool {
	key := normalizeEntityName(name)
	if key == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entities[key]
	return ok
}

// List returns a sorted list of entity names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeEntityName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
