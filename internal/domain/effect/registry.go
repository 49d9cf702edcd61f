package effect

import (
	"fmt"
	"sort"
)

// Registry holds named effect templates loaded from content
type Registry struct {
	templates map[string]StatusEffect
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]StatusEffect)}
}

// Register adds or replaces a template under its name
func (r *Registry) Register(e StatusEffect) {
	r.templates[e.Name()] = e
}

// Get returns the template with the given name
func (r *Registry) Get(name string) (StatusEffect, error) {
	e, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return e, nil
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for n := range r.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
