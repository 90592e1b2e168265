package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps output modes to renderers. Besides each renderer's own Name,
// a mode can be reached through aliases such as "html" or "terminal".
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	aliases   map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		aliases:   make(map[string]string),
	}
}

// Register adds a renderer under its normalized Name. Names and aliases
// share one namespace.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := normalizeName(renderer.Name())
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(name) {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Alias makes alias resolve to the registered renderer name.
func (r *Registry) Alias(alias, name string) error {
	alias, name = normalizeName(alias), normalizeName(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.renderers[name]; !ok {
		return fmt.Errorf("render: alias %q targets unknown renderer %q", alias, name)
	}
	if alias == "" || r.taken(alias) {
		return fmt.Errorf("render: alias %q unavailable", alias)
	}
	r.aliases[alias] = name
	return nil
}

// Get resolves a renderer by name or alias.
func (r *Registry) Get(name string) (Renderer, error) {
	key := normalizeName(name)

	r.mu.RLock()
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	renderer, ok := r.renderers[key]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found (available: %s)", name, strings.Join(r.List(), ", "))
	}
	return renderer, nil
}

// List returns the sorted renderer names, without aliases.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name or an alias resolves to a renderer.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

func (r *Registry) taken(name string) bool {
	_, isRenderer := r.renderers[name]
	_, isAlias := r.aliases[name]
	return isRenderer || isAlias
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
