package rules

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered rule metadata grouped by rule group. Iteration
// order is deterministic: groups and rules within a group are sorted
// lexicographically, which keeps generated output byte-stable across runs.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]map[string]Metadata
	count  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string]map[string]Metadata),
	}
}

// Register adds rule metadata to the registry. Registering the same
// (group, name) pair twice is an error.
func (r *Registry) Register(meta Metadata) error {
	if meta.Group == "" || meta.Name == "" {
		return fmt.Errorf("register rule: group and name are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	group, ok := r.groups[meta.Group]
	if !ok {
		group = make(map[string]Metadata)
		r.groups[meta.Group] = group
	}
	if _, exists := group[meta.Name]; exists {
		return fmt.Errorf("register rule: %s/%s already registered", meta.Group, meta.Name)
	}

	group[meta.Name] = meta
	r.count++
	return nil
}

// MustRegister registers metadata and panics on error. Intended for
// package init() registration of built-in rules.
func (r *Registry) MustRegister(meta Metadata) {
	if err := r.Register(meta); err != nil {
		panic(err)
	}
}

// Get returns the metadata for a (group, name) pair.
func (r *Registry) Get(group, name string) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.groups[group][name]
	return meta, ok
}

// Groups returns all group names in sorted order.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.groups))
	for group := range r.groups {
		out = append(out, group)
	}
	sort.Strings(out)
	return out
}

// Rules returns the metadata of one group sorted by rule name.
func (r *Registry) Rules(group string) []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metadata, 0, len(r.groups[group]))
	for _, meta := range r.groups[group] {
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Count returns the total number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
