// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/gldebug/gl"
)

// ContextFactory creates a rendering context for a canvas.
// Implementations should validate attributes and return descriptive errors.
type ContextFactory func(canvas gl.Canvas, attrs gl.Attributes) (gl.Context, error)

// RegistryEntry represents a registered context type.
type RegistryEntry struct {
	// Name is the context type identifier, such as "webgl".
	Name string

	// Priority determines selection order when no type is named
	// (higher = preferred).
	Priority int

	// Factory creates context instances.
	Factory ContextFactory

	// Available reports if the context type can be created on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered context types.
//
// Example registration:
//
//	func init() {
//	    surface.Register("webgl", 10, newContext, nil)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewCanvas.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a context type to the global registry.
//
// If available is nil, the type is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory ContextFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a context type from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered type names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available types sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific context type.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// Register adds a context type to this registry.
func (r *Registry) Register(name string, priority int, factory ContextFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a context type from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered type names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available types sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific context type.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewContext creates a context using the best available type.
func (r *Registry) NewContext(canvas gl.Canvas, attrs gl.Attributes) (gl.Context, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoContextType
	}

	// Try each available type in priority order
	var lastErr error
	for _, name := range available {
		ctx, err := r.NewContextByName(name, canvas, attrs)
		if err == nil {
			return ctx, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoContextType
}

// NewContextByName creates a context of a specific type.
func (r *Registry) NewContextByName(name string, canvas gl.Canvas, attrs gl.Attributes) (gl.Context, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ContextTypeNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &ContextTypeUnavailableError{Name: name}
	}

	return entry.Factory(canvas, attrs)
}

// sortedNames returns type names sorted by priority (highest first), ties
// broken by name. If onlyAvailable is true, filters to available types.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoContextType is returned when no context types are registered
	// or available on the current system.
	ErrNoContextType = errors.New("surface: no context type available")
)

// ContextTypeNotFoundError indicates a named context type is not registered.
type ContextTypeNotFoundError struct {
	Name string
}

func (e *ContextTypeNotFoundError) Error() string {
	return "surface: context type not found: " + e.Name
}

// ContextTypeUnavailableError indicates a context type exists but is not
// available.
type ContextTypeUnavailableError struct {
	Name string
}

func (e *ContextTypeUnavailableError) Error() string {
	return "surface: context type unavailable: " + e.Name
}
