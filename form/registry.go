package form

import (
	"sort"
	"sync"
)

// Registry is the host's style table. Set has upsert semantics: registering
// an existing name replaces the previous style. Implementations report
// rejected registrations through the returned error; callers must not
// suppress it.
type Registry interface {
	Set(name string, style Style) error
	SetMany(assignments []Assignment) error
}

// ColorScheme is a complete set of form registrations exposed to the host
// under a unique name. Apply resolves the scheme into the given registry.
type ColorScheme interface {
	Name() string
	Apply(reg Registry) error
}

// SchemeRegistry receives colorschemes during plugin activation so the host
// can offer them for selection.
type SchemeRegistry interface {
	AddColorscheme(scheme ColorScheme)
}

// MemoryRegistry is an in-memory Registry. It is safe for concurrent use and
// never rejects a registration.
type MemoryRegistry struct {
	mu    sync.Mutex
	forms map[string]Style
}

// NewMemoryRegistry returns an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{forms: make(map[string]Style)}
}

// Set registers a style under name, replacing any previous entry.
func (r *MemoryRegistry) Set(name string, style Style) error {
	r.mu.Lock()
	r.forms[name] = style
	r.mu.Unlock()
	return nil
}

// SetMany registers every assignment in order, equivalent to sequential Set
// calls.
func (r *MemoryRegistry) SetMany(assignments []Assignment) error {
	r.mu.Lock()
	for _, a := range assignments {
		r.forms[a.Name] = a.Style
	}
	r.mu.Unlock()
	return nil
}

// Get returns the style registered under name.
func (r *MemoryRegistry) Get(name string) (Style, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	style, ok := r.forms[name]
	return style, ok
}

// Names returns all registered form names, sorted.
func (r *MemoryRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.forms))
	for name := range r.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered forms.
func (r *MemoryRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Snapshot returns a copy of the registry contents.
func (r *MemoryRegistry) Snapshot() map[string]Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Style, len(r.forms))
	for name, style := range r.forms {
		out[name] = style
	}
	return out
}
