package theme

import (
	"sort"
	"strings"
	"sync"

	apperrors "github.com/alexisbeaulieu97/uicontrols/pkg/errors"
)

// Registry maps theme identifiers to definitions. Lookups of unknown
// identifiers fall back to the light theme instead of failing.
type Registry struct {
	mu       sync.RWMutex
	themes   map[string]*Theme
	fallback *Theme
}

// NewRegistry creates a registry seeded with the built-in light and dark themes.
func NewRegistry() *Registry {
	return &Registry{
		themes: map[string]*Theme{
			NameLight: Light(),
			NameDark:  Dark(),
		},
		fallback: Light(),
	}
}

var builtin = NewRegistry()

// Builtin returns the process-wide registry used by Lookup.
func Builtin() *Registry {
	return builtin
}

// Lookup resolves name against the process-wide registry.
func Lookup(name string) *Theme {
	return builtin.Resolve(name)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds t under its own name. Incomplete themes and names already
// taken are rejected.
func (r *Registry) Register(t *Theme) error {
	if t == nil {
		return apperrors.NewConfigError("", "", "theme is nil")
	}
	if err := t.Validate(); err != nil {
		return err
	}

	key := normalizeName(t.Name())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[key]; exists {
		return apperrors.NewConfigError(t.Name(), "name", "theme is already registered")
	}
	r.themes[key] = t
	return nil
}

// Lookup returns the theme registered under name.
func (r *Registry) Lookup(name string) (*Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[normalizeName(name)]
	return t, ok
}

// Resolve returns the theme registered under name, or the light theme.
func (r *Registry) Resolve(name string) *Theme {
	if t, ok := r.Lookup(name); ok {
		return t
	}
	return r.fallback
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
