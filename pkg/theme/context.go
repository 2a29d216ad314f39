package theme

import "sync"

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// InitDefault fixes the process-wide default theme. Only the first call that
// happens before any Default lookup takes effect; it reports whether t was applied.
func InitDefault(t *Theme) bool {
	applied := false
	defaultOnce.Do(func() {
		if t == nil {
			t = Light()
		}
		defaultTheme = t
		applied = true
	})
	return applied
}

// Default returns the process-wide default theme, light unless InitDefault
// chose otherwise.
func Default() *Theme {
	defaultOnce.Do(func() {
		defaultTheme = Light()
	})
	return defaultTheme
}

// Resolve returns the effective theme for an explicit override stack: the
// last non-nil override, or def when nothing overrides it. A nil def means
// the process default.
func Resolve(def *Theme, overrides []*Theme) *Theme {
	for i := len(overrides) - 1; i >= 0; i-- {
		if overrides[i] != nil {
			return overrides[i]
		}
	}
	if def == nil {
		return Default()
	}
	return def
}

// Context exposes the current theme to everything rendered inside it.
// Overrides are published by boundaries and stack strictly: the last one
// published is the first one restored. A Context belongs to a single render
// pass and is not safe for concurrent use.
type Context struct {
	fallback *Theme
	stack    []*Theme
	frames   []uint64
	next     uint64
}

// NewContext creates a context that reports def when nothing is published.
// A nil def means the process default.
func NewContext(def *Theme) *Context {
	return &Context{fallback: def}
}

// Publish makes t current until the returned restore function runs.
// Restoring reverts to whatever was current right before this call, also
// dropping any inner override left unrestored. Restoring a frame that an
// enclosing boundary already dropped is a no-op, as is calling restore again.
func (c *Context) Publish(t *Theme) (restore func()) {
	c.next++
	id := c.next
	depth := len(c.stack)
	c.stack = append(c.stack, t)
	c.frames = append(c.frames, id)

	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		if len(c.frames) > depth && c.frames[depth] == id {
			clear(c.stack[depth:])
			c.stack = c.stack[:depth]
			c.frames = c.frames[:depth]
		}
	}
}

// Current returns the nearest published theme, or the context default.
func (c *Context) Current() *Theme {
	if c == nil {
		return Default()
	}
	return Resolve(c.fallback, c.stack)
}

// Within runs fn with t published, restoring afterwards even if fn panics.
func (c *Context) Within(t *Theme, fn func()) {
	restore := c.Publish(t)
	defer restore()
	fn()
}

// Depth returns the number of active overrides.
func (c *Context) Depth() int {
	if c == nil {
		return 0
	}
	return len(c.stack)
}
