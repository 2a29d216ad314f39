package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

// Renderable is anything that renders itself to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive the render context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// BaseComponent provides the caller style and the theme-aware strategy
// shared by every component. Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, t *theme.Theme) lipgloss.Style
}

// StyleFunc applies a styling transformation using data from a Theme.
// Style functions only read the theme.
type StyleFunc func(lipgloss.Style, *theme.Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, t)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(t *theme.Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, t)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, t)
		}
		for _, applier := range appliers {
			base = applier(base, t)
		}
		return base
	})
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  -1, // -1 means unlimited
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  maxWidth,
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// RenderContext carries the theme context and layout information through a
// render pass. Components never look the theme up globally; they read it
// from the context they are handed.
type RenderContext struct {
	Themes      *theme.Context
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the process default theme and no constraints.
func DefaultContext() RenderContext {
	return NewRenderContext(nil)
}

// NewRenderContext returns an unconstrained render context whose theme is t
// until a Provider publishes another one.
func NewRenderContext(t *theme.Theme) RenderContext {
	return RenderContext{
		Themes:      theme.NewContext(t),
		Constraints: Unconstrained(),
	}
}

// Theme returns the theme currently published in the context.
func (r RenderContext) Theme() *theme.Theme {
	return r.Themes.Current()
}

// WithTheme returns a new context rooted at t, detached from any overrides
// published in r.
func (r RenderContext) WithTheme(t *theme.Theme) RenderContext {
	r.Themes = theme.NewContext(t)
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context with the given parent width.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// AvailableWidth returns the width full-width components should fill, or 0
// when the context does not know it.
func (r RenderContext) AvailableWidth() int {
	width := r.ParentWidth
	if r.Constraints.MaxWidth > 0 && (width <= 0 || r.Constraints.MaxWidth < width) {
		width = r.Constraints.MaxWidth
	}
	if width < 0 {
		return 0
	}
	return width
}

func renderChild(child Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
