package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

// Provider selects a theme by name and publishes it to its children for the
// duration of their rendering. Components outside the provider keep seeing
// whatever theme was current before it.
type Provider struct {
	name     string
	registry *theme.Registry
	children []Renderable
	gap      int
}

// NewProvider creates a provider for the named theme. Unknown names resolve
// to the light theme.
func NewProvider(name string, children ...Renderable) *Provider {
	return &Provider{
		name:     name,
		registry: theme.Builtin(),
		children: children,
	}
}

// WithRegistry resolves the theme name against reg instead of the built-in registry.
func (p *Provider) WithRegistry(reg *theme.Registry) *Provider {
	if reg != nil {
		p.registry = reg
	}
	return p
}

// WithGap sets the number of blank lines between children.
func (p *Provider) WithGap(gap int) *Provider {
	p.gap = gap
	return p
}

// Add appends children.
func (p *Provider) Add(children ...Renderable) *Provider {
	p.children = append(p.children, children...)
	return p
}

// ThemeName returns the requested theme identifier.
func (p *Provider) ThemeName() string {
	return p.name
}

// Theme returns the theme the provider publishes.
func (p *Provider) Theme() *theme.Theme {
	return p.registry.Resolve(p.name)
}

// View renders the provider with the default context.
func (p *Provider) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext publishes the provider theme into ctx, renders the
// children inside it, and restores the previous theme before returning.
func (p *Provider) ViewWithContext(ctx RenderContext) string {
	if ctx.Themes == nil {
		ctx.Themes = theme.NewContext(nil)
	}
	t := p.Theme()
	restore := ctx.Themes.Publish(t)
	defer restore()

	palette := t.Palette()
	surface := lipgloss.NewStyle().
		Background(palette.Background.Default).
		Foreground(palette.Text.Primary).
		Padding(0, 1)

	childCtx := ctx
	if width := ctx.AvailableWidth(); width > 2 {
		surface = surface.Width(width)
		childCtx = ctx.WithConstraints(WithMaxWidth(width - 2)).WithParentWidth(width - 2)
	}

	content := VStack(p.children...).WithGap(p.gap).ViewWithContext(childCtx)
	return surface.Render(content)
}
