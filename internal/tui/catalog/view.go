package catalog

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uicontrols/pkg/components"
	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

const title = "UIControls Demo"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.Render(), m.help.View(m.keys))
}

// Render draws the catalog inside its theme providers, followed by the
// status line.
func (m Model) Render() string {
	sections := make([]components.Renderable, 0, len(m.forms)+2)
	sections = append(sections, components.Heading(title))

	for _, view := range m.forms {
		sections = append(sections, m.renderForm(view))
	}
	if m.status != "" {
		status := components.NewText(m.status).
			WithAppliers(components.Background(theme.RoleInfo), components.PaddingX(1))
		sections = append(sections, status)
	}

	root := components.NewProvider(m.themeName, sections...).
		WithRegistry(m.registry).
		WithGap(1)

	ctx := components.NewRenderContext(theme.Default()).WithParentWidth(m.width)
	return root.ViewWithContext(ctx)
}

func (m Model) renderForm(view formView) components.Renderable {
	children := make([]components.Renderable, 0, len(view.controls)+1)
	if view.form.Title != "" {
		children = append(children, components.Heading(view.form.Title).WithAppliers(components.Foreground(theme.RolePrimary)))
	}
	for _, c := range view.controls {
		children = append(children, c.renderable())
	}

	stack := components.VStack(children...).WithGap(1)
	if view.form.Theme == "" {
		return stack
	}
	return components.NewProvider(view.form.Theme, stack).WithRegistry(m.registry)
}
