package catalog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uicontrols/pkg/components"
	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		m.help.Width = msg.Width
		return m, nil
	case components.ClickMsg:
		m.status = fmt.Sprintf("Clicked %q", msg.Label)
		m.log.With("button", msg.ID).Debug("button clicked")
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		case key.Matches(msg, m.keys.ToggleTheme):
			m.toggleTheme()
			return m, nil
		}
	}

	if c := m.current(); c != nil {
		return m, c.update(msg)
	}
	return m, nil
}

// moveFocus focuses the next enabled control in direction step, wrapping
// around at either end.
func (m *Model) moveFocus(step int) tea.Cmd {
	count := len(m.controls)
	if count == 0 {
		return nil
	}

	next := m.focus
	for range count {
		next = (next + step + count) % count
		if !m.controls[next].disabled() {
			break
		}
	}
	if next == m.focus || m.controls[next].disabled() {
		return nil
	}

	if c := m.current(); c != nil {
		c.blur()
	}
	m.focus = next
	return m.controls[next].focus()
}

// toggleTheme switches the top-level theme between light and dark based
// on the mode of the theme currently shown.
func (m *Model) toggleTheme() {
	if m.Theme().Mode() == theme.ModeDark {
		m.themeName = theme.NameLight
	} else {
		m.themeName = theme.NameDark
	}
	m.status = "Theme: " + m.themeName
	m.log.Debug("theme toggled to " + m.themeName)
}
