package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focusable is a control that can take keyboard focus.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Input is a Bubble Tea model that edits a TextField. Every change of the
// edited text is pushed into the field through SetValue, so the field's
// rules are evaluated on each keystroke.
type Input struct {
	field *TextField
	input textinput.Model
}

// NewInput wraps field in an editable model. Fields asking for auto focus
// start focused.
func NewInput(field *TextField) Input {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = field.Placeholder()
	ti.SetValue(field.DisplayValue())
	if field.Type() == FieldPassword {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = []rune(passwordMask)[0]
	}

	m := Input{field: field, input: ti}
	if field.AutoFocus() {
		m.Focus()
	}
	return m
}

// Init starts cursor blinking for inputs that begin focused.
func (m Input) Init() tea.Cmd {
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

// Update handles key input while focused.
func (m Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && !m.accepts(key) {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.field.SetValue(after)
	}
	return m, cmd
}

func (m Input) accepts(key tea.KeyMsg) bool {
	if m.field.IsDisabled() {
		return false
	}
	if m.field.IsReadOnly() {
		switch key.Type {
		case tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
			return true
		default:
			return false
		}
	}
	if m.field.Type() == FieldNumber && key.Type == tea.KeyRunes {
		for _, r := range key.Runes {
			if !strings.ContainsRune("0123456789.-+eE", r) {
				return false
			}
		}
	}
	return true
}

// Focus gives the input keyboard focus. Disabled fields cannot be focused.
func (m *Input) Focus() tea.Cmd {
	if m.field.IsDisabled() {
		return nil
	}
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Input) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has keyboard focus.
func (m Input) Focused() bool {
	return m.input.Focused()
}

// Field returns the edited field.
func (m Input) Field() *TextField {
	return m.field
}

// View renders the input with the default context.
func (m Input) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field, showing the editing cursor while focused.
func (m Input) ViewWithContext(ctx RenderContext) string {
	field := *m.field
	field.focused = m.input.Focused()
	if !field.focused {
		return field.render(ctx, "")
	}

	t := ctx.Theme()
	look := field.Appearance(ctx)
	width := look.Width - 2*look.PaddingX
	if look.BorderSide {
		width -= 2
	}

	ti := m.input
	ti.Width = max(width-1, 1)
	ti.TextStyle = lipgloss.NewStyle().Foreground(look.Foreground)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.Palette().Text.Disabled)
	return field.render(ctx, ti.View())
}

var _ Focusable = (*Input)(nil)
