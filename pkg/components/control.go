package components

import tea "github.com/charmbracelet/bubbletea"

// ClickMsg reports that a ButtonControl was activated.
type ClickMsg struct {
	ID    string
	Label string
}

// ButtonControl is a Bubble Tea model that makes a Button focusable and
// activatable with enter or space.
type ButtonControl struct {
	button  *Button
	focused bool
}

// NewButtonControl wraps b.
func NewButtonControl(b *Button) ButtonControl {
	return ButtonControl{button: b}
}

// Init implements tea.Model.
func (c ButtonControl) Init() tea.Cmd {
	return nil
}

// Update clicks the button when it is focused and enter or space is pressed.
// The button's callback runs first; the returned command then emits a ClickMsg.
func (c ButtonControl) Update(msg tea.Msg) (ButtonControl, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return c, nil
	}
	if key.Type != tea.KeyEnter && key.Type != tea.KeySpace {
		return c, nil
	}
	if c.button.IsDisabled() {
		return c, nil
	}

	c.button.Click()
	clicked := ClickMsg{ID: c.button.ID(), Label: c.button.Label()}
	return c, func() tea.Msg { return clicked }
}

// Focus gives the control keyboard focus. Disabled buttons cannot be focused.
func (c *ButtonControl) Focus() tea.Cmd {
	if c.button.IsDisabled() {
		return nil
	}
	c.focused = true
	return nil
}

// Blur removes keyboard focus.
func (c *ButtonControl) Blur() {
	c.focused = false
}

// Focused reports whether the control has keyboard focus.
func (c ButtonControl) Focused() bool {
	return c.focused
}

// Button returns the wrapped button.
func (c ButtonControl) Button() *Button {
	return c.button
}

// View renders the control with the default context.
func (c ButtonControl) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button, underlined while focused.
func (c ButtonControl) ViewWithContext(ctx RenderContext) string {
	b := *c.button
	b.focused = c.focused
	return b.ViewWithContext(ctx)
}

var _ Focusable = (*ButtonControl)(nil)
