// Package catalog is the interactive Bubble Tea program that renders a
// catalog of forms and buttons with live validation.
package catalog

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uicontrols/internal/config"
	"github.com/alexisbeaulieu97/uicontrols/internal/logger"
	"github.com/alexisbeaulieu97/uicontrols/pkg/components"
	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

const defaultWidth = 80

// Options adjust how a catalog is presented.
type Options struct {
	// ThemeName overrides the catalog's top-level theme when set.
	ThemeName string
	// Width is the initial render width; window size messages replace it.
	Width  int
	Logger *logger.Logger
}

// control is one focusable entry: either an input or a button.
type control struct {
	id     string
	input  *components.Input
	button *components.ButtonControl
}

func (c *control) focus() tea.Cmd {
	if c.input != nil {
		return c.input.Focus()
	}
	return c.button.Focus()
}

func (c *control) blur() {
	if c.input != nil {
		c.input.Blur()
		return
	}
	c.button.Blur()
}

func (c *control) focused() bool {
	if c.input != nil {
		return c.input.Focused()
	}
	return c.button.Focused()
}

func (c *control) disabled() bool {
	if c.input != nil {
		return c.input.Field().IsDisabled()
	}
	return c.button.Button().IsDisabled()
}

func (c *control) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if c.input != nil {
		*c.input, cmd = c.input.Update(msg)
		return cmd
	}
	*c.button, cmd = c.button.Update(msg)
	return cmd
}

func (c *control) renderable() components.Renderable {
	if c.input != nil {
		return *c.input
	}
	return *c.button
}

// formView is a form together with the controls built for it.
type formView struct {
	form     config.Form
	controls []*control
}

// Model holds the Bubble Tea state of the catalog.
type Model struct {
	catalog   *config.Catalog
	registry  *theme.Registry
	themeName string
	forms     []formView
	controls  []*control
	focus     int
	status    string
	width     int
	quitting  bool
	keys      keyMap
	help      help.Model
	log       *logger.Logger
}

// NewModel builds inputs and buttons for every form in cat. The first
// enabled field asking for auto focus receives focus, else the first
// enabled control.
func NewModel(cat *config.Catalog, opts Options) (Model, error) {
	reg, err := cat.Registry()
	if err != nil {
		return Model{}, err
	}

	name := cat.Theme
	if opts.ThemeName != "" {
		name = opts.ThemeName
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	m := Model{
		catalog:   cat,
		registry:  reg,
		themeName: name,
		focus:     -1,
		width:     width,
		keys:      defaultKeyMap(),
		help:      help.New(),
		log:       opts.Logger.Component("catalog"),
	}

	if !reg.Has(name) {
		m.log.Debug("unknown theme " + name + ", using light")
	}

	for _, form := range cat.Forms {
		view := formView{form: form}
		for _, field := range form.Fields {
			input := components.NewInput(field.TextField())
			view.controls = append(view.controls, &control{id: form.Name + "." + field.ID, input: &input})
		}
		for _, spec := range form.Buttons {
			if spec.ID == "" {
				spec.ID = spec.Label
			}
			button := components.NewButtonControl(spec.Button())
			view.controls = append(view.controls, &control{id: form.Name + "." + spec.ID, button: &button})
		}
		m.forms = append(m.forms, view)
		m.controls = append(m.controls, view.controls...)
	}

	m.focus = m.initialFocus()
	for i, c := range m.controls {
		if i == m.focus {
			c.focus()
			continue
		}
		c.blur()
	}

	return m, nil
}

func (m Model) initialFocus() int {
	for i, c := range m.controls {
		if c.input != nil && c.input.Field().AutoFocus() && !c.disabled() {
			return i
		}
	}
	for i, c := range m.controls {
		if !c.disabled() {
			return i
		}
	}
	return -1
}

// Init starts the cursor blink of the initially focused input.
func (m Model) Init() tea.Cmd {
	if c := m.current(); c != nil && c.input != nil {
		return c.input.Init()
	}
	return nil
}

func (m Model) current() *control {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return nil
	}
	return m.controls[m.focus]
}

// Focused returns the id of the focused control as "form.control", or "".
func (m Model) Focused() string {
	if c := m.current(); c != nil {
		return c.id
	}
	return ""
}

// ThemeName returns the requested top-level theme.
func (m Model) ThemeName() string {
	return m.themeName
}

// Theme returns the top-level theme in effect.
func (m Model) Theme() *theme.Theme {
	return m.registry.Resolve(m.themeName)
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Field returns the text field with the given form and field id.
func (m Model) Field(form, id string) (*components.TextField, bool) {
	for _, c := range m.controls {
		if c.input != nil && c.id == form+"."+id {
			return c.input.Field(), true
		}
	}
	return nil, false
}
