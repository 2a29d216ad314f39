package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

// Button is an actionable control. It holds configuration only; its look is
// computed from the theme in the render context on every render.
type Button struct {
	BaseComponent
	id        string
	name      string
	label     string
	variant   ButtonVariant
	size      Size
	color     theme.Role
	disabled  bool
	fullWidth bool
	focused   bool
	startIcon string
	endIcon   string
	onClick   func()
}

// ButtonAppearance is the visual description a Button resolves to.
type ButtonAppearance struct {
	Background  lipgloss.Color
	Foreground  lipgloss.Color
	BorderColor lipgloss.Color
	Border      lipgloss.Border
	HasBorder   bool
	PaddingX    int
	PaddingY    int
	Width       int
	Bold        bool
	Faint       bool
	Underline   bool
	Shadow      string
	Cursor      string
}

// NewButton creates a contained, medium, primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonContained,
		size:          SizeMedium,
		color:         theme.RolePrimary,
	}
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the theme published in ctx.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	t := ctx.Theme()
	look := b.Appearance(ctx)

	style := b.ComputeStyle(t).
		Padding(look.PaddingY, look.PaddingX).
		Bold(look.Bold).
		Faint(look.Faint).
		Underline(look.Underline).
		Foreground(look.Foreground).
		Align(lipgloss.Center)
	if look.Background != "" {
		style = style.Background(look.Background)
	}
	if look.HasBorder {
		style = style.Border(look.Border).BorderForeground(look.BorderColor)
	}
	if look.Width > 0 {
		inner := look.Width
		if look.HasBorder {
			inner -= 2
		}
		style = style.Width(max(inner, 0))
	}

	return style.Render(b.content())
}

// Appearance computes the button's visual description without rendering it.
func (b *Button) Appearance(ctx RenderContext) ButtonAppearance {
	t := ctx.Theme()
	set := t.Role(b.color)
	text := t.Palette().Text

	look := ButtonAppearance{
		Bold:      true,
		Faint:     b.disabled,
		Underline: b.focused && !b.disabled,
		Cursor:    "pointer",
	}
	if b.disabled {
		look.Cursor = "not-allowed"
	}
	look.PaddingY, look.PaddingX = buttonPadding(b.size)

	switch b.variant {
	case ButtonOutlined:
		look.Foreground = set.Main
		look.HasBorder = true
		look.Border = t.Border()
		look.BorderColor = set.Main
	case ButtonText:
		look.Foreground = set.Main
	default:
		look.Background = set.Main
		look.Foreground = set.ContrastText
		if b.disabled {
			look.Background = set.Disabled
		} else if shadow, ok := t.Shadow("light"); ok {
			look.Shadow = shadow
		}
	}
	if b.disabled {
		look.Foreground = text.Disabled
	}

	if b.fullWidth {
		look.Width = ctx.AvailableWidth()
	}
	return look
}

func buttonPadding(size Size) (vertical, horizontal int) {
	switch size {
	case SizeSmall:
		return 0, 1
	case SizeLarge:
		return 1, 3
	default:
		return 0, 2
	}
}

func (b *Button) content() string {
	parts := make([]string, 0, 3)
	if b.startIcon != "" {
		parts = append(parts, b.startIcon)
	}
	parts = append(parts, b.label)
	if b.endIcon != "" {
		parts = append(parts, b.endIcon)
	}
	return strings.Join(parts, " ")
}

// Click forwards the click notification unless the button is disabled.
// It reports whether the callback ran.
func (b *Button) Click() bool {
	if b.disabled || b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}

// WithID sets the identifier.
func (b *Button) WithID(id string) *Button {
	b.id = id
	return b
}

// WithName sets the form name.
func (b *Button) WithName(name string) *Button {
	b.name = name
	return b
}

// WithVariant sets the fill variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the size.
func (b *Button) WithSize(size Size) *Button {
	b.size = size
	return b
}

// WithColor sets the semantic role the button is painted with.
func (b *Button) WithColor(role theme.Role) *Button {
	b.color = role
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFullWidth makes the button fill the available width.
func (b *Button) WithFullWidth(fullWidth bool) *Button {
	b.fullWidth = fullWidth
	return b
}

// WithFocused sets the transient focus flag.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithStartIcon sets content drawn before the label.
func (b *Button) WithStartIcon(icon string) *Button {
	b.startIcon = icon
	return b
}

// WithEndIcon sets content drawn after the label.
func (b *Button) WithEndIcon(icon string) *Button {
	b.endIcon = icon
	return b
}

// WithOnClick sets the click callback.
func (b *Button) WithOnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// WithStyle sets the base lipgloss style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// ID returns the identifier.
func (b *Button) ID() string { return b.id }

// Name returns the form name.
func (b *Button) Name() string { return b.name }

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// Variant returns the fill variant.
func (b *Button) Variant() ButtonVariant { return b.variant }

// Size returns the size.
func (b *Button) Size() Size { return b.size }

// Color returns the semantic role.
func (b *Button) Color() theme.Role { return b.color }

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool { return b.disabled }

// IsFullWidth returns true if the button fills the available width.
func (b *Button) IsFullWidth() bool { return b.fullWidth }
