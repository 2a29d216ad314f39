package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
	"github.com/alexisbeaulieu97/uicontrols/pkg/validation"
)

const passwordMask = "•"

// TextField is a labeled input. The value is supplied by the caller; the
// error state is derived from the validation rules on every render and on
// every SetValue.
type TextField struct {
	BaseComponent
	id           string
	name         string
	label        string
	placeholder  string
	value        *string
	defaultValue *string
	fieldType    FieldType
	disabled     bool
	fullWidth    bool
	size         Size
	variant      FieldVariant
	rules        []validation.Rule
	helperText   string
	readOnly     bool
	autoFocus    bool
	focused      bool
	onChange     func(string)
}

// TextFieldAppearance is the visual description a TextField resolves to.
type TextFieldAppearance struct {
	LabelColor  lipgloss.Color
	Foreground  lipgloss.Color
	Background  lipgloss.Color
	BorderColor lipgloss.Color
	Border      lipgloss.Border
	BorderTop   bool
	BorderSide  bool
	BorderBelow bool
	HelperColor lipgloss.Color
	Helper      string
	Invalid     bool
	Width       int
	PaddingX    int
	Faint       bool
}

// NewTextField creates an outlined, medium text field.
func NewTextField(id string) *TextField {
	return &TextField{
		BaseComponent: NewBaseComponent(),
		id:            id,
		fieldType:     FieldText,
		size:          SizeMedium,
		variant:       FieldOutlined,
	}
}

// Error returns the message of the first violated rule. A field whose value
// was never supplied reports no error.
func (f *TextField) Error() (string, bool) {
	return validation.Evaluate(f.value, f.rules)
}

// Invalid reports whether the field currently fails validation.
func (f *TextField) Invalid() bool {
	_, failed := f.Error()
	return failed
}

// DescribedBy returns the id of the helper text element, or "" without helper text.
func (f *TextField) DescribedBy() string {
	if f.helperText == "" {
		return ""
	}
	return f.id + "-helper-text"
}

// HelperLine returns the text shown under the input: the validation message
// when invalid, the helper text otherwise.
func (f *TextField) HelperLine() string {
	if message, failed := f.Error(); failed {
		return message
	}
	return f.helperText
}

// SetValue records a value change and forwards it to the change callback
// unchanged. Validation is re-run on the new value.
func (f *TextField) SetValue(value string) {
	f.value = &value
	if f.onChange != nil {
		f.onChange(value)
	}
}

// Value returns the supplied value and whether one was supplied.
func (f *TextField) Value() (string, bool) {
	if f.value == nil {
		return "", false
	}
	return *f.value, true
}

// DisplayValue returns the text the input shows: the value, else the default value.
func (f *TextField) DisplayValue() string {
	if f.value != nil {
		return *f.value
	}
	if f.defaultValue != nil {
		return *f.defaultValue
	}
	return ""
}

// View renders the field with the default context.
func (f *TextField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label, input box and helper line with the theme published in ctx.
func (f *TextField) ViewWithContext(ctx RenderContext) string {
	return f.render(ctx, "")
}

func (f *TextField) render(ctx RenderContext, content string) string {
	t := ctx.Theme()
	look := f.Appearance(ctx)

	rows := make([]string, 0, 3)

	if f.label != "" {
		label := lipgloss.NewStyle().Bold(true).Foreground(look.LabelColor).Faint(look.Faint)
		rows = append(rows, label.Render(f.label))
	}

	box := f.ComputeStyle(t).
		Foreground(look.Foreground).
		Faint(look.Faint).
		PaddingLeft(look.PaddingX).
		PaddingRight(look.PaddingX).
		Border(look.Border, look.BorderTop, look.BorderSide, look.BorderBelow, look.BorderSide).
		BorderForeground(look.BorderColor)
	if look.Background != "" {
		box = box.Background(look.Background)
	}
	inner := look.Width
	if look.BorderSide {
		inner -= 2
	}
	box = box.Width(max(inner, 1))

	if content == "" {
		content = f.displayContent(t, max(inner-2*look.PaddingX, 1))
	}
	rows = append(rows, box.Render(content))

	if look.Helper != "" {
		helper := lipgloss.NewStyle().Foreground(look.HelperColor)
		rows = append(rows, helper.Render(look.Helper))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *TextField) displayContent(t *theme.Theme, width int) string {
	text := f.DisplayValue()
	if text == "" {
		if f.placeholder == "" {
			return ""
		}
		placeholder := lipgloss.NewStyle().Foreground(t.Palette().Text.Disabled).Faint(true)
		return placeholder.Render(tail(f.placeholder, width))
	}
	if f.fieldType == FieldPassword {
		text = strings.Repeat(passwordMask, utf8.RuneCountInString(text))
	}
	return tail(text, width)
}

// tail keeps the end of s so the most recent input stays visible.
func tail(s string, width int) string {
	for lipgloss.Width(s) > width {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

// Appearance computes the field's visual description without rendering it.
func (f *TextField) Appearance(ctx RenderContext) TextFieldAppearance {
	t := ctx.Theme()
	p := t.Palette()
	message, invalid := f.Error()

	look := TextFieldAppearance{
		LabelColor:  p.Text.Primary,
		Foreground:  p.Text.Primary,
		BorderColor: p.Text.Secondary,
		HelperColor: p.Text.Secondary,
		Helper:      f.helperText,
		Invalid:     invalid,
		Width:       fieldWidth(f.size),
		PaddingX:    fieldPadding(f.size),
		Faint:       f.disabled,
	}
	if f.disabled {
		look.LabelColor = p.Text.Disabled
		look.Foreground = p.Text.Disabled
	}
	if f.focused && !f.disabled {
		look.BorderColor = t.Role(theme.RolePrimary).Main
	}
	if invalid {
		look.BorderColor = t.Role(theme.RoleError).Main
		look.HelperColor = t.Role(theme.RoleError).Main
		look.Helper = message
	}

	switch f.variant {
	case FieldFilled:
		look.Background = p.Background.Paper
		look.Border = lipgloss.ThickBorder()
		look.BorderBelow = true
	case FieldStandard:
		look.Border = lipgloss.NormalBorder()
		look.BorderBelow = true
	default:
		look.Border = t.Border()
		look.BorderTop, look.BorderSide, look.BorderBelow = true, true, true
	}

	if f.fullWidth {
		if width := ctx.AvailableWidth(); width > 0 {
			look.Width = width
		}
	}
	return look
}

func fieldWidth(size Size) int {
	switch size {
	case SizeSmall:
		return 24
	case SizeLarge:
		return 48
	default:
		return 36
	}
}

func fieldPadding(size Size) int {
	if size == SizeLarge {
		return 2
	}
	return 1
}

// WithName sets the form name.
func (f *TextField) WithName(name string) *TextField {
	f.name = name
	return f
}

// WithLabel sets the label drawn above the input.
func (f *TextField) WithLabel(label string) *TextField {
	f.label = label
	return f
}

// WithPlaceholder sets the text shown while the input is empty.
func (f *TextField) WithPlaceholder(placeholder string) *TextField {
	f.placeholder = placeholder
	return f
}

// WithValue supplies the current value. Validation only runs once a value is supplied.
func (f *TextField) WithValue(value string) *TextField {
	f.value = &value
	return f
}

// WithDefaultValue sets the initial text of an uncontrolled field.
func (f *TextField) WithDefaultValue(value string) *TextField {
	f.defaultValue = &value
	return f
}

// WithType sets the accepted value kind.
func (f *TextField) WithType(fieldType FieldType) *TextField {
	f.fieldType = fieldType
	return f
}

// WithDisabled sets the disabled state.
func (f *TextField) WithDisabled(disabled bool) *TextField {
	f.disabled = disabled
	return f
}

// WithFullWidth makes the field fill the available width.
func (f *TextField) WithFullWidth(fullWidth bool) *TextField {
	f.fullWidth = fullWidth
	return f
}

// WithSize sets the size.
func (f *TextField) WithSize(size Size) *TextField {
	f.size = size
	return f
}

// WithVariant sets how the input box is drawn.
func (f *TextField) WithVariant(variant FieldVariant) *TextField {
	f.variant = variant
	return f
}

// WithValidations sets the ordered rule list.
func (f *TextField) WithValidations(rules ...validation.Rule) *TextField {
	f.rules = rules
	return f
}

// WithHelperText sets the text shown under a valid input.
func (f *TextField) WithHelperText(text string) *TextField {
	f.helperText = text
	return f
}

// WithReadOnly sets the read-only state.
func (f *TextField) WithReadOnly(readOnly bool) *TextField {
	f.readOnly = readOnly
	return f
}

// WithAutoFocus requests focus when the field is first shown.
func (f *TextField) WithAutoFocus(autoFocus bool) *TextField {
	f.autoFocus = autoFocus
	return f
}

// WithFocused sets the transient focus flag.
func (f *TextField) WithFocused(focused bool) *TextField {
	f.focused = focused
	return f
}

// WithOnChange sets the change callback.
func (f *TextField) WithOnChange(fn func(string)) *TextField {
	f.onChange = fn
	return f
}

// WithStyle sets the base style of the input box.
func (f *TextField) WithStyle(style lipgloss.Style) *TextField {
	f.SetStyle(style)
	return f
}

// ID returns the identifier.
func (f *TextField) ID() string { return f.id }

// Name returns the form name.
func (f *TextField) Name() string { return f.name }

// Label returns the label.
func (f *TextField) Label() string { return f.label }

// Placeholder returns the placeholder.
func (f *TextField) Placeholder() string { return f.placeholder }

// Type returns the accepted value kind.
func (f *TextField) Type() FieldType { return f.fieldType }

// Rules returns the ordered rule list.
func (f *TextField) Rules() []validation.Rule { return f.rules }

// IsDisabled returns true if the field is disabled.
func (f *TextField) IsDisabled() bool { return f.disabled }

// IsReadOnly returns true if the field is read-only.
func (f *TextField) IsReadOnly() bool { return f.readOnly }

// AutoFocus returns true if the field requests focus when shown.
func (f *TextField) AutoFocus() bool { return f.autoFocus }
