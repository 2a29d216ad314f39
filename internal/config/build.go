package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uicontrols/pkg/components"
	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
	"github.com/alexisbeaulieu97/uicontrols/pkg/validation"
)

// Registry returns a registry holding the built-in themes plus every custom
// theme the catalog declares.
func (c *Catalog) Registry() (*theme.Registry, error) {
	reg := theme.NewRegistry()
	for _, spec := range c.Themes {
		if err := reg.Register(spec.Build()); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Build derives the theme from its base, light unless stated otherwise.
func (s ThemeSpec) Build() *theme.Theme {
	base := theme.Light()
	if s.Base == theme.NameDark {
		base = theme.Dark()
	}

	return theme.Derive(base, s.Name, func(def *theme.Definition) {
		if s.Mode != "" {
			def.Mode = theme.Mode(s.Mode)
		}
		for name, override := range s.Palette {
			role, ok := theme.ParseRole(name)
			if !ok {
				continue
			}
			current, _ := def.Palette.Role(role)
			def.Palette = def.Palette.WithRole(role, override.apply(current))
		}
		if s.Background != nil {
			setColor(&def.Palette.Background.Default, s.Background.Default)
			setColor(&def.Palette.Background.Paper, s.Background.Paper)
		}
		if s.Text != nil {
			setColor(&def.Palette.Text.Primary, s.Text.Primary)
			setColor(&def.Palette.Text.Secondary, s.Text.Secondary)
			setColor(&def.Palette.Text.Disabled, s.Text.Disabled)
		}
		setColor(&def.Palette.Divider, s.Divider)
		if s.BorderRadius != "" {
			def.Shape.BorderRadius = s.BorderRadius
		}
	})
}

func (r RoleSpec) apply(set theme.RolePalette) theme.RolePalette {
	setColor(&set.Main, r.Main)
	setColor(&set.Dark, r.Dark)
	setColor(&set.Light, r.Light)
	setColor(&set.ContrastText, r.ContrastText)
	setColor(&set.Disabled, r.Disabled)
	return set
}

func setColor(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}

// Rules converts the field's rule specs, keeping their order.
func (f Field) Rules() []validation.Rule {
	rules := make([]validation.Rule, 0, len(f.Validations))
	for _, spec := range f.Validations {
		rules = append(rules, spec.Rule())
	}
	return rules
}

// Rule converts the spec. Malformed specs yield rules the evaluator skips.
func (r RuleSpec) Rule() validation.Rule {
	return validation.FromSpec(r.Type, r.Value, r.Message)
}

// TextField builds the text field described by f.
func (f Field) TextField() *components.TextField {
	field := components.NewTextField(f.ID).
		WithName(f.Name).
		WithLabel(f.Label).
		WithPlaceholder(f.Placeholder).
		WithType(components.ParseFieldType(f.Type)).
		WithSize(components.ParseSize(f.Size)).
		WithVariant(components.ParseFieldVariant(f.Variant)).
		WithHelperText(f.HelperText).
		WithDisabled(f.Disabled).
		WithReadOnly(f.ReadOnly).
		WithFullWidth(f.FullWidth).
		WithAutoFocus(f.AutoFocus).
		WithValidations(f.Rules()...)

	if f.Value != nil {
		field.WithValue(*f.Value)
	}
	if f.DefaultValue != nil {
		field.WithDefaultValue(*f.DefaultValue)
	}
	return field
}

// Button builds the button described by b.
func (b ButtonSpec) Button() *components.Button {
	color := theme.RolePrimary
	if role, ok := theme.ParseRole(b.Color); ok {
		color = role
	}

	return components.NewButton(b.Label).
		WithID(b.ID).
		WithVariant(components.ParseButtonVariant(b.Variant)).
		WithSize(components.ParseSize(b.Size)).
		WithColor(color).
		WithDisabled(b.Disabled).
		WithFullWidth(b.FullWidth).
		WithStartIcon(b.StartIcon).
		WithEndIcon(b.EndIcon)
}
