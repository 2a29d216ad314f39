package theme

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/alexisbeaulieu97/uicontrols/pkg/errors"
)

// Role names a semantic colour category independent of any concrete colour.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleSuccess   Role = "success"
	RoleWarning   Role = "warning"
	RoleError     Role = "error"
	RoleInfo      Role = "info"
)

var roles = []Role{RolePrimary, RoleSecondary, RoleSuccess, RoleWarning, RoleError, RoleInfo}

// Roles returns every semantic role a complete palette defines, in declaration order.
func Roles() []Role {
	return slices.Clone(roles)
}

// ParseRole converts a role identifier into a Role.
func ParseRole(value string) (Role, bool) {
	candidate := Role(strings.ToLower(strings.TrimSpace(value)))
	if slices.Contains(roles, candidate) {
		return candidate, true
	}
	return "", false
}

// Mode tells whether a theme is meant for light or dark backgrounds.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// RolePalette is the colour set of one semantic role.
//
//   - Main: the role colour itself
//   - Dark, Light: shades used for hover and subtle accents
//   - ContrastText: text drawn on top of Main
//   - Disabled: Main replacement while a control is disabled
type RolePalette struct {
	Main         lipgloss.Color
	Dark         lipgloss.Color
	Light        lipgloss.Color
	ContrastText lipgloss.Color
	Disabled     lipgloss.Color
}

// BackgroundColors are the surface colours a theme paints behind content.
type BackgroundColors struct {
	Default lipgloss.Color
	Paper   lipgloss.Color
}

// TextColors are the foreground colours for plain text.
type TextColors struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Disabled  lipgloss.Color
}

// ActionColors are the colours of interaction affordances.
type ActionColors struct {
	Hover    lipgloss.Color
	Focus    lipgloss.Color
	Disabled lipgloss.Color
}

// Palette maps semantic roles to colour sets and carries the fixed entries
// every theme provides. A Palette is a value: changing a copy never affects
// the theme it was read from.
type Palette struct {
	roles map[Role]RolePalette

	Background  BackgroundColors
	Text        TextColors
	Divider     lipgloss.Color
	Transparent lipgloss.Color
	Action      ActionColors
}

// NewPalette creates a palette holding the given role colour sets.
func NewPalette(roles map[Role]RolePalette) Palette {
	return Palette{roles: maps.Clone(roles)}
}

// Role returns the colour set for r and whether the palette defines it.
func (p Palette) Role(r Role) (RolePalette, bool) {
	set, ok := p.roles[r]
	return set, ok
}

// WithRole returns a copy of the palette with r set to set.
func (p Palette) WithRole(r Role, set RolePalette) Palette {
	next := maps.Clone(p.roles)
	if next == nil {
		next = make(map[Role]RolePalette, len(roles))
	}
	next[r] = set
	p.roles = next
	return p
}

// ButtonTypography holds the text tokens used by buttons.
type ButtonTypography struct {
	FontFamily    string
	FontWeight    int
	FontSize      string
	LineHeight    float64
	LetterSpacing string
	TextTransform string
}

// Typography holds font tokens.
type Typography struct {
	FontFamily     string
	FontSizeSmall  string
	FontSizeMedium string
	FontSizeLarge  string
	Button         ButtonTypography
}

// Shape holds geometry tokens.
type Shape struct {
	BorderRadius string
}

// Definition is the mutable blueprint a Theme is built from.
type Definition struct {
	Name       string
	Mode       Mode
	Palette    Palette
	Typography Typography
	Shape      Shape
	Spacing    map[string]string
	Shadows    map[string]string
}

// Theme is an immutable, named visual vocabulary. Themes are shared between
// renderers and are only ever read; every accessor returns a copy.
type Theme struct {
	name       string
	mode       Mode
	palette    Palette
	typography Typography
	shape      Shape
	spacing    map[string]string
	shadows    map[string]string
}

// New builds a Theme from def. The definition is copied, so later changes
// to def do not leak into the theme.
func New(def Definition) *Theme {
	palette := def.Palette
	palette.roles = maps.Clone(def.Palette.roles)

	return &Theme{
		name:       def.Name,
		mode:       def.Mode,
		palette:    palette,
		typography: def.Typography,
		shape:      def.Shape,
		spacing:    maps.Clone(def.Spacing),
		shadows:    maps.Clone(def.Shadows),
	}
}

// Derive builds a new theme named name from base, letting edit adjust a copy
// of the base definition first.
func Derive(base *Theme, name string, edit func(*Definition)) *Theme {
	def := base.Definition()
	def.Name = name
	if edit != nil {
		edit(&def)
	}
	return New(def)
}

// Definition returns a copy of the data the theme was built from.
func (t *Theme) Definition() Definition {
	palette := t.palette
	palette.roles = maps.Clone(t.palette.roles)

	return Definition{
		Name:       t.name,
		Mode:       t.mode,
		Palette:    palette,
		Typography: t.typography,
		Shape:      t.shape,
		Spacing:    maps.Clone(t.spacing),
		Shadows:    maps.Clone(t.shadows),
	}
}

// Name returns the theme identifier.
func (t *Theme) Name() string { return t.name }

// Mode returns whether the theme targets light or dark backgrounds.
func (t *Theme) Mode() Mode { return t.mode }

// Palette returns the theme palette.
func (t *Theme) Palette() Palette { return t.palette }

// Typography returns the font tokens.
func (t *Theme) Typography() Typography { return t.typography }

// Shape returns the geometry tokens.
func (t *Theme) Shape() Shape { return t.shape }

// Spacing returns the named spacing token.
func (t *Theme) Spacing(name string) (string, bool) {
	value, ok := t.spacing[name]
	return value, ok
}

// Shadow returns the named shadow token.
func (t *Theme) Shadow(name string) (string, bool) {
	value, ok := t.shadows[name]
	return value, ok
}

// SpacingTokens returns a copy of every spacing token.
func (t *Theme) SpacingTokens() map[string]string { return maps.Clone(t.spacing) }

// ShadowTokens returns a copy of every shadow token.
func (t *Theme) ShadowTokens() map[string]string { return maps.Clone(t.shadows) }

// Role returns the colour set for r. A theme lacking a role a renderer
// asks for is misconfigured, so Role panics with a *errors.ConfigError.
func (t *Theme) Role(r Role) RolePalette {
	set, ok := t.palette.Role(r)
	if !ok {
		panic(apperrors.NewConfigError(t.name, "palette."+string(r), "role is not defined"))
	}
	return set
}

// Border returns the terminal border matching the theme's corner radius.
func (t *Theme) Border() lipgloss.Border {
	if radiusIsZero(t.shape.BorderRadius) {
		return lipgloss.NormalBorder()
	}
	return lipgloss.RoundedBorder()
}

func radiusIsZero(radius string) bool {
	trimmed := strings.TrimSpace(radius)
	for _, unit := range []string{"px", "rem", "em", "%"} {
		trimmed = strings.TrimSuffix(trimmed, unit)
	}
	if trimmed == "" {
		return true
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	return err == nil && value == 0
}

// Validate reports the first gap that would stop a renderer from using the theme.
func (t *Theme) Validate() error {
	if strings.TrimSpace(t.name) == "" {
		return apperrors.NewConfigError("", "name", "theme name is required")
	}
	for _, r := range roles {
		set, ok := t.palette.Role(r)
		if !ok {
			return apperrors.NewConfigError(t.name, "palette."+string(r), "role is not defined")
		}
		if set.Main == "" {
			return apperrors.NewConfigError(t.name, "palette."+string(r)+".main", "main colour is empty")
		}
	}
	return nil
}
