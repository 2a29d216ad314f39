package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

// Background applies a role colour as background with its contrast text as foreground.
//
// Example:
//
//	text := NewText("Saved").WithAppliers(Background(theme.RoleSuccess))
func Background(role theme.Role) StyleFunc {
	return func(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
		set := t.Role(role)
		return base.Background(set.Main).Foreground(set.ContrastText)
	}
}

// Foreground applies a role colour to text without changing the background.
func Foreground(role theme.Role) StyleFunc {
	return func(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
		return base.Foreground(t.Role(role).Main)
	}
}

// PrimaryText colours text with the theme's primary text colour.
func PrimaryText() StyleFunc {
	return func(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
		return base.Foreground(t.Palette().Text.Primary)
	}
}

// SecondaryText colours text with the theme's secondary text colour.
func SecondaryText() StyleFunc {
	return func(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
		return base.Foreground(t.Palette().Text.Secondary)
	}
}

// Surface paints the theme's paper background.
func Surface() StyleFunc {
	return func(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
		p := t.Palette()
		return base.Background(p.Background.Paper).Foreground(p.Text.Primary)
	}
}

// Bordered draws the theme border in the divider colour.
func Bordered() StyleFunc {
	return func(base lipgloss.Style, t *theme.Theme) lipgloss.Style {
		return base.Border(t.Border()).BorderForeground(t.Palette().Divider)
	}
}

// Bold renders text in bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ *theme.Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ *theme.Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// MarginY adds n blank lines above and below.
func MarginY(n int) StyleFunc {
	return func(base lipgloss.Style, _ *theme.Theme) lipgloss.Style {
		return base.MarginTop(n).MarginBottom(n)
	}
}
