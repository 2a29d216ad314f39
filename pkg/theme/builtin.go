package theme

import "github.com/charmbracelet/lipgloss"

// Built-in theme identifiers.
const (
	NameLight = "light"
	NameDark  = "dark"
)

const fontFamily = "Montserrat, Arial, sans-serif"

var (
	lightTheme = New(lightDefinition())
	darkTheme  = New(darkDefinition())
)

// Light returns the shared light theme.
func Light() *Theme {
	return lightTheme
}

// Dark returns the shared dark theme.
func Dark() *Theme {
	return darkTheme
}

func lightDefinition() Definition {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	palette := NewPalette(map[Role]RolePalette{
		RolePrimary:   {Main: c("#0d3c61"), Dark: c("#0d3c61"), Light: c("#1363a1"), ContrastText: c("#ffffff"), Disabled: c("#e0e0e0")},
		RoleSecondary: {Main: c("#e1f7fd"), Dark: c("#0d3c61"), Light: c("#a3adc4"), ContrastText: c("#000000"), Disabled: c("#f0f0f0")},
		RoleSuccess:   {Main: c("#2e7d32"), Dark: c("#1b5e20"), Light: c("#81c784"), ContrastText: c("#ffffff"), Disabled: c("#c8e6c9")},
		RoleWarning:   {Main: c("#ed6c02"), Dark: c("#e65100"), Light: c("#ffb74d"), ContrastText: c("#000000"), Disabled: c("#ffe0b2")},
		RoleError:     {Main: c("#d32f2f"), Dark: c("#b71c1c"), Light: c("#e57373"), ContrastText: c("#ffffff"), Disabled: c("#ffcdd2")},
		RoleInfo:      {Main: c("#01579b"), Dark: c("#01579b"), Light: c("#81d4fa"), ContrastText: c("#ffffff"), Disabled: c("#b3e5fc")},
	})
	palette.Background = BackgroundColors{Default: c("#ffffff"), Paper: c("#f5f5f5")}
	palette.Text = TextColors{Primary: c("#000000"), Secondary: c("#555555"), Disabled: c("#999999")}
	palette.Divider = c("#000000")
	palette.Transparent = c("#ffffff00")
	palette.Action = ActionColors{Hover: c("#e6f2fa"), Focus: c("#cce6f5"), Disabled: c("#f0f0f0")}

	return Definition{
		Name:       NameLight,
		Mode:       ModeLight,
		Palette:    palette,
		Typography: defaultTypography(),
		Shape:      Shape{BorderRadius: "4px"},
		Spacing:    map[string]string{"sm": "8px 16px", "md": "10px 20px"},
		Shadows: map[string]string{
			"light": "0px 1px 3px rgba(0,0,0,0.12)",
			"dark":  "0px 1px 3px rgba(0,0,0,0.24)",
		},
	}
}

func darkDefinition() Definition {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	palette := NewPalette(map[Role]RolePalette{
		RolePrimary:   {Main: c("#90caf9"), Dark: c("#42a5f5"), Light: c("#e3f2fd"), ContrastText: c("#0b1120"), Disabled: c("#37474f")},
		RoleSecondary: {Main: c("#ce93d8"), Dark: c("#ab47bc"), Light: c("#f3e5f5"), ContrastText: c("#0b1120"), Disabled: c("#3e2f44")},
		RoleSuccess:   {Main: c("#66bb6a"), Dark: c("#388e3c"), Light: c("#81c784"), ContrastText: c("#0b1120"), Disabled: c("#2e3d2f")},
		RoleWarning:   {Main: c("#ffa726"), Dark: c("#f57c00"), Light: c("#ffb74d"), ContrastText: c("#0b1120"), Disabled: c("#4a3b24")},
		RoleError:     {Main: c("#f44336"), Dark: c("#d32f2f"), Light: c("#e57373"), ContrastText: c("#ffffff"), Disabled: c("#4a2a2a")},
		RoleInfo:      {Main: c("#29b6f6"), Dark: c("#0288d1"), Light: c("#4fc3f7"), ContrastText: c("#0b1120"), Disabled: c("#1f3a4a")},
	})
	palette.Background = BackgroundColors{Default: c("#121212"), Paper: c("#1e1e1e")}
	palette.Text = TextColors{Primary: c("#ffffff"), Secondary: c("#b0b0b0"), Disabled: c("#6b6b6b")}
	palette.Divider = c("#ffffff1f")
	palette.Transparent = c("#00000000")
	palette.Action = ActionColors{Hover: c("#2a2a2a"), Focus: c("#333333"), Disabled: c("#3a3a3a")}

	return Definition{
		Name:       NameDark,
		Mode:       ModeDark,
		Palette:    palette,
		Typography: defaultTypography(),
		Shape:      Shape{BorderRadius: "4px"},
		Spacing:    map[string]string{"sm": "8px 16px", "md": "10px 20px"},
		Shadows: map[string]string{
			"light": "0px 1px 3px rgba(0,0,0,0.48)",
			"dark":  "0px 1px 3px rgba(0,0,0,0.72)",
		},
	}
}

func defaultTypography() Typography {
	return Typography{
		FontFamily:     fontFamily,
		FontSizeSmall:  "12px",
		FontSizeMedium: "14px",
		FontSizeLarge:  "16px",
		Button: ButtonTypography{
			FontFamily:    fontFamily,
			FontWeight:    500,
			FontSize:      "14px",
			LineHeight:    1.5,
			LetterSpacing: "0.02857em",
			TextTransform: "none",
		},
	}
}
