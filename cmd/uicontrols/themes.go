package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

func newThemesCmd(app *appContext) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "themes [NAME]",
		Short: "List themes or print a theme's tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.catalog(catalogPath)
			if err != nil {
				return err
			}
			reg, err := cat.Registry()
			if err != nil {
				return fmt.Errorf("build themes: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range reg.Names() {
					t, _ := reg.Lookup(name)
					fmt.Fprintf(out, "%-12s %s\n", name, t.Mode())
				}
				return nil
			}

			t, ok := reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q", args[0])
			}
			printTheme(out, t)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog whose custom themes are included")
	return cmd
}

func printTheme(out io.Writer, t *theme.Theme) {
	p := t.Palette()

	fmt.Fprintf(out, "name: %s\nmode: %s\n", t.Name(), t.Mode())
	fmt.Fprintln(out, "palette:")
	for _, role := range theme.Roles() {
		set := t.Role(role)
		fmt.Fprintf(out, "  %-10s main=%s dark=%s light=%s contrastText=%s disabled=%s\n",
			role, set.Main, set.Dark, set.Light, set.ContrastText, set.Disabled)
	}
	fmt.Fprintf(out, "  %-10s default=%s paper=%s\n", "background", p.Background.Default, p.Background.Paper)
	fmt.Fprintf(out, "  %-10s primary=%s secondary=%s disabled=%s\n", "text", p.Text.Primary, p.Text.Secondary, p.Text.Disabled)
	fmt.Fprintf(out, "  %-10s %s\n", "divider", p.Divider)
	fmt.Fprintf(out, "  %-10s hover=%s focus=%s disabled=%s\n", "action", p.Action.Hover, p.Action.Focus, p.Action.Disabled)

	typo := t.Typography()
	fmt.Fprintf(out, "typography: %s (button weight %d)\n", typo.FontFamily, typo.Button.FontWeight)
	fmt.Fprintf(out, "borderRadius: %s\n", t.Shape().BorderRadius)

	printTokens(out, "spacing", t.SpacingTokens())
	printTokens(out, "shadows", t.ShadowTokens())
}

func printTokens(out io.Writer, label string, tokens map[string]string) {
	if len(tokens) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", label)
	for _, key := range slices.Sorted(maps.Keys(tokens)) {
		fmt.Fprintf(out, "  %s: %s\n", key, tokens[key])
	}
}
