package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uicontrols/internal/tui/catalog"
)

type catalogOptions struct {
	catalogPath string
	themeName   string
}

func (o *catalogOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.catalogPath, "catalog", "", "Catalog file (default: built-in demo)")
	cmd.Flags().StringVar(&o.themeName, "theme", "", "Top-level theme name")
}

func newDemoCmd(app *appContext) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive catalog",
		Long:  `Run the catalog as an interactive program: tab moves focus, ctrl+t toggles light and dark, esc quits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.catalog(opts.catalogPath)
			if err != nil {
				return err
			}

			m, err := catalog.NewModel(cat, catalog.Options{
				ThemeName: app.themeName(opts.themeName),
				Logger:    app.log,
			})
			if err != nil {
				return fmt.Errorf("build catalog: %w", err)
			}

			app.log.Info("launching catalog")
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				app.log.Error(err, "catalog execution failed")
				return fmt.Errorf("failed to run catalog: %w", err)
			}
			return nil
		},
	}

	opts.bind(cmd)
	return cmd
}
