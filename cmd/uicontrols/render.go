package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/uicontrols/internal/tui/catalog"
)

const fallbackWidth = 80

func newRenderCmd(app *appContext) *cobra.Command {
	opts := &catalogOptions{}
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the catalog once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.catalog(opts.catalogPath)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = terminalWidth(cmd.OutOrStdout())
			}

			m, err := catalog.NewModel(cat, catalog.Options{
				ThemeName: app.themeName(opts.themeName),
				Width:     width,
				Logger:    app.log,
			})
			if err != nil {
				return fmt.Errorf("build catalog: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), m.Render())
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Render width in columns (default: terminal width)")
	return cmd
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
