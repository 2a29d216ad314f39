package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	app := &appContext{flags: &rootFlags{}}

	cmd := &cobra.Command{
		Use:           "uicontrols",
		Short:         "Themed buttons and validated text fields for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "Settings file (default ~/.uicontrols/config.yaml)")

	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newThemesCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
