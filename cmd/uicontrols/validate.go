package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uicontrols/pkg/validation"
)

type validateOptions struct {
	catalogPath string
	form        string
	field       string
}

func newValidateCmd(app *appContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate VALUE",
		Short: "Check a value against a catalog field's rules",
		Long:  `Evaluate VALUE against the validation rules of one catalog field. Prints the first violated rule's message and exits non-zero when the value is invalid.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.catalog(opts.catalogPath)
			if err != nil {
				return err
			}

			form, ok := cat.Form(opts.form)
			if !ok {
				return fmt.Errorf("form %q not found", opts.form)
			}
			field, ok := form.Field(opts.field)
			if !ok {
				return fmt.Errorf("field %q not found in form %q", opts.field, opts.form)
			}

			result := validation.EvaluateResult(&args[0], field.Rules())
			if !result.Failed {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}

			app.log.WithFields(map[string]any{"form": opts.form, "field": opts.field, "rule": result.Index}).Debug("validation failed")
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return fmt.Errorf("%s.%s is invalid: %s", opts.form, opts.field, result.Message)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file (default: built-in demo)")
	cmd.Flags().StringVar(&opts.form, "form", "", "Form name")
	cmd.Flags().StringVar(&opts.field, "field", "", "Field id")
	_ = cmd.MarkFlagRequired("form")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}
