package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newPlanCommand(app *App) *cobra.Command {
	var output string

	planCmd := &cobra.Command{
		Use:   "plan [name:=value ...]",
		Short: "Print the processes a launch would start",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return errors.Errorf("unknown output format %q", output)
			}
			plan, err := app.resolve(cmd.Context(), args)
			if err != nil {
				return err
			}
			if output == "json" {
				err = plan.WriteJSON(cmd.OutOrStdout())
			} else {
				err = plan.WriteText(cmd.OutOrStdout())
			}
			if rmErr := plan.RemoveParamsFiles(app.Fs); err == nil {
				err = rmErr
			}
			return err
		},
	}
	planCmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return planCmd
}
