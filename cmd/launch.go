package cmd

import (
	"github.com/edwinhayes/e6launch/launch"
	"github.com/edwinhayes/e6launch/ros"
	"github.com/spf13/cobra"
)

func newLaunchCommand(app *App) *cobra.Command {
	var printOnly bool

	launchCmd := &cobra.Command{
		Use:   "launch [name:=value ...]",
		Short: "Start the visualization stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.resolve(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer func() {
				if err := plan.RemoveParamsFiles(app.Fs); err != nil {
					app.logger.Warn(err)
				}
			}()
			if printOnly {
				return plan.WriteText(cmd.OutOrStdout())
			}

			logDir := app.config.LogDir
			if logDir == "" {
				logDir = ros.LogDirFrom(app.LookupEnv)
			}
			executor := launch.NewExecutor(app.logger, logDir)
			executor.Fs = app.Fs
			if d, _ := app.config.SigtermTimeoutDuration(); d > 0 {
				executor.SigtermTimeout = d
			}
			if d, _ := app.config.SigkillTimeoutDuration(); d > 0 {
				executor.SigkillTimeout = d
			}

			app.logger.Infof("all log files can be found below %s", logDir)
			return executor.Run(cmd.Context(), plan)
		},
	}
	launchCmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the resolved plan instead of launching")
	return launchCmd
}
