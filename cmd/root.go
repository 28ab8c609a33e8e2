package cmd

import (
	"context"
	"io"
	"os"

	"github.com/edwinhayes/e6launch/config"
	"github.com/edwinhayes/e6launch/launch"
	"github.com/edwinhayes/e6launch/ros"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App carries what the commands share. Tests swap the filesystem and the
// command runner.
type App struct {
	Fs        afero.Fs
	Runner    launch.CommandRunner
	LookupEnv func(string) (string, bool)

	cfgPath  string
	logLevel string

	config *config.Configuration
	logger *logrus.Logger
}

// NewApp returns an App backed by the OS.
func NewApp() *App {
	return &App{
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// NewRootCommand builds the e6launch command tree.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "e6launch",
		Short: "Dobot E6 visualization launcher",
		Long: `Starts robot_state_publisher with the Dobot E6 description and,
optionally, the joint state publishers and RViz.

Launch arguments are passed as name:=value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&app.cfgPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "log level (overrides the configuration file)")

	rootCmd.AddCommand(newLaunchCommand(app))
	rootCmd.AddCommand(newPlanCommand(app))
	rootCmd.AddCommand(newShowArgsCommand(app))
	return rootCmd
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute(ctx context.Context) {
	cobra.CheckErr(NewRootCommand(NewApp()).ExecuteContext(ctx))
}

func (app *App) setup(logOut io.Writer) error {
	cfg, err := config.Load(app.Fs, app.cfgPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if app.logLevel != "" {
		level = app.logLevel
	}
	logger, err := ros.NewLogger(level, logOut)
	if err != nil {
		return err
	}
	app.config = cfg
	app.logger = logger
	return nil
}
