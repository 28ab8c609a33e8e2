package cmd

import (
	"context"

	"github.com/edwinhayes/e6launch/ament"
	"github.com/edwinhayes/e6launch/e6bringup"
	"github.com/edwinhayes/e6launch/launch"
	"github.com/edwinhayes/e6launch/ros"
	"github.com/pkg/errors"
)

func (app *App) index() *ament.Index {
	prefixes := app.config.AmentPrefixPath
	if len(prefixes) == 0 {
		value, _ := app.LookupEnv(ament.PrefixPathEnv)
		prefixes = ament.SplitPrefixPath(value)
	}
	return ament.NewIndex(app.Fs, prefixes)
}

// suppliedArguments merges configuration file values with command line
// values; the command line wins.
func (app *App) suppliedArguments(args []string) (ros.NameMap, error) {
	cli, rest, err := ros.ParseArguments(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.Errorf("unexpected argument %q: launch arguments are passed as name:=value", rest[0])
	}

	supplied, err := app.config.LaunchArguments()
	if err != nil {
		return nil, err
	}
	for k, v := range cli {
		supplied[k] = v
	}
	return supplied, nil
}

func (app *App) resolve(ctx context.Context, args []string) (*launch.Plan, error) {
	supplied, err := app.suppliedArguments(args)
	if err != nil {
		return nil, err
	}
	env, err := ros.EnvironmentFrom(app.LookupEnv)
	if err != nil {
		return nil, err
	}

	lc := launch.NewContext(ctx, app.index(), app.logger)
	lc.Fs = app.Fs
	lc.Env = env
	lc.Runner = app.Runner
	if lc.Runner == nil {
		lc.Runner = launch.ExecRunner{Env: env.Vars()}
	}

	return e6bringup.RobotStatePublisher().Resolve(lc, supplied)
}
