package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/edwinhayes/e6launch/e6bringup"
	"github.com/edwinhayes/e6launch/launch"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newShowArgsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show-args",
		Short: "Show the launch arguments",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeArguments(cmd.OutOrStdout(), e6bringup.RobotStatePublisher())
		},
	}
}

func writeArguments(w io.Writer, ld *launch.Description) error {
	header := color.New(color.Bold)
	name := color.New(color.FgCyan)

	if _, err := header.Fprintln(w, "Arguments (pass arguments as '<name>:=<value>'):"); err != nil {
		return err
	}
	for _, a := range ld.Arguments {
		var b strings.Builder
		b.WriteString("\n    ")
		b.WriteString(name.Sprintf("'%s'", a.Name))
		b.WriteString(":\n        ")
		description := a.Description
		if description == "" {
			description = "no description given"
		}
		b.WriteString(description)
		if len(a.Choices) > 0 {
			fmt.Fprintf(&b, ". Valid choices are: %s", launch.QuoteList(a.Choices))
		}
		b.WriteString("\n")
		if a.Default != nil {
			fmt.Fprintf(&b, "        (default: %s)\n", a.DescribeDefault())
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
