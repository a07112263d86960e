// Package commands implements the CLI for the mk launcher.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/mk/internal/app"
	"go.trai.ch/mk/internal/build"
)

// argsTerminator is prepended to the arguments so cobra never matches them
// against its hidden completion command.
const argsTerminator = "--"

// CLI represents the command line interface for mk.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app.
// Every argument is forwarded to the script, including ones that look like flags.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	c.rootCmd = &cobra.Command{
		Use:                "mk [args...]",
		Short:              "Run make.py with the project's virtual environment",
		Version:            build.Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsTerminator {
				args = args[1:]
			}
			code, err := c.app.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			c.exitCode = code
			return nil
		},
	}

	c.SetArgs(nil)
	return c
}

// Execute runs the root command with the given context and returns the
// script's exit status.
func (c *CLI) Execute(ctx context.Context) (int, error) {
	c.exitCode = 0
	if err := c.rootCmd.ExecuteContext(ctx); err != nil {
		return 1, err
	}
	return c.exitCode, nil
}

// SetArgs sets the arguments forwarded to the script.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(append([]string{argsTerminator}, args...))
}
