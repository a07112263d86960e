// Package main is the entry point for the mk launcher.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/cmd/mk/commands"
	"go.trai.ch/mk/internal/adapters/logger"
	"go.trai.ch/mk/internal/app"
	"go.trai.ch/mk/internal/build"
	_ "go.trai.ch/mk/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer, opts ...graft.Option) int {
	// The script shares the terminal's process group, so an interrupt reaches
	// it directly; mk keeps running until the script exits.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := app.NewApp(ctx, opts...)
	if err != nil {
		// The configured logger is not available yet if initialization failed
		logger.NewWithWriter(stderr, logger.DefaultLevel).Error(err)
		return 1
	}
	components.Logger.Debug("mk version " + build.Version)

	cli := commands.New(components.App)
	cli.SetArgs(args)

	code, err := cli.Execute(ctx)
	if err != nil {
		// zerr prints a report with stack trace and metadata when using %+v
		components.Logger.Debug(fmt.Sprintf("%+v", err))
		components.Logger.Error(err)
		return 1
	}
	return code
}
