// Package main is the entry point for the pkgraph CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgraph/cmd/pkgraph/commands"
	"go.trai.ch/pkgraph/internal/app"
	_ "go.trai.ch/pkgraph/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// logConfigurer is implemented by loggers honouring the output flags.
type logConfigurer interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Progress.Close() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if lc, ok := components.Logger.(logConfigurer); ok {
		lc.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)
	cli.SetGlobalsHook(func(g commands.Globals) {
		if lc, ok := components.Logger.(logConfigurer); ok {
			lc.SetJSON(g.JSONLogs)
			lc.SetVerbose(g.Verbose)
		}
		if g.Progress && components.Progress != nil {
			components.Progress.SetMirror(stderr)
		}
	})

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
