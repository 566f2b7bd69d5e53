// Package main is the entry point for the credctl tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/credkit/cmd/credctl/commands"
	"go.trai.ch/credkit/internal/adapters/logger"
	"go.trai.ch/credkit/internal/adapters/manifest"
	"go.trai.ch/credkit/internal/app"
	"go.trai.ch/credkit/internal/core/ports"
)

// components holds the wired application pieces.
type components struct {
	app    *app.App
	logger ports.Logger
}

// componentProvider is a function that returns the application components.
type componentProvider func(context.Context) (*components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(context.Context) (*components, error) {
		log := logger.New()
		loader := manifest.NewLoader(log)
		return &components{
			app:    app.New(loader, log),
			logger: log,
		}, nil
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider componentProvider) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	c, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(c.app)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		c.logger.Error(err)
		return 1
	}
	return 0
}
