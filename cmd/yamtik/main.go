package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rpggio/yamtik/internal/app"
	"github.com/rpggio/yamtik/internal/cli"
	"github.com/rpggio/yamtik/internal/config"
	"github.com/rpggio/yamtik/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	// Logs never go to stdout: it carries command output or, under serve,
	// JSON-RPC messages.
	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log setup error: %v\n", err)
		return 1
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app.App{
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	err = a.Root(ctx).Execute(args)
	if err != nil && !cli.Silent(err) {
		logger.Debug("command failed", "args", args, "error", err)
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
	}
	return cli.ExitCode(err)
}
