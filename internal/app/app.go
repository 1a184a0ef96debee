// Package app wires the yamtik command tree: every subcommand resolves a
// store path, runs one ticket.Service call and renders the result.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/rpggio/yamtik/internal/cli"
	"github.com/rpggio/yamtik/internal/config"
	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/rpggio/yamtik/internal/yamlstore"
	"github.com/spf13/pflag"
)

// App holds what the commands need from the process.
type App struct {
	Config config.Config
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
	// Now overrides the clock used to stamp dates. Nil means time.Now.
	Now func() time.Time
}

// Root returns the yamtik command tree. ctx is passed to every service call.
func (a *App) Root(ctx context.Context) *cli.Command {
	return &cli.Command{
		Name:        "yamtik",
		Description: "Write, list, read and close issue tickets stored in a YAML file.",
		Output:      a.Stderr,
		Subcommands: []*cli.Command{
			a.newCommand(ctx),
			a.listCommand(ctx),
			a.showCommand(ctx),
			a.closeCommand(ctx),
			a.serveCommand(ctx),
		},
	}
}

func (a *App) flagSet(name string, storePath *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVar(storePath, "store", a.Config.Store.Path, "path to the tickets .yaml file")
	return fs
}

// service checks the store path before anything touches the filesystem.
func (a *App) service(storePath string) (*ticket.Service, error) {
	if err := yamlstore.CheckPath(storePath); err != nil {
		return nil, cli.Usage(err)
	}
	opts := []ticket.Option{}
	if a.Now != nil {
		opts = append(opts, ticket.WithClock(a.Now))
	}
	logger := a.Logger
	if logger != nil {
		logger = logger.With("store", storePath)
	}
	return ticket.NewService(yamlstore.New(storePath), logger, opts...), nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, cli.Usage(fmt.Errorf("%w: ticket id %q is not an integer", ticket.ErrInvalidArgument, arg))
	}
	return id, nil
}
