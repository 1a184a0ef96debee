package app

import (
	"context"
	"errors"

	"github.com/rpggio/yamtik/internal/cli"
	"github.com/rpggio/yamtik/internal/mcp"
	"github.com/spf13/pflag"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (a *App) serveCommand(ctx context.Context) *cli.Command {
	var storePath string
	return &cli.Command{
		Name:        "serve",
		Summary:     "Serve the ticket store as MCP tools over stdio",
		Description: "Runs until stdin closes or the process is interrupted. Stdout carries only protocol messages.",
		Usage:       "[flags]",
		Flags: func() *pflag.FlagSet {
			return a.flagSet("serve", &storePath)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usage(errors.New("serve takes no arguments"))
			}
			svc, err := a.service(storePath)
			if err != nil {
				return err
			}

			server := mcp.NewServer(mcp.Config{
				Tickets:       svc,
				DefaultFilter: a.Config.List.Filter,
				DefaultSort:   a.Config.List.Sort,
				Logger:        a.Logger,
			})
			if a.Logger != nil {
				a.Logger.Info("starting stdio transport", "store", storePath)
			}
			err = server.Run(ctx, &sdkmcp.StdioTransport{})
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
