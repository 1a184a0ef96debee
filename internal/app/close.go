package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpggio/yamtik/internal/cli"
	"github.com/spf13/pflag"
)

func (a *App) closeCommand(ctx context.Context) *cli.Command {
	var storePath string
	return &cli.Command{
		Name:    "close",
		Summary: "Close a ticket",
		Usage:   "<id> [flags]",
		Flags: func() *pflag.FlagSet {
			return a.flagSet("close", &storePath)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usage(errors.New("close takes exactly one ticket id"))
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, err := a.service(storePath)
			if err != nil {
				return err
			}
			if _, err := svc.Close(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "Issue ticket #%d closed!\n", id)
			return nil
		},
	}
}
