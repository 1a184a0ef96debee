package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpggio/yamtik/internal/cli"
	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/spf13/pflag"
)

func (a *App) showCommand(ctx context.Context) *cli.Command {
	var storePath string
	return &cli.Command{
		Name:    "show",
		Summary: "Show one ticket",
		Usage:   "<id> [flags]",
		Flags: func() *pflag.FlagSet {
			return a.flagSet("show", &storePath)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Usage(errors.New("show takes exactly one ticket id"))
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, err := a.service(storePath)
			if err != nil {
				return err
			}
			t, err := svc.Get(ctx, id)
			if errors.Is(err, ticket.ErrNotFound) {
				fmt.Fprintf(a.Stderr, "Ticket %d not found.\n", id)
				return &cli.ExitError{Code: 1}
			}
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(t, "", "  ")
			if err != nil {
				return fmt.Errorf("render ticket %d: %w", id, err)
			}
			fmt.Fprintln(a.Stdout, string(data))
			return nil
		},
	}
}
