package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/yamtik/internal/cli"
	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/spf13/pflag"
)

func (a *App) newCommand(ctx context.Context) *cli.Command {
	var storePath, desc string
	return &cli.Command{
		Name:    "new",
		Summary: "Create a new issue ticket",
		Usage:   "<urgency> <title> [description...] [flags]",
		Examples: []cli.Example{
			{Description: "Urgency accepts abbreviations", Command: `yamtik new h "Fix crash" segfault on empty input`},
			{Command: `yamtik new low "Tidy README" --desc "typos in install section"`},
		},
		Flags: func() *pflag.FlagSet {
			fs := a.flagSet("new", &storePath)
			fs.StringVarP(&desc, "desc", "d", "", "ticket description (alternative to trailing words)")
			return fs
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Usage(errors.New("new requires an urgency and a title"))
			}
			urgency, err := ticket.ParseUrgency(args[0])
			if err != nil {
				return cli.Usage(err)
			}
			description := strings.Join(args[2:], " ")
			if desc != "" {
				if description != "" {
					return cli.Usage(errors.New("give the description either as trailing words or with --desc, not both"))
				}
				description = desc
			}

			svc, err := a.service(storePath)
			if err != nil {
				return err
			}
			t, err := svc.Create(ctx, ticket.CreateRequest{
				Urgency:     urgency,
				Title:       args[1],
				Description: description,
			})
			if errors.Is(err, ticket.ErrInvalidArgument) {
				return cli.Usage(err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(a.Stdout, "Issue ticket #%d %s saved!\n", t.ID, t.Title)
			return nil
		},
	}
}
