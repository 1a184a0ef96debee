package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rpggio/yamtik/internal/cli"
	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/spf13/pflag"
)

func (a *App) listCommand(ctx context.Context) *cli.Command {
	var (
		storePath, filter, sort string
		lowFirst                bool
	)
	return &cli.Command{
		Name:    "list",
		Summary: "List the tickets in the store",
		Usage:   "[flags]",
		Examples: []cli.Example{
			{Description: "Open tickets, most urgent first", Command: "yamtik list -f open -s priority"},
			{Command: "yamtik list --filter all --sort recent"},
		},
		Flags: func() *pflag.FlagSet {
			fs := a.flagSet("list", &storePath)
			fs.StringVarP(&filter, "filter", "f", a.Config.List.Filter, "all, open, closed, low, medium or high")
			fs.StringVarP(&sort, "sort", "s", a.Config.List.Sort, "priority, most-recent or none")
			fs.BoolVar(&lowFirst, "low-first", false, "with --sort priority, put low urgency first")
			return fs
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usage(fmt.Errorf("list takes no arguments, got %q", args))
			}
			filterMethod, err := ticket.ParseFilterMethod(filter)
			if err != nil {
				return cli.Usage(err)
			}
			sortMethod, err := ticket.ParseSortMethod(sort)
			if err != nil {
				return cli.Usage(err)
			}

			svc, err := a.service(storePath)
			if err != nil {
				return err
			}
			view, err := svc.List(ctx, ticket.ListOptions{
				Filter:   filterMethod,
				Sort:     sortMethod,
				LowFirst: lowFirst,
			})
			if err != nil {
				return err
			}
			for _, t := range view {
				writeLine(a.Stdout, t)
			}
			return nil
		},
	}
}

// writeLine renders "#<id>  [<U>]  <title>  (<status>)" with the id
// right-aligned to three columns.
func writeLine(w io.Writer, t ticket.Ticket) {
	initial := strings.ToUpper(string(t.Urgency)[:1])
	fmt.Fprintf(w, "#%3d  [%s]  %s  (%s)\n", t.ID, initial, t.Title, t.Status)
}
