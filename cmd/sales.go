package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
	"github.com/nmiguel/vendas/renderer"
)

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list recorded sales, most recent first" }
func (*salesCmd) Usage() string {
	return `gv sales

  Lists all recorded sales, most recent first.
`
}

func (*salesCmd) SetFlags(f *flag.FlagSet) {}

func (c *salesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	sales, err := vendas.NewLedger(store).Sales(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SalesMarkdown(sales))
	return subcommands.ExitSuccess
}
