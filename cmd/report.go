package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
	"github.com/nmiguel/vendas/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the aggregated sales report" }
func (*reportCmd) Usage() string {
	return `gv report

  Joins the ledger with the catalog and displays one line per sale with its
  subtotal, plus the grand total. Sales of products that were removed from
  the catalog are not shown and do not count towards the total.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	report, err := vendas.BuildReport(ctx, store)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReportMarkdown(report, time.Now()))
	return subcommands.ExitSuccess
}
