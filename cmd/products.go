package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
	"github.com/nmiguel/vendas/renderer"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the product catalog" }
func (*productsCmd) Usage() string {
	return `gv products

  Lists all registered products, sorted by name.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	products, err := vendas.NewCatalog(store).Products(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProductsMarkdown(products))
	return subcommands.ExitSuccess
}
