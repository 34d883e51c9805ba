package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
)

type addProductCmd struct{}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "register a new product in the catalog" }
func (*addProductCmd) Usage() string {
	return `gv add-product <name> <price>

  Registers a new product with the given name and unit price.

Usage Examples:
$ gv add-product "Rice 5kg" 4500
`
}

func (*addProductCmd) SetFlags(f *flag.FlagSet) {}

func (c *addProductCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail(fmt.Errorf("expected <name> and <price>, got %d arguments", f.NArg()))
	}
	name := f.Arg(0)
	price, err := vendas.ParsePrice(f.Arg(1))
	if err != nil {
		return fail(err)
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	id, err := vendas.NewCatalog(store).AddProduct(ctx, name, price)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Product #%d %q registered at %s\n", id, name, price)
	return subcommands.ExitSuccess
}
