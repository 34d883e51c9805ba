package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
)

type removeProductCmd struct{}

func (*removeProductCmd) Name() string     { return "remove-product" }
func (*removeProductCmd) Synopsis() string { return "remove a product from the catalog" }
func (*removeProductCmd) Usage() string {
	return `gv remove-product <id>

  Removes the product with the given id. Removing an id that does not exist
  is a no-op. Past sales of the product keep their recorded price.
`
}

func (*removeProductCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeProductCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected a product <id>"))
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		return fail(fmt.Errorf("%w: product id %q", vendas.ErrParse, f.Arg(0)))
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := vendas.NewCatalog(store).RemoveProduct(ctx, id); err != nil {
		return fail(err)
	}
	fmt.Printf("Product #%d removed\n", id)
	return subcommands.ExitSuccess
}
