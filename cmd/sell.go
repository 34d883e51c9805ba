package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
)

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of a cataloged product" }
func (*sellCmd) Usage() string {
	return `gv sell <product-id> <quantity>

  Records the sale of <quantity> units of the given product at its current
  catalog price. The price is copied onto the sale record and later catalog
  changes never affect it.

Usage Examples:
$ gv sell 3 2
`
}

func (*sellCmd) SetFlags(f *flag.FlagSet) {}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail(fmt.Errorf("expected <product-id> and <quantity>, got %d arguments", f.NArg()))
	}
	productID, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		return fail(fmt.Errorf("%w: product id %q", vendas.ErrParse, f.Arg(0)))
	}
	quantity, err := vendas.ParseQuantity(f.Arg(1))
	if err != nil {
		return fail(err)
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	id, err := vendas.NewLedger(store).RecordSale(ctx, productID, quantity)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Sale #%d recorded: %d x product #%d\n", id, quantity, productID)
	return subcommands.ExitSuccess
}
