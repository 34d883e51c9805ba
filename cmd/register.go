package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type registerCmd struct{}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a user account" }
func (*registerCmd) Usage() string {
	return `gv register <username> <password>

  Creates a new user account. Fails if the username is already taken.
`
}

func (*registerCmd) SetFlags(f *flag.FlagSet) {}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail(fmt.Errorf("expected <username> and <password>"))
	}
	if err := openCredentials().Register(f.Arg(0), f.Arg(1)); err != nil {
		return fail(err)
	}
	fmt.Printf("Account %q created\n", f.Arg(0))
	return subcommands.ExitSuccess
}
