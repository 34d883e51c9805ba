package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "check a username/password pair" }
func (*loginCmd) Usage() string {
	return `gv login <username> <password>

  Verifies the given credentials against the user file.
`
}

func (*loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return fail(fmt.Errorf("expected <username> and <password>"))
	}
	ok, err := openCredentials().Authenticate(f.Arg(0), f.Arg(1))
	if err != nil {
		return fail(err)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Invalid username or password")
		return subcommands.ExitFailure
	}
	fmt.Printf("Welcome, %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
