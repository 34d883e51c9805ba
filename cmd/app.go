// Package cmd implements the CLI application to manage products, record
// sales and produce reports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
	"github.com/nmiguel/vendas/credential"
	"github.com/nmiguel/vendas/store/sqlite"
)

// Commands lists every subcommand. A main package registers them on a
// Commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addProductCmd{},
	&productsCmd{},
	&removeProductCmd{},
	&sellCmd{},
	&salesCmd{},
	&reportCmd{},
	&pdfCmd{},
	&registerCmd{},
	&loginCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "vendas.db", "Path to the sales database file (SQLite)")
var usersFile = flag.String("users", "users.jsonl", "Path to the credential file (JSONL format)")

// openStore is the central function to open the sales database.
func openStore() (vendas.Store, error) {
	return sqlite.Open(*dbFile)
}

// openCredentials opens the credential collaborator.
func openCredentials() *credential.Store {
	return credential.Open(*usersFile)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error for the user and returns the failure status. Every
// validation, parse or not-found error ends up here instead of escaping the
// command boundary.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
