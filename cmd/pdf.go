package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/nmiguel/vendas"
	"github.com/nmiguel/vendas/document"
)

type pdfCmd struct {
	outDir string
}

func (*pdfCmd) Name() string     { return "pdf" }
func (*pdfCmd) Synopsis() string { return "export the sales report as a paginated PDF" }
func (*pdfCmd) Usage() string {
	return `gv pdf [-o <dir>]

  Lays the sales report out on A4 pages, with the header repeated on every
  page, and writes it to a timestamp-named PDF file. The final location is
  printed on success.
`
}

func (p *pdfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outDir, "o", ".", "Directory to write the PDF report into.")
}

func (p *pdfCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	report, err := vendas.BuildReport(ctx, store)
	if err != nil {
		return fail(err)
	}

	generatedAt := time.Now()
	geometry := vendas.A4Geometry()
	pages, err := vendas.Paginate(report, generatedAt, geometry)
	if err != nil {
		return fail(err)
	}

	path, err := document.Save(p.outDir, pages, geometry, generatedAt)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("PDF saved to %s\n", path)
	return subcommands.ExitSuccess
}
