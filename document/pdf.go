// Package document serializes paginated report pages to a PDF file. It is
// the rendering collaborator of the paginator: it draws the positioned text
// instructions and decides nothing about layout.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/nmiguel/vendas"
)

const fontFamily = "Helvetica"

// Write renders the pages to w as a PDF document.
func Write(w io.Writer, pages []vendas.Page, g vendas.Geometry) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0) // the paginator already decided the breaks

	for _, page := range pages {
		pdf.AddPage()
		for _, t := range page.Texts {
			style := ""
			if t.Bold {
				style = "B"
			}
			pdf.SetFont(fontFamily, style, t.Size)

			x := t.X
			if t.Align == vendas.AlignRight {
				x -= pdf.GetStringWidth(t.Value)
			}
			// Instructions use the bottom-up y axis; fpdf counts from the
			// top edge.
			pdf.Text(x, g.PageHeight-t.Y, t.Value)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not render pdf: %w", err)
	}
	return nil
}

// Filename returns the timestamp-qualified name used for the exported
// report, so two exports within the same second never silently overwrite
// each other across runs.
func Filename(generatedAt time.Time) string {
	return "sales_report_" + generatedAt.Format("20060102_150405") + ".pdf"
}

// Save renders the pages and writes them to dir under a timestamp-qualified
// name, returning the absolute path for user display. The document is
// rendered in memory and moved into place afterwards; a failure leaves no
// partial file behind.
func Save(dir string, pages []vendas.Page, g vendas.Geometry, generatedAt time.Time) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, pages, g); err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(generatedAt))
	tmp, err := os.CreateTemp(dir, ".sales_report_*.pdf")
	if err != nil {
		return "", fmt.Errorf("could not create report file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not write report file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not close report file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not move report file into place: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
