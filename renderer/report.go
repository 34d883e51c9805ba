// Package renderer renders catalog listings and sales reports to markdown
// for terminal display.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/nmiguel/vendas"
)

// ReportMarkdown renders the aggregated sales report as a markdown document.
// An empty report renders the explicit empty-state line instead of a total.
func ReportMarkdown(r *vendas.Report, generatedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("02/01/2006 15:04:05"))

	if r.Empty() {
		fmt.Fprintln(&b, "No sales registered.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Product | Qty | Price | Subtotal |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s |\n",
			row.Time.Format(vendas.TimeLayout),
			row.ProductName,
			row.Quantity,
			row.UnitPrice,
			row.Subtotal,
		)
	}
	fmt.Fprintf(&b, "\n**Grand total: %s**\n", r.Total)
	return b.String()
}

// ProductsMarkdown renders the catalog as a markdown table.
func ProductsMarkdown(products []vendas.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Products\n\n")
	if len(products) == 0 {
		fmt.Fprintln(&b, "No products registered.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Name | Price |")
	fmt.Fprintln(&b, "|---:|:---|---:|")
	for _, p := range products {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", p.ID, p.Name, p.UnitPrice)
	}
	return b.String()
}

// SalesMarkdown renders the raw ledger as a markdown table, most recent
// sale first.
func SalesMarkdown(sales []vendas.Sale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales\n\n")
	if len(sales) == 0 {
		fmt.Fprintln(&b, "No sales registered.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Product ID | Qty | Price | Date |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|:---|")
	for _, s := range sales {
		fmt.Fprintf(&b, "| %d | %d | %d | %s | %s |\n",
			s.ID, s.ProductID, s.Quantity, s.UnitPrice, s.Time.Format(vendas.TimeLayout))
	}
	return b.String()
}
