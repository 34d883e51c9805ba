package vendas

import (
	"context"
	"time"
)

// ReportRow is one aggregated line of the sales report. Derived, never
// persisted.
type ReportRow struct {
	ProductName string
	UnitPrice   Money
	Quantity    int64
	Subtotal    Money
	Time        time.Time
}

// Report is the aggregation of the whole ledger: one row per sale, most
// recent first, plus the grand total.
type Report struct {
	Rows  []ReportRow
	Total Money
}

// Empty reports true when there is nothing to show. Renderers must emit an
// explicit "no sales registered" indicator in that case, not a zero total.
func (r *Report) Empty() bool { return len(r.Rows) == 0 }

// BuildReport joins the ledger with the catalog and computes per-row
// subtotals and the grand total, accumulated exactly in row order and only
// rounded at presentation.
//
// A sale whose product has since been removed from the catalog is skipped
// and does not contribute to the total. That mirrors the inner join the
// report has always done; the sale itself stays in the ledger untouched.
func BuildReport(ctx context.Context, store Store) (*Report, error) {
	products, err := store.Products(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	sales, err := store.Sales(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Rows: make([]ReportRow, 0, len(sales)), Total: Kz(0)}
	for _, s := range sales {
		name, ok := names[s.ProductID]
		if !ok {
			continue
		}
		subtotal := s.Subtotal()
		report.Rows = append(report.Rows, ReportRow{
			ProductName: name,
			UnitPrice:   s.UnitPrice,
			Quantity:    s.Quantity,
			Subtotal:    subtotal,
			Time:        s.Time,
		})
		report.Total = report.Total.Add(subtotal)
	}
	return report, nil
}
