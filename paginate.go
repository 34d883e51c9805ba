package vendas

import (
	"fmt"
	"time"
)

// Geometry holds the numeric layout constants governing pagination. All
// values are in points, y grows upward from the page bottom (PDF convention).
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	TopMargin    float64
	BottomMargin float64
	HeaderHeight float64
	RowHeight    float64
}

// A4Geometry returns the default report layout on an A4 page.
func A4Geometry() Geometry {
	return Geometry{
		PageWidth:    595.28,
		PageHeight:   841.89,
		TopMargin:    50,
		BottomMargin: 60,
		HeaderHeight: 70,
		RowHeight:    22,
	}
}

// RowArea is the usable row area of a page: everything between the header
// block and the bottom margin.
func (g Geometry) RowArea() float64 {
	return g.PageHeight - g.TopMargin - g.BottomMargin - g.HeaderHeight
}

// RowCapacity is the number of rows that fit on one page.
func (g Geometry) RowCapacity() int {
	return int(g.RowArea() / g.RowHeight)
}

// Validate rejects geometries that cannot hold a single row per page.
func (g Geometry) Validate() error {
	for _, v := range []float64{g.PageWidth, g.PageHeight, g.TopMargin, g.BottomMargin, g.HeaderHeight, g.RowHeight} {
		if v <= 0 {
			return fmt.Errorf("%w: geometry constants must be positive", ErrValidation)
		}
	}
	if g.RowArea() < g.RowHeight {
		return fmt.Errorf("%w: page cannot hold a single row", ErrValidation)
	}
	return nil
}

// Align selects the horizontal anchoring of a text instruction.
type Align int

const (
	AlignLeft Align = iota
	// AlignRight anchors the text's right edge at X.
	AlignRight
)

// Text is one positioned draw instruction. The rendering collaborator only
// has to draw it; all placement decisions are made here.
type Text struct {
	Value string
	X, Y  float64
	Size  float64
	Bold  bool
	Align Align
}

// Page is an ordered list of draw instructions.
type Page struct {
	Texts []Text
}

// Fixed x positions within the header and row layout, mirroring the
// on-screen report columns.
const (
	titleX      = 50
	colDateX    = 40
	colProductX = 150
	colQtyX     = 300
	colPriceX   = 370
	colSubX     = 460
)

// noSalesText is the explicit empty-state line; it replaces the total line
// when the ledger is empty.
const noSalesText = "No sales registered."

// Paginate lays the report out onto fixed-size pages: a header block on every
// page, rows top to bottom, a page break whenever the next row would cross
// the bottom margin, and the grand total directly below the last row (on a
// fresh page if it no longer fits). Given the same report, geometry and
// generation timestamp the output is reproducible instruction for
// instruction.
func Paginate(report *Report, generatedAt time.Time, g Geometry) ([]Page, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	p := &paginator{geometry: g, generatedAt: generatedAt}
	p.openPage()

	if report.Empty() {
		p.place(Text{Value: noSalesText, X: colDateX, Y: p.cursor, Size: 12})
		return p.closePage(), nil
	}

	for _, row := range report.Rows {
		if !p.fits() {
			p.breakPage()
		}
		p.placeRow(row)
	}

	if !p.fits() {
		p.breakPage()
	}
	p.place(Text{
		Value: fmt.Sprintf("Grand total: %s Kz", report.Total.Decimal().StringFixed(2)),
		X:     colDateX,
		Y:     p.cursor,
		Size:  12,
		Bold:  true,
	})
	return p.closePage(), nil
}

// paginator tracks the open page and the write cursor while laying out one
// report.
type paginator struct {
	geometry    Geometry
	generatedAt time.Time

	pages   []Page
	current Page
	cursor  float64
}

// openPage starts a new page, emits the header block and resets the cursor
// to just below it.
func (p *paginator) openPage() {
	g := p.geometry
	top := g.PageHeight - g.TopMargin

	p.current = Page{}
	p.place(Text{Value: "Sales Report", X: titleX, Y: top, Size: 16, Bold: true})
	p.place(Text{
		Value: "Generated: " + p.generatedAt.Format("02/01/2006 15:04:05"),
		X:     titleX,
		Y:     top - 20,
		Size:  12,
	})
	for _, label := range []Text{
		{Value: "Date", X: colDateX},
		{Value: "Product", X: colProductX},
		{Value: "Qty", X: colQtyX, Align: AlignRight},
		{Value: "Price (Kz)", X: colPriceX, Align: AlignRight},
		{Value: "Subtotal", X: colSubX, Align: AlignRight},
	} {
		label.Y = top - 50
		label.Size = 12
		label.Bold = true
		p.place(label)
	}
	p.cursor = top - g.HeaderHeight
}

// fits reports whether one more row-height line fits above the bottom margin.
func (p *paginator) fits() bool {
	return p.cursor-p.geometry.RowHeight >= p.geometry.BottomMargin
}

// breakPage closes the current page and opens the next one.
func (p *paginator) breakPage() {
	p.pages = append(p.pages, p.current)
	p.openPage()
}

// closePage closes the final page and returns the full sequence.
func (p *paginator) closePage() []Page {
	p.pages = append(p.pages, p.current)
	return p.pages
}

func (p *paginator) place(t Text) {
	p.current.Texts = append(p.current.Texts, t)
}

// placeRow emits one report row at the cursor and advances it.
func (p *paginator) placeRow(row ReportRow) {
	y := p.cursor
	p.place(Text{Value: row.Time.Format(TimeLayout), X: colDateX, Y: y, Size: 11})
	p.place(Text{Value: row.ProductName, X: colProductX, Y: y, Size: 11})
	p.place(Text{Value: fmt.Sprintf("%d", row.Quantity), X: colQtyX, Y: y, Size: 11, Align: AlignRight})
	p.place(Text{Value: row.UnitPrice.Decimal().StringFixed(2), X: colPriceX, Y: y, Size: 11, Align: AlignRight})
	p.place(Text{Value: row.Subtotal.Decimal().StringFixed(2), X: colSubX, Y: y, Size: 11, Align: AlignRight})
	p.cursor -= p.geometry.RowHeight
}
