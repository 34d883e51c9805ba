package document

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmiguel/vendas"
)

func testPages(t *testing.T, rows int) ([]vendas.Page, vendas.Geometry) {
	t.Helper()
	report := &vendas.Report{Total: vendas.Kz(0)}
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		report.Rows = append(report.Rows, vendas.ReportRow{
			ProductName: "Rice",
			UnitPrice:   vendas.Kz(10),
			Quantity:    1,
			Subtotal:    vendas.Kz(10),
			Time:        at,
		})
		report.Total = report.Total.Add(vendas.Kz(10))
	}
	g := vendas.A4Geometry()
	pages, err := vendas.Paginate(report, at, g)
	require.NoError(t, err)
	return pages, g
}

func TestWrite_ProducesPDF(t *testing.T) {
	pages, g := testPages(t, 5)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, pages, g))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output does not start with a PDF header")
}

func TestFilename_TimestampQualified(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, "sales_report_20240301_103045.pdf", Filename(at))
}

func TestSave_WritesFileAndReturnsAbsolutePath(t *testing.T) {
	pages, g := testPages(t, 80) // spans several pages
	dir := t.TempDir()
	at := time.Date(2024, 3, 1, 10, 30, 45, 0, time.UTC)

	path, err := Save(dir, pages, g, at)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path), "path %q is not absolute", path)
	assert.Equal(t, Filename(at), filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	// No temp file left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
