package vendas_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nmiguel/vendas"
	"github.com/nmiguel/vendas/store/memory"
)

// fixedClock returns a clock stepping forward by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestLedger_RecordSale_SnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	catalog := vendas.NewCatalog(store)
	ledger := vendas.NewLedger(store)

	id, err := catalog.AddProduct(ctx, "Rice", vendas.Kz(10))
	if err != nil {
		t.Fatalf("AddProduct() failed: %v", err)
	}
	if _, err := ledger.RecordSale(ctx, id, 3); err != nil {
		t.Fatalf("RecordSale() failed: %v", err)
	}

	// A later catalog change must not touch the recorded sale: the product
	// is removed and re-registered at a different price.
	if err := catalog.RemoveProduct(ctx, id); err != nil {
		t.Fatalf("RemoveProduct() failed: %v", err)
	}
	if _, err := catalog.AddProduct(ctx, "Rice", vendas.Kz(99)); err != nil {
		t.Fatalf("re-AddProduct() failed: %v", err)
	}

	sales, err := ledger.Sales(ctx)
	if err != nil {
		t.Fatalf("Sales() failed: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("len(sales) = %d, want 1", len(sales))
	}
	if !sales[0].UnitPrice.Equal(vendas.Kz(10)) {
		t.Errorf("snapshot price = %s, want 10", sales[0].UnitPrice.Decimal())
	}
	if got := sales[0].Subtotal(); !got.Equal(vendas.Kz(30)) {
		t.Errorf("subtotal = %s, want 30", got.Decimal())
	}
}

func TestLedger_RecordSale_Validation(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	ledger := vendas.NewLedger(store)

	id, err := vendas.NewCatalog(store).AddProduct(ctx, "Rice", vendas.Kz(10))
	if err != nil {
		t.Fatalf("AddProduct() failed: %v", err)
	}

	if _, err := ledger.RecordSale(ctx, id, 0); !errors.Is(err, vendas.ErrValidation) {
		t.Errorf("quantity 0: error = %v, want ErrValidation", err)
	}
	if _, err := ledger.RecordSale(ctx, id, -1); !errors.Is(err, vendas.ErrValidation) {
		t.Errorf("quantity -1: error = %v, want ErrValidation", err)
	}
	if _, err := ledger.RecordSale(ctx, 9999, 1); !errors.Is(err, vendas.ErrProductNotFound) {
		t.Errorf("missing product: error = %v, want ErrProductNotFound", err)
	}
}

func TestLedger_Sales_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	catalog := vendas.NewCatalog(store)
	ledger := vendas.NewLedger(store)
	ledger.Now = fixedClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local), time.Minute)

	id, _ := catalog.AddProduct(ctx, "Rice", vendas.Kz(10))
	first, _ := ledger.RecordSale(ctx, id, 1)
	second, _ := ledger.RecordSale(ctx, id, 2)
	third, _ := ledger.RecordSale(ctx, id, 3)

	sales, err := ledger.Sales(ctx)
	if err != nil {
		t.Fatalf("Sales() failed: %v", err)
	}
	wantOrder := []int64{third, second, first}
	for i, want := range wantOrder {
		if sales[i].ID != want {
			t.Fatalf("sales order = %v, want ids %v", sales, wantOrder)
		}
	}
}

func TestLedger_Sales_SameSecondKeepsReverseInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	catalog := vendas.NewCatalog(store)
	ledger := vendas.NewLedger(store)
	// Second precision: every sale lands in the same timestamp bucket.
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	ledger.Now = func() time.Time { return at }

	id, _ := catalog.AddProduct(ctx, "Rice", vendas.Kz(10))
	var ids []int64
	for i := 0; i < 5; i++ {
		saleID, err := ledger.RecordSale(ctx, id, 1)
		if err != nil {
			t.Fatalf("RecordSale() failed: %v", err)
		}
		ids = append(ids, saleID)
	}

	sales, err := ledger.Sales(ctx)
	if err != nil {
		t.Fatalf("Sales() failed: %v", err)
	}
	for i := range sales {
		want := ids[len(ids)-1-i]
		if sales[i].ID != want {
			t.Fatalf("sales[%d].ID = %d, want %d (reverse insertion order)", i, sales[i].ID, want)
		}
	}
}

func TestLedger_TimestampSecondPrecision(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	catalog := vendas.NewCatalog(store)
	ledger := vendas.NewLedger(store)
	ledger.Now = func() time.Time {
		return time.Date(2024, 3, 1, 9, 0, 0, 123456789, time.Local)
	}

	id, _ := catalog.AddProduct(ctx, "Rice", vendas.Kz(10))
	if _, err := ledger.RecordSale(ctx, id, 1); err != nil {
		t.Fatalf("RecordSale() failed: %v", err)
	}
	sales, _ := ledger.Sales(ctx)
	if got := sales[0].Time.Nanosecond(); got != 0 {
		t.Errorf("timestamp nanoseconds = %d, want 0 (second precision)", got)
	}
}
