package vendas

import (
	"context"
	"fmt"
	"time"
)

// Ledger owns the append-only set of sale records. Sales are never edited or
// voided once recorded.
type Ledger struct {
	store Store

	// Now supplies sale timestamps. Tests may replace it; it defaults to the
	// system clock.
	Now func() time.Time
}

// NewLedger creates a ledger backed by the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, Now: time.Now}
}

// RecordSale records the sale of quantity units of the given product. The
// product's current unit price is snapshotted into the sale, immune to later
// catalog changes. The timestamp is taken from the clock at second precision.
func (l *Ledger) RecordSale(ctx context.Context, productID int64, quantity int64) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrValidation, quantity)
	}
	at := l.Now().Truncate(time.Second)
	return l.store.RecordSale(ctx, productID, quantity, at)
}

// Sales lists the ledger sorted by timestamp descending, most recent first;
// sales sharing one second-precision timestamp come back in reverse insertion
// order.
func (l *Ledger) Sales(ctx context.Context) ([]Sale, error) {
	return l.store.Sales(ctx)
}
