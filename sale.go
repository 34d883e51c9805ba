package vendas

import "time"

// TimeLayout is the second-precision layout used for sale timestamps, both in
// storage and on reports.
const TimeLayout = "2006-01-02 15:04:05"

// Sale is an immutable ledger entry. UnitPrice is the snapshot of the
// product's price at the moment of sale; later catalog price changes or
// deletions never touch it.
type Sale struct {
	ID        int64
	ProductID int64
	UnitPrice Money
	Quantity  int64
	Time      time.Time
}

// Subtotal returns UnitPrice multiplied by Quantity, exact.
func (s Sale) Subtotal() Money {
	return s.UnitPrice.MulInt(s.Quantity)
}
