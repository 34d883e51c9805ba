package vendas

import (
	"context"
	"time"
)

// Store is the persistence collaborator for products and sales. It is
// injected into each component rather than held as ambient state; drivers
// live under store/.
//
// Ordering is part of the contract:
//   - Products returns rows sorted by name ascending, ties broken by
//     insertion order (ascending id).
//   - Sales returns rows sorted by timestamp descending, ties broken by
//     insertion order descending (descending id).
type Store interface {
	// AddProduct persists a new product and returns its id.
	AddProduct(ctx context.Context, name string, unitPrice Money) (int64, error)

	// Product resolves a product by id, or ErrProductNotFound.
	Product(ctx context.Context, id int64) (Product, error)

	// Products lists the whole catalog in display order.
	Products(ctx context.Context) ([]Product, error)

	// RemoveProduct deletes a product. Removing a missing id is a no-op.
	RemoveProduct(ctx context.Context, id int64) error

	// RecordSale snapshots the product's current unit price into a new sale.
	// The existence check and the insert run atomically: a concurrent
	// deletion of the product cannot interleave between them. Returns
	// ErrProductNotFound if the product does not resolve at call time.
	RecordSale(ctx context.Context, productID int64, quantity int64, at time.Time) (int64, error)

	// Sales lists the whole ledger in display order.
	Sales(ctx context.Context) ([]Sale, error)

	Close() error
}
