package vendas

import (
	"context"
	"fmt"
)

// Catalog owns the set of sellable products. All writes are validated here;
// persistence is delegated to the injected store.
type Catalog struct {
	store Store
}

// NewCatalog creates a catalog backed by the given store.
func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// AddProduct validates and persists a new product, returning its id.
// The name must not be empty or whitespace-only and the price must be
// positive; both are enforced here, before the store is touched.
func (c *Catalog) AddProduct(ctx context.Context, name string, unitPrice Money) (int64, error) {
	if err := ValidateProductName(name); err != nil {
		return 0, err
	}
	if !unitPrice.IsPositive() {
		return 0, fmt.Errorf("%w: unit price must be positive", ErrValidation)
	}
	return c.store.AddProduct(ctx, name, unitPrice)
}

// Products lists the catalog sorted by name ascending, ties broken by
// insertion order.
func (c *Catalog) Products(ctx context.Context) ([]Product, error) {
	return c.store.Products(ctx)
}

// RemoveProduct deletes a product by id. Idempotent: removing an id that no
// longer exists is a no-op, not an error. Historical sales keep their
// snapshotted price regardless.
func (c *Catalog) RemoveProduct(ctx context.Context, id int64) error {
	return c.store.RemoveProduct(ctx, id)
}
