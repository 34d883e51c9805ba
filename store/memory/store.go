// Package memory provides an in-memory vendas.Store, used by tests and as an
// ephemeral backend.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nmiguel/vendas"
)

// Store implements vendas.Store on plain maps and slices. Safe for use from
// multiple goroutines, although the application drives it from one.
type Store struct {
	mu sync.RWMutex

	products map[int64]vendas.Product
	sales    []vendas.Sale

	nextProductID int64
	nextSaleID    int64
}

func New() *Store {
	return &Store{
		products: make(map[int64]vendas.Product),
		sales:    make([]vendas.Sale, 0),
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) AddProduct(_ context.Context, name string, unitPrice vendas.Money) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	s.products[s.nextProductID] = vendas.Product{
		ID:        s.nextProductID,
		Name:      name,
		UnitPrice: unitPrice,
	}
	return s.nextProductID, nil
}

func (s *Store) Product(_ context.Context, id int64) (vendas.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return vendas.Product{}, fmt.Errorf("%w: id %d", vendas.ErrProductNotFound, id)
}

func (s *Store) Products(_ context.Context) ([]vendas.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]vendas.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	// Name ascending; ids grow with insertion, so they break ties in
	// insertion order.
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *Store) RemoveProduct(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id) // no-op on a missing id
	return nil
}

func (s *Store) RecordSale(_ context.Context, productID int64, quantity int64, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return 0, fmt.Errorf("%w: id %d", vendas.ErrProductNotFound, productID)
	}

	s.nextSaleID++
	s.sales = append(s.sales, vendas.Sale{
		ID:        s.nextSaleID,
		ProductID: productID,
		UnitPrice: p.UnitPrice,
		Quantity:  quantity,
		Time:      at,
	})
	return s.nextSaleID, nil
}

func (s *Store) Sales(_ context.Context) ([]vendas.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]vendas.Sale, len(s.sales))
	copy(result, s.sales)
	// Timestamp descending, reverse insertion order within one second
	// bucket: the descending id tie-break gives both.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Time.Equal(result[j].Time) {
			return result[i].Time.After(result[j].Time)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}
