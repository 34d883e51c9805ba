// Package sqlite provides the durable vendas.Store backed by a local SQLite
// file.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/nmiguel/vendas"
)

//go:embed schema.sql
var schemaSQL string

// Store implements vendas.Store on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies the
// schema. Idempotent.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
//   - foreign key enforcement
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vendas.ErrStorageUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", vendas.ErrStorageUnavailable, err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY during the check-then-insert transaction in RecordSale.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) AddProduct(ctx context.Context, name string, unitPrice vendas.Money) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO products (name, unit_price) VALUES (?, ?)",
		name, unitPrice.Decimal().String())
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) Product(ctx context.Context, id int64) (vendas.Product, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, unit_price FROM products WHERE id = ?", id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return vendas.Product{}, fmt.Errorf("%w: id %d", vendas.ErrProductNotFound, id)
	}
	return p, err
}

// Products lists the catalog ordered by name, insertion order breaking ties.
// SQLite's default BINARY collation gives the byte-wise lexical order the
// report expects.
func (s *Store) Products(ctx context.Context) ([]vendas.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, unit_price FROM products ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]vendas.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) RemoveProduct(ctx context.Context, id int64) error {
	// Deleting a missing id is a no-op: DELETE affects zero rows and that is
	// exactly the idempotence the catalog promises.
	if _, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("remove product: %w", err)
	}
	return nil
}

// RecordSale snapshots the product's current price into a new sale. The
// price lookup and the insert share one transaction so a product deletion
// cannot interleave between them.
func (s *Store) RecordSale(ctx context.Context, productID int64, quantity int64, at time.Time) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin sale: %w", err)
	}
	defer tx.Rollback()

	var price string
	err = tx.QueryRowContext(ctx,
		"SELECT unit_price FROM products WHERE id = ?", productID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: id %d", vendas.ErrProductNotFound, productID)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve product: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO sales (product_id, unit_price, quantity, sold_at) VALUES (?, ?, ?, ?)",
		productID, price, quantity, at.Format(vendas.TimeLayout))
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sale: %w", err)
	}
	return id, nil
}

// Sales lists the ledger most recent first. Timestamps have second
// granularity, so many sales share one bucket; the descending id tie-break
// keeps them in reverse insertion order, like a stable descending sort.
func (s *Store) Sales(ctx context.Context) ([]vendas.Sale, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, product_id, unit_price, quantity, sold_at FROM sales ORDER BY sold_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]vendas.Sale, 0)
	for rows.Next() {
		var (
			sale          vendas.Sale
			price, soldAt string
		)
		if err := rows.Scan(&sale.ID, &sale.ProductID, &price, &sale.Quantity, &soldAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("corrupt sale price %q: %w", price, err)
		}
		sale.UnitPrice = vendas.M(d, vendas.DefaultCurrency)
		sale.Time, err = time.ParseInLocation(vendas.TimeLayout, soldAt, time.Local)
		if err != nil {
			return nil, fmt.Errorf("corrupt sale timestamp %q: %w", soldAt, err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func scanProduct(scan func(...any) error) (vendas.Product, error) {
	var (
		p     vendas.Product
		price string
	)
	if err := scan(&p.ID, &p.Name, &price); err != nil {
		return vendas.Product{}, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return vendas.Product{}, fmt.Errorf("corrupt product price %q: %w", price, err)
	}
	p.UnitPrice = vendas.M(d, vendas.DefaultCurrency)
	return p, nil
}
