package vendas

import (
	"fmt"
	"strconv"
	"strings"
)

// Product is a sellable catalog entry. Products are created by catalog
// insertion and deleted by id; they are never mutated in place.
type Product struct {
	ID        int64
	Name      string
	UnitPrice Money
}

// ValidateProductName rejects empty or whitespace-only names.
func ValidateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name is empty", ErrValidation)
	}
	return nil
}

// ParseQuantity parses a user-supplied sale quantity. Non-numeric input is a
// parse error; a value below one is a validation error.
func ParseQuantity(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: quantity is empty", ErrValidation)
	}
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q", ErrParse, s)
	}
	if q < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrValidation, q)
	}
	return q, nil
}
