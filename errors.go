package vendas

import "errors"

// Sentinel errors for the failure taxonomy. Callers classify failures with
// errors.Is and surface them as user messages at the command boundary.
var (
	// ErrValidation marks user-correctable field errors (empty name,
	// non-positive price, quantity below one).
	ErrValidation = errors.New("vendas: invalid value")

	// ErrParse marks non-numeric price or quantity input.
	ErrParse = errors.New("vendas: not a number")

	// ErrProductNotFound is returned when an operation references a product
	// id that does not resolve in the catalog.
	ErrProductNotFound = errors.New("vendas: product not found")

	// ErrUserExists is returned on duplicate credential registration.
	ErrUserExists = errors.New("vendas: user already exists")

	// ErrStorageUnavailable wraps persistence failures. Fatal to the current
	// operation, never to the process.
	ErrStorageUnavailable = errors.New("vendas: storage unavailable")
)
