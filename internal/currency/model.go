package currency

import "errors"

var (
	// ErrNotFound occurs when no currency matches the requested code.
	ErrNotFound = errors.New("currency not found")

	// ErrCodeExists indicates the currency code is already registered.
	// Currencies are immutable, so a second add with the same code is rejected
	// rather than overwriting the stored name.
	ErrCodeExists = errors.New("currency code already exists")
)

// Currency is a reference record identifying a denomination by code and name.
type Currency struct {
	Code string
	Name string
}
