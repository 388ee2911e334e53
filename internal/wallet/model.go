package wallet

import (
	"errors"
	"time"
)

var (
	// ErrNotFound occurs when no wallet matches the requested identifier.
	ErrNotFound = errors.New("wallet not found")

	// ErrInsufficientBalance occurs when a balance update would leave the
	// wallet below zero. The stored balance is left untouched.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNegativeInitialBalance rejects wallet creation with a negative
	// opening deposit.
	ErrNegativeInitialBalance = errors.New("initial balance must not be negative")

	// ErrUserIDRequired rejects wallet creation without an owner.
	ErrUserIDRequired = errors.New("user id is required")
)

// Wallet is a balance record owned by a user, denominated in one currency.
// The balance is held in minor units. The currency is fixed at creation.
type Wallet struct {
	ID           string
	UserID       string
	Balance      int64
	CurrencyCode string
	CreatedAt    time.Time
}

// View is the wallet shape returned to API clients. UserName is only
// populated on the detail-fetch path, where it is resolved from the remote
// user-identity service.
type View struct {
	ID           string
	UserID       string
	Balance      int64
	CurrencyCode string
	CurrencyName string
	UserName     string
}
