package wallet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintech-wallet/wallet_service/internal/currency"
	"github.com/fintech-wallet/wallet_service/internal/users"
)

// Service orchestrates wallet operations: creation, enriched detail fetch and
// balance mutation under the non-negative-balance invariant.
type Service struct {
	repo       Repository
	currencies currency.Repository
	users      users.Client
	exportDir  string
}

// NewService builds a wallet service instance.
func NewService(repo Repository, currencies currency.Repository, users users.Client, exportDir string) *Service {
	return &Service{repo: repo, currencies: currencies, users: users, exportDir: exportDir}
}

// CreateInput captures data required to create a wallet.
type CreateInput struct {
	UserID         string
	CurrencyCode   string
	InitialBalance int64
}

// Create provisions a wallet denominated in an existing currency. A negative
// opening deposit is rejected rather than stored.
func (s *Service) Create(ctx context.Context, input CreateInput) (View, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return View{}, ErrUserIDRequired
	}
	if input.InitialBalance < 0 {
		return View{}, ErrNegativeInitialBalance
	}

	cur, err := s.currencies.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(input.CurrencyCode)))
	if err != nil {
		return View{}, err
	}

	w := Wallet{
		ID:           uuid.New().String(),
		UserID:       input.UserID,
		Balance:      input.InitialBalance,
		CurrencyCode: cur.Code,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return View{}, err
	}

	return s.view(w, cur, ""), nil
}

// Details fetches a wallet and enriches it with the owner's display name from
// the user-identity service. A failed lookup fails the whole operation; there
// is no degraded response without the name.
func (s *Service) Details(ctx context.Context, id string) (View, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}

	cur, err := s.currencies.GetByCode(ctx, w.CurrencyCode)
	if err != nil {
		return View{}, err
	}

	userName, err := s.users.DisplayName(ctx, w.UserID)
	if err != nil {
		return View{}, err
	}

	return s.view(w, cur, userName), nil
}

// UpdateBalance applies a signed delta to the wallet balance. A delta that
// would take the balance below zero fails with ErrInsufficientBalance. A zero
// delta is a persisted no-op. The returned view is not enriched.
func (s *Service) UpdateBalance(ctx context.Context, id string, delta int64) (View, error) {
	w, err := s.repo.UpdateBalance(ctx, id, delta)
	if err != nil {
		return View{}, err
	}

	cur, err := s.currencies.GetByCode(ctx, w.CurrencyCode)
	if err != nil {
		return View{}, err
	}

	return s.view(w, cur, ""), nil
}

// ExportFile writes a plain-text snapshot of the wallet, named after the
// owner's resolved display name, into the export directory. It returns the
// file name.
func (s *Service) ExportFile(ctx context.Context, id string) (string, error) {
	view, err := s.Details(ctx, id)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("wallet_%s_%s.txt", view.ID, strings.ReplaceAll(view.UserName, " ", "_"))

	content := fmt.Sprintf("Wallet Info:\nUser: %s\nBalance: %d\nCurrency: %s\n",
		view.UserName, view.Balance, view.CurrencyName)

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.exportDir, fileName), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write wallet file: %w", err)
	}

	return fileName, nil
}

func (s *Service) view(w Wallet, cur currency.Currency, userName string) View {
	return View{
		ID:           w.ID,
		UserID:       w.UserID,
		Balance:      w.Balance,
		CurrencyCode: cur.Code,
		CurrencyName: cur.Name,
		UserName:     userName,
	}
}
