package currency

import (
	"context"
	"errors"
	"strings"
)

// Service exposes currency reference-table operations.
type Service struct {
	repo Repository
}

// NewService builds a currency service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add registers a new currency and returns the stored record.
func (s *Service) Add(ctx context.Context, code, name string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if code == "" {
		return Currency{}, errors.New("currency code is required")
	}
	if name == "" {
		return Currency{}, errors.New("currency name is required")
	}

	cur := Currency{Code: code, Name: name}
	if err := s.repo.Create(ctx, cur); err != nil {
		return Currency{}, err
	}
	return cur, nil
}

// Get resolves a currency by code.
func (s *Service) Get(ctx context.Context, code string) (Currency, error) {
	return s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// List returns all registered currencies.
func (s *Service) List(ctx context.Context) ([]Currency, error) {
	return s.repo.List(ctx)
}
