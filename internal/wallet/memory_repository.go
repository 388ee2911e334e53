package wallet

import (
	"context"
	"errors"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Wallet
}

// NewMemoryRepository constructs an in-memory repository for development and
// tests. It mirrors the Postgres semantics: updates on one wallet are
// serialized and a failed overdraft check mutates nothing.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Wallet)}
}

func (r *memoryRepository) Create(_ context.Context, w Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[w.ID]; exists {
		return errors.New("wallet exists")
	}
	r.storage[w.ID] = w
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.storage[id]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	return w, nil
}

func (r *memoryRepository) UpdateBalance(_ context.Context, id string, delta int64) (Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.storage[id]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	newBalance := w.Balance + delta
	if newBalance < 0 {
		return Wallet{}, ErrInsufficientBalance
	}
	w.Balance = newBalance
	r.storage[id] = w
	return w, nil
}
