package currency

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Currency
}

// NewMemoryRepository constructs an in-memory repository for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Currency)}
}

func (r *memoryRepository) Create(_ context.Context, cur Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[cur.Code]; exists {
		return ErrCodeExists
	}
	r.storage[cur.Code] = cur
	return nil
}

func (r *memoryRepository) GetByCode(_ context.Context, code string) (Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cur, ok := r.storage[code]
	if !ok {
		return Currency{}, ErrNotFound
	}
	return cur, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	currencies := make([]Currency, 0, len(r.storage))
	for _, cur := range r.storage {
		currencies = append(currencies, cur)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Code < currencies[j].Code })
	return currencies, nil
}
