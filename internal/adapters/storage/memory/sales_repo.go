package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clinic-manager/internal/domain/sales"
)

type salesRepo struct {
	mu    sync.RWMutex
	items []sales.Sale
	byID  map[string]int
}

func NewSalesRepo() sales.Repository {
	return &salesRepo{
		byID: make(map[string]int),
	}
}

func (r *salesRepo) Create(ctx context.Context, s sales.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sale id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("sale already exists")
	}

	r.byID[s.ID] = len(r.items)
	r.items = append(r.items, s)
	return nil
}

func (r *salesRepo) GetByID(ctx context.Context, id string) (sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return sales.Sale{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *salesRepo) ListAll(ctx context.Context) ([]sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sales.Sale, len(r.items))
	copy(out, r.items)
	return out, nil
}
