package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clinic-manager/internal/domain/inventory"
)

type inventoryRepo struct {
	mu    sync.RWMutex
	items []inventory.InventoryItem
	byID  map[string]int
}

func NewInventoryRepo() inventory.Repository {
	return &inventoryRepo{
		byID: make(map[string]int),
	}
}

func (r *inventoryRepo) Create(ctx context.Context, it inventory.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("item id required")
	}
	if _, exists := r.byID[it.ID]; exists {
		return errors.New("item already exists")
	}

	r.byID[it.ID] = len(r.items)
	r.items = append(r.items, it)
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id string) (inventory.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return inventory.InventoryItem{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *inventoryRepo) ListAll(ctx context.Context) ([]inventory.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.InventoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}
