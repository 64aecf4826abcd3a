package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clinic-manager/internal/domain/clients"
)

var (
	ErrNotFound = errors.New("not found")
)

type clientsRepo struct {
	mu    sync.RWMutex
	items []clients.Client
	byID  map[string]int
}

func NewClientsRepo() clients.Repository {
	return &clientsRepo{
		byID: make(map[string]int),
	}
}

func (r *clientsRepo) Create(ctx context.Context, c clients.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("client id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("client already exists")
	}

	r.byID[c.ID] = len(r.items)
	r.items = append(r.items, c)
	return nil
}

func (r *clientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return clients.Client{}, ErrNotFound
	}
	return r.items[i], nil
}

// ListAll preserva el orden de inserción; los detalles del dashboard dependen
// de ese orden.
func (r *clientsRepo) ListAll(ctx context.Context) ([]clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clients.Client, len(r.items))
	copy(out, r.items)
	return out, nil
}
