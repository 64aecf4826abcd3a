package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clinic-manager/internal/domain/vaccinations"
)

type vaccinationsRepo struct {
	mu    sync.RWMutex
	items []vaccinations.Vaccination
	byID  map[string]int
}

func NewVaccinationsRepo() vaccinations.Repository {
	return &vaccinationsRepo{
		byID: make(map[string]int),
	}
}

func (r *vaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vaccination id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vaccination already exists")
	}

	r.byID[v.ID] = len(r.items)
	r.items = append(r.items, v)
	return nil
}

func (r *vaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return vaccinations.Vaccination{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *vaccinationsRepo) ListAll(ctx context.Context) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vaccinations.Vaccination, len(r.items))
	copy(out, r.items)
	return out, nil
}
