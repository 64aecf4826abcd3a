package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clinic-manager/internal/domain/patients"
)

type patientsRepo struct {
	mu    sync.RWMutex
	items []patients.Patient
	byID  map[string]int
}

func NewPatientsRepo() patients.Repository {
	return &patientsRepo{
		byID: make(map[string]int),
	}
}

func (r *patientsRepo) Create(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("patient id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("patient already exists")
	}

	r.byID[p.ID] = len(r.items)
	r.items = append(r.items, p)
	return nil
}

func (r *patientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return patients.Patient{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *patientsRepo) ListAll(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]patients.Patient, len(r.items))
	copy(out, r.items)
	return out, nil
}
