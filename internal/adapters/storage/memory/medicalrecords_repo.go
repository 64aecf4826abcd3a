package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clinic-manager/internal/domain/medicalrecords"
)

type medicalRecordsRepo struct {
	mu    sync.RWMutex
	items []medicalrecords.MedicalRecord
	byID  map[string]int
}

func NewMedicalRecordsRepo() medicalrecords.Repository {
	return &medicalRecordsRepo{
		byID: make(map[string]int),
	}
}

func (r *medicalRecordsRepo) Create(ctx context.Context, rec medicalrecords.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}

	r.byID[rec.ID] = len(r.items)
	r.items = append(r.items, rec)
	return nil
}

func (r *medicalRecordsRepo) GetByID(ctx context.Context, id string) (medicalrecords.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return medicalrecords.MedicalRecord{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *medicalRecordsRepo) ListAll(ctx context.Context) ([]medicalrecords.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medicalrecords.MedicalRecord, len(r.items))
	copy(out, r.items)
	return out, nil
}
