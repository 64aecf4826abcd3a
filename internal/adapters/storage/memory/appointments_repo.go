package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clinic-manager/internal/domain/appointments"
)

type appointmentsRepo struct {
	mu    sync.RWMutex
	items []appointments.Appointment
	byID  map[string]int
}

func NewAppointmentsRepo() appointments.Repository {
	return &appointmentsRepo{
		byID: make(map[string]int),
	}
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}

	r.byID[a.ID] = len(r.items)
	r.items = append(r.items, a)
	return nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *appointmentsRepo) ListAll(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}
