package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListAll(ctx context.Context) ([]Appointment, error)
}
