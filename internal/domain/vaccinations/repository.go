package vaccinations

import "context"

type Repository interface {
	Create(ctx context.Context, v Vaccination) error
	GetByID(ctx context.Context, id string) (Vaccination, error)
	ListAll(ctx context.Context) ([]Vaccination, error)
}
