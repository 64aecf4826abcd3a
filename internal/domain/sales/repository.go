package sales

import "context"

type Repository interface {
	Create(ctx context.Context, s Sale) error
	GetByID(ctx context.Context, id string) (Sale, error)
	ListAll(ctx context.Context) ([]Sale, error)
}
