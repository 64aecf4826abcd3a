package clients

import "context"

type Repository interface {
	Create(ctx context.Context, c Client) error
	GetByID(ctx context.Context, id string) (Client, error)
	ListAll(ctx context.Context) ([]Client, error)
}
