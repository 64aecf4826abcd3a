package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, it InventoryItem) error
	GetByID(ctx context.Context, id string) (InventoryItem, error)
	ListAll(ctx context.Context) ([]InventoryItem, error)
}
