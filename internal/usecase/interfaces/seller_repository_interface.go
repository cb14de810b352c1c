package interfaces

import (
	"context"

	"orcasys/internal/domain/entities"
)

// ISellerRepository abstracts DynamoDB persistence for Seller. Deactivate
// is a soft delete.
type ISellerRepository interface {
	Create(ctx context.Context, s entities.Seller) (entities.Seller, error)
	GetByID(ctx context.Context, id string) (entities.Seller, error)
	ListActive(ctx context.Context) ([]entities.Seller, error)
	Update(ctx context.Context, s entities.Seller) (entities.Seller, error)
	Deactivate(ctx context.Context, id string) (entities.Seller, error)
}
