package interfaces

import (
	"context"

	"orcasys/internal/domain/entities"
)

type IPriceTableRepository interface {
	Create(ctx context.Context, it entities.PriceTableItem) (entities.PriceTableItem, error)
	GetByID(ctx context.Context, id string) (entities.PriceTableItem, error)
	ListActive(ctx context.Context) ([]entities.PriceTableItem, error)
	Update(ctx context.Context, it entities.PriceTableItem) (entities.PriceTableItem, error)
	Deactivate(ctx context.Context, id string) (entities.PriceTableItem, error)
	FindActiveByCode(ctx context.Context, code string) (entities.PriceTableItem, error)
}
