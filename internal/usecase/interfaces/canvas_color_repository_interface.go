package interfaces

import (
	"context"

	"orcasys/internal/domain/entities"
)

type ICanvasColorRepository interface {
	Create(ctx context.Context, c entities.CanvasColor) (entities.CanvasColor, error)
	GetByID(ctx context.Context, id string) (entities.CanvasColor, error)
	ListActive(ctx context.Context) ([]entities.CanvasColor, error)
	Update(ctx context.Context, c entities.CanvasColor) (entities.CanvasColor, error)
	Deactivate(ctx context.Context, id string) (entities.CanvasColor, error)
	FindActiveByName(ctx context.Context, name string) (entities.CanvasColor, error)
}
