package interfaces

import (
	"context"

	"orcasys/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// GetByID returns a zero-value Client and a nil error when nothing matches.
// FindByName and FindByPhone return every client holding the exact value.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	FindByName(ctx context.Context, name string) ([]entities.Client, error)
	FindByPhone(ctx context.Context, phone string) ([]entities.Client, error)
}
