package interfaces

import (
	"context"

	"orcasys/internal/domain/entities"
)

// BudgetFilter narrows a budget listing. Empty fields match everything.
type BudgetFilter struct {
	ClientID string
	SellerID string
	Status   entities.BudgetStatus
}

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Update replaces the whole document (last write wins); it returns a
// zero-value Budget when the id does not exist.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter BudgetFilter) ([]entities.Budget, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
}
