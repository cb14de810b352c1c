package interfaces

import (
	"context"
	"time"

	"orcasys/internal/domain/entities"
)

// CommissionFilter narrows a commission listing. Dates apply to CreatedAt
// and are inclusive.
type CommissionFilter struct {
	SellerID  string
	Status    entities.CommissionStatus
	StartDate *time.Time
	EndDate   *time.Time
}

type ICommissionRepository interface {
	// Create stores c unless its id is already taken. In that case the stored
	// commission is returned with created set to false.
	Create(ctx context.Context, c entities.Commission) (stored entities.Commission, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Commission, error)
	List(ctx context.Context, filter CommissionFilter) ([]entities.Commission, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Commission, error)
	DeleteByBudgetID(ctx context.Context, budgetID string) (int, error)
}
