package interfaces

import (
	"context"

	"orcasys/internal/domain/entities"
)

// IBudgetHistoryRepository stores the append-only change log of budgets.
type IBudgetHistoryRepository interface {
	Append(ctx context.Context, h entities.BudgetHistory) error
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetHistory, error)
	DeleteByBudgetID(ctx context.Context, budgetID string) (int, error)
}
