package usecase

import (
	"context"
	"fmt"

	"orcasys/internal/usecase/interfaces"
)

// budgetCascade removes a budget together with the records that hang off it.
type budgetCascade struct {
	budgets     interfaces.IBudgetRepository
	commissions interfaces.ICommissionRepository
	history     interfaces.IBudgetHistoryRepository
}

func (c budgetCascade) deleteBudget(ctx context.Context, budgetID string) error {
	if _, err := c.commissions.DeleteByBudgetID(ctx, budgetID); err != nil {
		return fmt.Errorf("delete commissions of budget %s: %w", budgetID, err)
	}
	if _, err := c.history.DeleteByBudgetID(ctx, budgetID); err != nil {
		return fmt.Errorf("delete history of budget %s: %w", budgetID, err)
	}
	if err := c.budgets.Delete(ctx, budgetID); err != nil {
		return fmt.Errorf("delete budget %s: %w", budgetID, err)
	}
	return nil
}
