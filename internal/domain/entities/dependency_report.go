package entities

// DependencyReport summarizes the budgets that reference a client.
type DependencyReport struct {
	ClientID         string            `json:"client_id"`
	ClientName       string            `json:"client_name"`
	HasDependencies  bool              `json:"has_dependencies"`
	Budgets          int               `json:"budgets"`
	ApprovedBudgets  int               `json:"approved_budgets"`
	PendingBudgets   int               `json:"pending_budgets"`
	TotalBudgetValue float64           `json:"total_budget_value"`
	Details          []string          `json:"details"`
	BudgetBreakdown  []BudgetBreakdown `json:"budget_breakdown"`
}

type BudgetBreakdown struct {
	BudgetID string       `json:"budget_id"`
	Status   BudgetStatus `json:"status"`
	Total    float64      `json:"total"`
}
