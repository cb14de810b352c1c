package interfaces

// IMetrics receives domain events worth counting.
type IMetrics interface {
	BudgetCreated(budgetType string)
	BudgetStatusChanged(from, to string)
	CommissionCreated()
	ClientDeletion(outcome string)
	ClientsImported(count int)
}
