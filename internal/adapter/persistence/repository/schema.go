package repository

import "orcasys/internal/config"

// Secondary indexes. Each one is keyed by the attribute named before "-index".
const (
	clientsNameIndex       = "name-index"
	clientsPhoneIndex      = "phone-index"
	priceTableCodeIndex    = "code-index"
	canvasColorsNameIndex  = "name-index"
	budgetsClientIDIndex   = "client_id-index"
	commissionsBudgetIndex = "budget_id-index"
	historyBudgetIndex     = "budget_id-index"
)

// Index describes a global secondary index with a single string hash key.
type Index struct {
	Name string
	Key  string
}

// TableSchema is the layout a repository expects of its table: a string
// "id" hash key plus the listed indexes.
type TableSchema struct {
	Name    string
	Indexes []Index
}

// Schemas lists every table used by the repositories in this package.
func Schemas(t config.Tables) []TableSchema {
	return []TableSchema{
		{Name: t.Clients, Indexes: []Index{{clientsNameIndex, "name"}, {clientsPhoneIndex, "phone"}}},
		{Name: t.Sellers},
		{Name: t.PriceTable, Indexes: []Index{{priceTableCodeIndex, "code"}}},
		{Name: t.CanvasColors, Indexes: []Index{{canvasColorsNameIndex, "name"}}},
		{Name: t.Budgets, Indexes: []Index{{budgetsClientIDIndex, "client_id"}}},
		{Name: t.Commissions, Indexes: []Index{{commissionsBudgetIndex, "budget_id"}}},
		{Name: t.History, Indexes: []Index{{historyBudgetIndex, "budget_id"}}},
		{Name: t.AuditLogs},
	}
}
