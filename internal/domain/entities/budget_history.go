package entities

import "time"

type HistoryAction string

const (
	HistoryActionCreated       HistoryAction = "created"
	HistoryActionUpdated       HistoryAction = "updated"
	HistoryActionStatusChanged HistoryAction = "status_changed"
	HistoryActionDuplicated    HistoryAction = "duplicated"
)

// BudgetHistory is an append-only record of a change made to a budget.
type BudgetHistory struct {
	ID          string        `json:"id"`
	BudgetID    string        `json:"budget_id"`
	Action      HistoryAction `json:"action"`
	Description string        `json:"description"`
	Version     int           `json:"version"`
	ChangedBy   string        `json:"changed_by"`
	CreatedAt   time.Time     `json:"created_at"`
}
