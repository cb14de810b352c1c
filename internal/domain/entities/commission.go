package entities

import (
	"time"

	"github.com/google/uuid"
)

type CommissionStatus string

const (
	CommissionStatusPending    CommissionStatus = "PENDING"
	CommissionStatusCalculated CommissionStatus = "CALCULATED"
	CommissionStatusPaid       CommissionStatus = "PAID"
)

func (s CommissionStatus) Valid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusCalculated, CommissionStatusPaid:
		return true
	}
	return false
}

// commissionNamespace seeds the name-based commission ids.
var commissionNamespace = uuid.MustParse("6f1c2a4e-9d3b-5e7a-8c41-2b7d9e0f3a16")

// CommissionIDForBudget returns the id of the single commission a budget
// may have. The id is stable, so a second insert for the same budget fails
// the store's conditional put.
func CommissionIDForBudget(budgetID string) string {
	return uuid.NewSHA1(commissionNamespace, []byte(budgetID)).String()
}

// Commission is owed to a seller for an approved budget. There is at most
// one commission per budget.
type Commission struct {
	ID                   string           `json:"id"`
	BudgetID             string           `json:"budget_id"`
	SellerID             string           `json:"seller_id"`
	SellerName           string           `json:"seller_name"`
	ClientName           string           `json:"client_name"`
	BudgetTotal          float64          `json:"budget_total"`
	CommissionPercentage float64          `json:"commission_percentage"`
	CommissionAmount     float64          `json:"commission_amount"`
	Status               CommissionStatus `json:"status"`
	PaidAt               *time.Time       `json:"paid_at,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}
