package entities

import "time"

// BudgetStatus is the lifecycle state of a budget. Any status may move to
// any other.
type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "DRAFT"
	BudgetStatusSent     BudgetStatus = "SENT"
	BudgetStatusApproved BudgetStatus = "APPROVED"
	BudgetStatusRejected BudgetStatus = "REJECTED"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusSent, BudgetStatusApproved, BudgetStatusRejected:
		return true
	}
	return false
}

// Pending reports whether the budget still awaits a decision.
func (s BudgetStatus) Pending() bool {
	return s == BudgetStatusDraft || s == BudgetStatusSent
}

type BudgetType string

const (
	BudgetTypeRemocao     BudgetType = "REMOÇÃO"
	BudgetTypeImplantacao BudgetType = "IMPLANTAÇÃO AUTOMIDIA"
	BudgetTypeTroca       BudgetType = "TROCA"
	BudgetTypePlotagem    BudgetType = "PLOTAGEM ADESIVO"
	BudgetTypeSiderUV     BudgetType = "SIDER E UV"
)

func BudgetTypes() []BudgetType {
	return []BudgetType{
		BudgetTypeRemocao,
		BudgetTypeImplantacao,
		BudgetTypeTroca,
		BudgetTypePlotagem,
		BudgetTypeSiderUV,
	}
}

func (t BudgetType) Valid() bool {
	for _, v := range BudgetTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// BudgetItem is one priced line of a budget. Subtotal is always resolved;
// FinalPrice, when set, overrides it.
type BudgetItem struct {
	ItemID                 string   `json:"item_id"`
	ItemName               string   `json:"item_name"`
	Quantity               float64  `json:"quantity"`
	UnitPrice              float64  `json:"unit_price"`
	Length                 *float64 `json:"length,omitempty"`
	Height                 *float64 `json:"height,omitempty"`
	Width                  *float64 `json:"width,omitempty"`
	AreaM2                 *float64 `json:"area_m2,omitempty"`
	CanvasColor            string   `json:"canvas_color,omitempty"`
	PrintPercentage        *float64 `json:"print_percentage,omitempty"`
	ItemDiscountPercentage *float64 `json:"item_discount_percentage,omitempty"`
	Subtotal               float64  `json:"subtotal"`
	FinalPrice             *float64 `json:"final_price,omitempty"`
}

// Budget is a quotation issued to a client.
//
// ClientName and SellerName are snapshots taken when the budget is written;
// renaming the client or seller later does not touch them.
type Budget struct {
	ID                   string       `json:"id"`
	ClientID             string       `json:"client_id"`
	ClientName           string       `json:"client_name"`
	SellerID             string       `json:"seller_id,omitempty"`
	SellerName           string       `json:"seller_name,omitempty"`
	BudgetType           BudgetType   `json:"budget_type"`
	Items                []BudgetItem `json:"items"`
	InstallationLocation string       `json:"installation_location,omitempty"`
	TravelDistanceKm     *float64     `json:"travel_distance_km,omitempty"`
	Observations         string       `json:"observations,omitempty"`
	Subtotal             float64      `json:"subtotal"`
	Discount             Discount     `json:"discount"`
	DiscountAmount       float64      `json:"discount_amount"`
	Total                float64      `json:"total"`
	ValidityDays         int          `json:"validity_days"`
	Status               BudgetStatus `json:"status"`
	Version              int          `json:"version"`
	OriginalBudgetID     string       `json:"original_budget_id,omitempty"`
	CreatedBy            string       `json:"created_by"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

const DefaultValidityDays = 30

func (b Budget) HasSeller() bool {
	return b.SellerID != ""
}
