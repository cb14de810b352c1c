package response

import (
	"time"

	"orcasys/internal/domain/entities"
)

// BudgetResponse flattens the discount into the discount_type and
// discount_percentage pair the frontend sends back on update.
type BudgetResponse struct {
	ID                   string                `json:"id"`
	ClientID             string                `json:"client_id"`
	ClientName           string                `json:"client_name"`
	SellerID             string                `json:"seller_id,omitempty"`
	SellerName           string                `json:"seller_name,omitempty"`
	BudgetType           string                `json:"budget_type"`
	Items                []entities.BudgetItem `json:"items"`
	InstallationLocation string                `json:"installation_location,omitempty"`
	TravelDistanceKm     *float64              `json:"travel_distance_km,omitempty"`
	Observations         string                `json:"observations,omitempty"`
	Subtotal             float64               `json:"subtotal"`
	DiscountType         string                `json:"discount_type"`
	DiscountPercentage   float64               `json:"discount_percentage"`
	DiscountAmount       float64               `json:"discount_amount"`
	Total                float64               `json:"total"`
	ValidityDays         int                   `json:"validity_days"`
	Status               string                `json:"status"`
	Version              int                   `json:"version"`
	OriginalBudgetID     string                `json:"original_budget_id,omitempty"`
	CreatedBy            string                `json:"created_by"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := b.Items
	if items == nil {
		items = []entities.BudgetItem{}
	}
	kind := b.Discount.Kind
	if kind == "" {
		kind = entities.DiscountPercentage
	}
	return BudgetResponse{
		ID:                   b.ID,
		ClientID:             b.ClientID,
		ClientName:           b.ClientName,
		SellerID:             b.SellerID,
		SellerName:           b.SellerName,
		BudgetType:           string(b.BudgetType),
		Items:                items,
		InstallationLocation: b.InstallationLocation,
		TravelDistanceKm:     b.TravelDistanceKm,
		Observations:         b.Observations,
		Subtotal:             b.Subtotal,
		DiscountType:         string(kind),
		DiscountPercentage:   b.Discount.Value,
		DiscountAmount:       b.DiscountAmount,
		Total:                b.Total,
		ValidityDays:         b.ValidityDays,
		Status:               string(b.Status),
		Version:              b.Version,
		OriginalBudgetID:     b.OriginalBudgetID,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

func FromBudgets(bs []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBudget(b))
	}
	return out
}

type BudgetTypesResponse struct {
	Types []string `json:"types"`
}

func FromBudgetTypes(types []entities.BudgetType) BudgetTypesResponse {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return BudgetTypesResponse{Types: out}
}
