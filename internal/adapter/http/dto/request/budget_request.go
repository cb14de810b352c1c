package request

import (
	"strings"
	"time"

	"orcasys/internal/domain/entities"
	"orcasys/internal/domain/pricing"
	"orcasys/internal/usecase"
	"orcasys/internal/usecase/interfaces"
)

type BudgetItemRequest struct {
	ItemID                 string   `json:"item_id"`
	ItemName               string   `json:"item_name"`
	Quantity               float64  `json:"quantity"`
	UnitPrice              float64  `json:"unit_price"`
	Length                 *float64 `json:"length"`
	Height                 *float64 `json:"height"`
	Width                  *float64 `json:"width"`
	AreaM2                 *float64 `json:"area_m2"`
	CanvasColor            string   `json:"canvas_color"`
	PrintPercentage        *float64 `json:"print_percentage"`
	ItemDiscountPercentage *float64 `json:"item_discount_percentage"`
	Subtotal               *float64 `json:"subtotal"`
	FinalPrice             *float64 `json:"final_price"`
}

func (r BudgetItemRequest) toItemInput() pricing.ItemInput {
	return pricing.ItemInput{
		ItemID:                 r.ItemID,
		ItemName:               r.ItemName,
		Quantity:               r.Quantity,
		UnitPrice:              r.UnitPrice,
		Length:                 r.Length,
		Height:                 r.Height,
		Width:                  r.Width,
		AreaM2:                 r.AreaM2,
		CanvasColor:            r.CanvasColor,
		PrintPercentage:        r.PrintPercentage,
		ItemDiscountPercentage: r.ItemDiscountPercentage,
		Subtotal:               r.Subtotal,
		FinalPrice:             r.FinalPrice,
	}
}

func toItemInputs(items []BudgetItemRequest) []pricing.ItemInput {
	if items == nil {
		return nil
	}
	out := make([]pricing.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, it.toItemInput())
	}
	return out
}

// CreateBudgetRequest keeps the wire pair discount_type/discount_percentage:
// for "fixed" the percentage field carries the amount.
type CreateBudgetRequest struct {
	ClientID             string              `json:"client_id" binding:"required"`
	SellerID             string              `json:"seller_id"`
	BudgetType           string              `json:"budget_type" binding:"required"`
	Items                []BudgetItemRequest `json:"items"`
	InstallationLocation string              `json:"installation_location"`
	TravelDistanceKm     *float64            `json:"travel_distance_km"`
	Observations         string              `json:"observations"`
	DiscountType         string              `json:"discount_type"`
	DiscountPercentage   float64             `json:"discount_percentage"`
	ValidityDays         int                 `json:"validity_days"`
	Status               string              `json:"status"`
}

// ToInput converts the payload. The discount is validated here since the
// tagged variant cannot hold an out-of-range value.
func (r CreateBudgetRequest) ToInput() (usecase.BudgetInput, error) {
	discount, err := pricing.ParseDiscount(strings.ToLower(strings.TrimSpace(r.DiscountType)), r.DiscountPercentage)
	if err != nil {
		return usecase.BudgetInput{}, err
	}
	return usecase.BudgetInput{
		ClientID:             r.ClientID,
		SellerID:             r.SellerID,
		BudgetType:           entities.BudgetType(r.BudgetType),
		Items:                toItemInputs(r.Items),
		InstallationLocation: r.InstallationLocation,
		TravelDistanceKm:     r.TravelDistanceKm,
		Observations:         r.Observations,
		Discount:             discount,
		ValidityDays:         r.ValidityDays,
		Status:               entities.BudgetStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}, nil
}

// UpdateBudgetRequest is a partial update. Sending "items" replaces every
// line; leaving it out keeps them.
type UpdateBudgetRequest struct {
	ClientID             *string             `json:"client_id"`
	SellerID             *string             `json:"seller_id"`
	BudgetType           *string             `json:"budget_type"`
	Items                []BudgetItemRequest `json:"items"`
	InstallationLocation *string             `json:"installation_location"`
	TravelDistanceKm     *float64            `json:"travel_distance_km"`
	Observations         *string             `json:"observations"`
	DiscountType         *string             `json:"discount_type"`
	DiscountPercentage   *float64            `json:"discount_percentage"`
	ValidityDays         *int                `json:"validity_days"`
	Status               *string             `json:"status"`
}

func (r UpdateBudgetRequest) ToPatch() usecase.BudgetPatch {
	p := usecase.BudgetPatch{
		ClientID:             r.ClientID,
		SellerID:             r.SellerID,
		Items:                toItemInputs(r.Items),
		InstallationLocation: r.InstallationLocation,
		TravelDistanceKm:     r.TravelDistanceKm,
		Observations:         r.Observations,
		DiscountValue:        r.DiscountPercentage,
		ValidityDays:         r.ValidityDays,
	}
	if r.BudgetType != nil {
		t := entities.BudgetType(*r.BudgetType)
		p.BudgetType = &t
	}
	if r.DiscountType != nil {
		k := entities.DiscountKind(strings.ToLower(strings.TrimSpace(*r.DiscountType)))
		p.DiscountKind = &k
	}
	if r.Status != nil {
		s := entities.BudgetStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		p.Status = &s
	}
	return p
}

type UpdateBudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateBudgetStatusRequest) ToStatus() entities.BudgetStatus {
	return entities.BudgetStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

type BudgetListQuery struct {
	ClientID string `form:"client_id"`
	SellerID string `form:"seller_id"`
	Status   string `form:"status"`
}

func (q BudgetListQuery) ToFilter() interfaces.BudgetFilter {
	return interfaces.BudgetFilter{
		ClientID: strings.TrimSpace(q.ClientID),
		SellerID: strings.TrimSpace(q.SellerID),
		Status:   entities.BudgetStatus(strings.ToUpper(strings.TrimSpace(q.Status))),
	}
}

type CreateCommissionRequest struct {
	BudgetID             string   `json:"budget_id" binding:"required"`
	CommissionPercentage *float64 `json:"commission_percentage"`
}

// CommissionListQuery holds the commission filters. Dates are RFC3339.
type CommissionListQuery struct {
	SellerID  string `form:"seller_id"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (q CommissionListQuery) ToFilter() (interfaces.CommissionFilter, error) {
	f := interfaces.CommissionFilter{
		SellerID: strings.TrimSpace(q.SellerID),
		Status:   entities.CommissionStatus(strings.ToUpper(strings.TrimSpace(q.Status))),
	}
	if q.StartDate != "" {
		t, err := time.Parse(time.RFC3339, q.StartDate)
		if err != nil {
			return interfaces.CommissionFilter{}, &pricing.FieldError{Field: "start_date", Reason: "must be an RFC3339 timestamp"}
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse(time.RFC3339, q.EndDate)
		if err != nil {
			return interfaces.CommissionFilter{}, &pricing.FieldError{Field: "end_date", Reason: "must be an RFC3339 timestamp"}
		}
		f.EndDate = &t
	}
	return f, nil
}
