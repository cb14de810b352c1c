package response

import (
	"testing"
	"time"

	"orcasys/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Budget{
		ID:             "b-1",
		ClientID:       "c-1",
		BudgetType:     entities.BudgetTypeTroca,
		Subtotal:       1000,
		Discount:       entities.FixedDiscount(150),
		DiscountAmount: 150,
		Total:          850,
		Status:         entities.BudgetStatusSent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromBudget(b)
	if res.DiscountType != "fixed" || res.DiscountPercentage != 150 {
		t.Fatalf("unexpected discount fields: %+v", res)
	}
	if res.DiscountAmount != 150 || res.Total != 850 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.Status != "SENT" || res.BudgetType != "TROCA" {
		t.Fatalf("unexpected enums: %+v", res)
	}
	if res.Items == nil {
		t.Fatalf("expected empty items slice, got nil")
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromBudget_LegacyDiscount(t *testing.T) {
	res := FromBudget(entities.Budget{Discount: entities.Discount{Value: 5}})
	if res.DiscountType != "percentage" || res.DiscountPercentage != 5 {
		t.Fatalf("expected percentage default, got %+v", res)
	}
}

func TestFromBudgetTypes(t *testing.T) {
	res := FromBudgetTypes(entities.BudgetTypes())
	if len(res.Types) != 5 || res.Types[0] != "REMOÇÃO" {
		t.Fatalf("unexpected types: %+v", res)
	}
}

func TestNonNil(t *testing.T) {
	var s []string
	if out := NonNil(s); out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}
