// Package pricing holds the pure budget arithmetic: item normalization,
// budget totals, commission amounts and the effects of status changes.
//
// All values are IEEE-754 float64. Nothing here rounds.
package pricing

import (
	"fmt"

	"orcasys/internal/domain/entities"
)

// FieldError reports an input value outside its allowed range.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ItemInput is a budget line as supplied by a caller. Nil pointers mean the
// value was not provided.
type ItemInput struct {
	ItemID                 string
	ItemName               string
	Quantity               float64
	UnitPrice              float64
	Length                 *float64
	Height                 *float64
	Width                  *float64
	AreaM2                 *float64
	CanvasColor            string
	PrintPercentage        *float64
	ItemDiscountPercentage *float64
	Subtotal               *float64
	FinalPrice             *float64
}

// Totals is the result of a full budget recomputation.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// ValidateItem checks the ranges of a caller-supplied line.
func ValidateItem(in ItemInput) error {
	if in.Quantity < 0 {
		return &FieldError{Field: "quantity", Reason: "must be >= 0"}
	}
	if in.UnitPrice < 0 {
		return &FieldError{Field: "unit_price", Reason: "must be >= 0"}
	}
	if p := in.ItemDiscountPercentage; p != nil && (*p < 0 || *p > 100) {
		return &FieldError{Field: "item_discount_percentage", Reason: "must be between 0 and 100"}
	}
	if p := in.PrintPercentage; p != nil && (*p < 0 || *p > 100) {
		return &FieldError{Field: "print_percentage", Reason: "must be between 0 and 100"}
	}
	return nil
}

// ValidateDiscount checks a budget-level discount.
func ValidateDiscount(d entities.Discount) error {
	switch d.Kind {
	case entities.DiscountPercentage:
		if d.Value < 0 || d.Value > 100 {
			return &FieldError{Field: "discount_percentage", Reason: "must be between 0 and 100"}
		}
	case entities.DiscountFixed:
		if d.Value < 0 {
			return &FieldError{Field: "discount_percentage", Reason: "fixed discount must be >= 0"}
		}
	default:
		return &FieldError{Field: "discount_type", Reason: fmt.Sprintf("unknown discount type %q", d.Kind)}
	}
	return nil
}

// ParseDiscount builds a Discount from its wire representation. An empty
// kind means percentage.
func ParseDiscount(kind string, value float64) (entities.Discount, error) {
	var d entities.Discount
	switch entities.DiscountKind(kind) {
	case "", entities.DiscountPercentage:
		d = entities.PercentageDiscount(value)
	case entities.DiscountFixed:
		d = entities.FixedDiscount(value)
	default:
		d = entities.Discount{Kind: entities.DiscountKind(kind), Value: value}
	}
	return d, ValidateDiscount(d)
}

// NormalizeItem resolves the subtotal and final price of a line.
//
// The subtotal is the caller's value when given, otherwise quantity times
// unit price. An item discount percentage always recomputes the final price
// from the subtotal; without one, a supplied final price is kept and a
// missing one becomes the subtotal.
func NormalizeItem(in ItemInput) entities.BudgetItem {
	subtotal := in.Quantity * in.UnitPrice
	if in.Subtotal != nil {
		subtotal = *in.Subtotal
	}

	var final float64
	switch {
	case in.ItemDiscountPercentage != nil:
		final = subtotal * (1 - *in.ItemDiscountPercentage/100)
	case in.FinalPrice != nil:
		final = *in.FinalPrice
	default:
		final = subtotal
	}

	return entities.BudgetItem{
		ItemID:                 in.ItemID,
		ItemName:               in.ItemName,
		Quantity:               in.Quantity,
		UnitPrice:              in.UnitPrice,
		Length:                 in.Length,
		Height:                 in.Height,
		Width:                  in.Width,
		AreaM2:                 in.AreaM2,
		CanvasColor:            in.CanvasColor,
		PrintPercentage:        in.PrintPercentage,
		ItemDiscountPercentage: in.ItemDiscountPercentage,
		Subtotal:               subtotal,
		FinalPrice:             &final,
	}
}

// ItemEffectivePrice is the amount a line contributes to the budget subtotal.
func ItemEffectivePrice(it entities.BudgetItem) float64 {
	if it.FinalPrice != nil {
		return *it.FinalPrice
	}
	return it.Subtotal
}

// ComputeBudgetTotals recomputes subtotal, discount and total from scratch.
// A fixed discount is not clamped, so the total can go negative.
func ComputeBudgetTotals(items []entities.BudgetItem, d entities.Discount) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += ItemEffectivePrice(it)
	}

	var discount float64
	if d.IsFixed() {
		discount = d.Value
	} else {
		discount = subtotal * d.Value / 100
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}

// CommissionAmount is the seller's share of a budget total.
func CommissionAmount(total, pct float64) float64 {
	return total * pct / 100
}

// Effect is a side effect required by a budget status change.
type Effect int

const (
	EffectNone Effect = iota
	EffectCreateCommission
)

func (e Effect) String() string {
	switch e {
	case EffectCreateCommission:
		return "create_commission"
	default:
		return "none"
	}
}

// ApplyStatusChange returns the effect of moving a budget from old to next.
// Budget creation passes an empty old status. A commission is only due on the
// edge into APPROVED, and only when a seller is assigned.
func ApplyStatusChange(old, next entities.BudgetStatus, hasSeller bool) Effect {
	if next == entities.BudgetStatusApproved && old != entities.BudgetStatusApproved && hasSeller {
		return EffectCreateCommission
	}
	return EffectNone
}
