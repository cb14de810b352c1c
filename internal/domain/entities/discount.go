package entities

// DiscountKind tells how a budget-level discount value is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Discount is either a percentage of the subtotal or a fixed currency amount.
// Build it with PercentageDiscount or FixedDiscount.
type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

func PercentageDiscount(pct float64) Discount {
	return Discount{Kind: DiscountPercentage, Value: pct}
}

func FixedDiscount(amount float64) Discount {
	return Discount{Kind: DiscountFixed, Value: amount}
}

func (d Discount) IsFixed() bool {
	return d.Kind == DiscountFixed
}
