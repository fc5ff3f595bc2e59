package domain

import "github.com/shopspring/decimal"

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
	DiscountNone        DiscountType = "NONE"
)

// Discount is a pure post-processing step over a cart total. It carries no
// state beyond its parameter and is safe to reuse across calls.
type Discount struct {
	Type  DiscountType
	Value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

func NewNoDiscount() Discount {
	return Discount{Type: DiscountNone, Value: decimal.Zero}
}

// NewPercentageDiscount clamps the rate to [0,100]; a discount never raises
// a total.
func NewPercentageDiscount(rate decimal.Decimal) Discount {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	if rate.GreaterThan(hundred) {
		rate = hundred
	}
	return Discount{Type: DiscountPercentage, Value: rate}
}

func NewFixedAmountDiscount(amount decimal.Decimal) Discount {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return Discount{Type: DiscountFixedAmount, Value: amount}
}

func (d Discount) Apply(amount decimal.Decimal) decimal.Decimal {
	switch d.Type {
	case DiscountPercentage:
		return amount.Mul(hundred.Sub(d.Value)).Div(hundred)
	case DiscountFixedAmount:
		out := amount.Sub(d.Value)
		if out.IsNegative() {
			return decimal.Zero
		}
		return out
	default:
		return amount
	}
}
