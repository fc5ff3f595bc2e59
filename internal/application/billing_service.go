package application

import (
	"github.com/shopspring/decimal"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
)

// BillingService renders receipts and applies discounts. It holds no
// discount policy of its own; choosing the strategy is the caller's job.
type BillingService struct {
	currency string
}

func NewBillingService(currency string) *BillingService {
	return &BillingService{currency: currency}
}

func (b *BillingService) GenerateBill(cart *domain.Cart) string {
	return cart.Render(b.currency)
}

func (b *BillingService) ApplyDiscount(amount decimal.Decimal, d domain.Discount) decimal.Decimal {
	return d.Apply(amount)
}
