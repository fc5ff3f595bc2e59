package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/application"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/infrastructure/memory"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/infrastructure/messaging"
)

// SelfCheck runs the documented smoke scenarios against a throwaway catalog
// before the menu starts. It returns the first failed expectation.
func SelfCheck(ctx context.Context) error {
	apple := domain.NewProduct("APPLE", "Apple", decimal.NewFromInt(50), 100, "Fresh apple")
	milk := domain.NewPerishableProduct("MILK", "Milk", decimal.NewFromInt(120), 30, "Fresh milk", 7)

	if milk.ShelfLifeDays != 7 {
		return fmt.Errorf("self-check: milk shelf life = %d, want 7", milk.ShelfLifeDays)
	}

	catalog := memory.NewMemCatalogRepository(apple, milk)
	checkout := application.NewCheckoutService(catalog, messaging.NewInProcEventBus(), "self-check", "KES")

	if _, err := checkout.AddToCart(ctx, 0, 2); err != nil {
		return fmt.Errorf("self-check: add 2 apples: %w", err)
	}
	if total := checkout.CartTotal(); !total.Equal(decimal.NewFromInt(100)) {
		return fmt.Errorf("self-check: cart total = %s, want 100.00", total.StringFixed(2))
	}
	if apple.Stock != 98 {
		return fmt.Errorf("self-check: apple stock = %d, want 98", apple.Stock)
	}
	if _, err := checkout.AddToCart(ctx, 0, 200); !errors.Is(err, domain.ErrInsufficientStock) {
		return fmt.Errorf("self-check: oversized reservation returned %v, want insufficient stock", err)
	}

	tenPercentOff := domain.NewPercentageDiscount(decimal.NewFromInt(10))
	if got := tenPercentOff.Apply(decimal.NewFromInt(100)); !got.Equal(decimal.NewFromInt(90)) {
		return fmt.Errorf("self-check: 10%% off 100 = %s, want 90.00", got.StringFixed(2))
	}
	twentyOff := domain.NewFixedAmountDiscount(decimal.NewFromInt(20))
	if got := twentyOff.Apply(decimal.NewFromInt(100)); !got.Equal(decimal.NewFromInt(80)) {
		return fmt.Errorf("self-check: 20 off 100 = %s, want 80.00", got.StringFixed(2))
	}
	overshoot := domain.NewFixedAmountDiscount(decimal.NewFromInt(150))
	if got := overshoot.Apply(decimal.NewFromInt(100)); !got.Equal(decimal.Zero) {
		return fmt.Errorf("self-check: 150 off 100 = %s, want 0.00", got.StringFixed(2))
	}

	return nil
}
