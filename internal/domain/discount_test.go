package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
)

func TestDiscount(t *testing.T) {
	hundred := decimal.RequireFromString("100.00")

	t.Run("Percentage_TenOffHundredIsNinety", func(t *testing.T) {
		d := domain.NewPercentageDiscount(decimal.NewFromInt(10))
		require.Equal(t, "90.00", d.Apply(hundred).StringFixed(2))
	})

	t.Run("Percentage_ZeroIsIdentity", func(t *testing.T) {
		d := domain.NewPercentageDiscount(decimal.Zero)
		require.True(t, d.Apply(hundred).Equal(hundred))
	})

	t.Run("Percentage_RateClampedToHundred", func(t *testing.T) {
		d := domain.NewPercentageDiscount(decimal.NewFromInt(150))
		require.Equal(t, "0.00", d.Apply(hundred).StringFixed(2))
	})

	t.Run("Percentage_NegativeRateClampedToZero", func(t *testing.T) {
		d := domain.NewPercentageDiscount(decimal.NewFromInt(-10))
		require.True(t, d.Apply(hundred).Equal(hundred))
	})

	t.Run("Percentage_MonotonicallyNonIncreasingInRate", func(t *testing.T) {
		rates := []int64{0, 10, 25, 50, 75, 100}
		prev := hundred
		for _, rate := range rates {
			got := domain.NewPercentageDiscount(decimal.NewFromInt(rate)).Apply(hundred)
			require.True(t, got.LessThanOrEqual(prev), "rate %d raised the total", rate)
			prev = got
		}
	})

	t.Run("FixedAmount_TwentyOffHundredIsEighty", func(t *testing.T) {
		d := domain.NewFixedAmountDiscount(decimal.NewFromInt(20))
		require.Equal(t, "80.00", d.Apply(hundred).StringFixed(2))
	})

	t.Run("FixedAmount_FloorsAtZero", func(t *testing.T) {
		d := domain.NewFixedAmountDiscount(decimal.NewFromInt(150))
		require.Equal(t, "0.00", d.Apply(hundred).StringFixed(2))
	})

	t.Run("FixedAmount_NeverNegative", func(t *testing.T) {
		amounts := []string{"0", "0.01", "19.99", "20", "100"}
		d := domain.NewFixedAmountDiscount(decimal.NewFromInt(20))
		for _, a := range amounts {
			got := d.Apply(decimal.RequireFromString(a))
			require.False(t, got.IsNegative(), "amount %s went negative", a)
		}
	})

	t.Run("NoDiscount_IsIdentity", func(t *testing.T) {
		d := domain.NewNoDiscount()
		require.True(t, d.Apply(hundred).Equal(hundred))
	})
}
