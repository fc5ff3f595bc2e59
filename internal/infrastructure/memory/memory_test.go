package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/infrastructure/memory"
)

func TestMemCatalogRepository(t *testing.T) {
	ctx := context.Background()
	apple := domain.NewProduct("APPLE", "Apple", decimal.NewFromInt(50), 100, "Fresh")
	bread := domain.NewProduct("BREAD", "Bread", decimal.NewFromInt(65), 50, "Broadways")

	t.Run("List_PreservesSeedOrder", func(t *testing.T) {
		repo := memory.NewMemCatalogRepository(apple, bread)
		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, "APPLE", products[0].Sku)
		require.Equal(t, "BREAD", products[1].Sku)
	})

	t.Run("GetByIndex_BoundsChecked", func(t *testing.T) {
		repo := memory.NewMemCatalogRepository(apple, bread)

		p, err := repo.GetByIndex(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "BREAD", p.Sku)

		_, err = repo.GetByIndex(ctx, -1)
		require.ErrorIs(t, err, domain.ErrInvalidIndex)
		_, err = repo.GetByIndex(ctx, 2)
		require.ErrorIs(t, err, domain.ErrInvalidIndex)
	})

	t.Run("GetBySku_UnknownSkuFails", func(t *testing.T) {
		repo := memory.NewMemCatalogRepository(apple)
		_, err := repo.GetBySku(ctx, "MILK")
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Save_InsertsNewAndUpdatesExisting", func(t *testing.T) {
		repo := memory.NewMemCatalogRepository(apple)

		milk := domain.NewPerishableProduct("MILK", "Milk", decimal.NewFromInt(120), 30, "Fresh milk", 7)
		require.NoError(t, repo.Save(ctx, milk))
		got, err := repo.GetByIndex(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "MILK", got.Sku)

		require.NoError(t, milk.Reserve(5))
		require.NoError(t, repo.Save(ctx, milk))
		got, err = repo.GetBySku(ctx, "MILK")
		require.NoError(t, err)
		require.Equal(t, 25, got.Stock)
	})
}

func TestMemPurchaseHistoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Append_KeepsPurchaseOrderAndDuplicates", func(t *testing.T) {
		repo := memory.NewMemPurchaseHistoryRepository()
		require.NoError(t, repo.Append(ctx, "U1", "Milk"))
		require.NoError(t, repo.Append(ctx, "U1", "Bread"))
		require.NoError(t, repo.Append(ctx, "U1", "Milk"))

		got, err := repo.GetByUser(ctx, "U1")
		require.NoError(t, err)
		require.Equal(t, []string{"Milk", "Bread", "Milk"}, got)
	})

	t.Run("GetByUser_UnknownUserIsEmpty", func(t *testing.T) {
		repo := memory.NewMemPurchaseHistoryRepository()
		got, err := repo.GetByUser(ctx, "nobody")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("ReturnedSlices_AreCopies", func(t *testing.T) {
		repo := memory.NewMemPurchaseHistoryRepository()
		require.NoError(t, repo.Append(ctx, "U1", "Milk"))

		got, err := repo.GetByUser(ctx, "U1")
		require.NoError(t, err)
		got[0] = "Tampered"

		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Milk"}, all["U1"])
		all["U1"][0] = "Tampered"

		again, err := repo.GetByUser(ctx, "U1")
		require.NoError(t, err)
		require.Equal(t, []string{"Milk"}, again)
	})
}
