package messaging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rodolfodevapp/eventshop-messaging-go/core/primitives"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/infrastructure/messaging"
)

type captureHandler struct {
	name string
	seen *[]string
	err  error
}

func (h *captureHandler) Handle(ctx context.Context, ev primitives.Event) error {
	if h.err != nil {
		return h.err
	}
	*h.seen = append(*h.seen, h.name)
	return nil
}

func testEvent() primitives.Event {
	cart := domain.NewCart("U1")
	apple := domain.NewProduct("APPLE", "Apple", decimal.NewFromInt(50), 100, "Fresh")
	return domain.NewItemAddedToCartEvent(cart.ID, cart.UserID, domain.NewCartLine(apple, 2))
}

func TestInProcEventBus(t *testing.T) {
	ctx := context.Background()

	t.Run("Publish_DeliversByRoutingKeyInOrder", func(t *testing.T) {
		bus := messaging.NewInProcEventBus()
		var seen []string
		bus.Subscribe("ItemAddedToCart", &captureHandler{name: "first", seen: &seen})
		bus.Subscribe("ItemAddedToCart", &captureHandler{name: "second", seen: &seen})
		bus.Subscribe("CheckoutCompleted", &captureHandler{name: "other", seen: &seen})

		require.NoError(t, bus.Publish(ctx, testEvent()))
		require.Equal(t, []string{"first", "second"}, seen)
	})

	t.Run("Publish_NoSubscribersIsFine", func(t *testing.T) {
		bus := messaging.NewInProcEventBus()
		require.NoError(t, bus.Publish(ctx, testEvent()))
	})

	t.Run("Publish_HandlerErrorAbortsDelivery", func(t *testing.T) {
		bus := messaging.NewInProcEventBus()
		var seen []string
		boom := errors.New("boom")
		bus.Subscribe("ItemAddedToCart", &captureHandler{name: "failing", seen: &seen, err: boom})
		bus.Subscribe("ItemAddedToCart", &captureHandler{name: "after", seen: &seen})

		err := bus.Publish(ctx, testEvent())
		require.ErrorIs(t, err, boom)
		require.Empty(t, seen)
	})
}
