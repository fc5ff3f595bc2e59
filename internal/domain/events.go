package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/rodolfodevapp/eventshop-messaging-go/core/primitives"
	"github.com/shopspring/decimal"
)

// =========== Eventos salientes Checkout -> journal / otros ===========

// ItemAddedToCart (tras una reserva de stock exitosa)
type ItemAddedToCartEvent struct {
	primitives.BaseEvent
	CartID     uuid.UUID       `json:"cartId"`
	UserID     string          `json:"userId"`
	Sku        string          `json:"sku"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	AddedAtUtc time.Time       `json:"addedAtUtc"`
}

func NewItemAddedToCartEvent(cartID uuid.UUID, userID string, line CartLine) *ItemAddedToCartEvent {
	ev := &ItemAddedToCartEvent{
		BaseEvent:  primitives.NewBaseEvent(),
		CartID:     cartID,
		UserID:     userID,
		Sku:        line.Sku,
		Name:       line.Name,
		Quantity:   line.Quantity,
		UnitPrice:  line.UnitPrice,
		AddedAtUtc: time.Now().UTC(),
	}
	ev.SetRoutingKey("ItemAddedToCart")
	return ev
}

type StockReservationFailedEvent struct {
	primitives.BaseEvent
	CartID      uuid.UUID `json:"cartId"`
	UserID      string    `json:"userId"`
	Sku         string    `json:"sku"`
	Requested   int       `json:"requested"`
	Available   int       `json:"available"`
	Reason      string    `json:"reason"`
	FailedAtUtc time.Time `json:"failedAtUtc"`
}

func NewStockReservationFailedEvent(cartID uuid.UUID, userID, sku string, requested, available int, reason string) *StockReservationFailedEvent {
	ev := &StockReservationFailedEvent{
		BaseEvent:   primitives.NewBaseEvent(),
		CartID:      cartID,
		UserID:      userID,
		Sku:         sku,
		Requested:   requested,
		Available:   available,
		Reason:      reason,
		FailedAtUtc: time.Now().UTC(),
	}
	ev.SetRoutingKey("StockReservationFailed")
	return ev
}

// CheckoutCompleted (cierre de la sesion)
type CheckoutCompletedLine struct {
	Sku       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type CheckoutCompletedEvent struct {
	primitives.BaseEvent
	CartID         uuid.UUID               `json:"cartId"`
	UserID         string                  `json:"userId"`
	Subtotal       decimal.Decimal         `json:"subtotal"`
	Total          decimal.Decimal         `json:"total"`
	DiscountType   DiscountType            `json:"discountType"`
	DiscountValue  decimal.Decimal         `json:"discountValue"`
	Lines          []CheckoutCompletedLine `json:"lines"`
	CompletedAtUtc time.Time               `json:"completedAtUtc"`
}

func NewCheckoutCompletedEvent(cart *Cart, subtotal, total decimal.Decimal, d Discount) *CheckoutCompletedEvent {
	lines := make([]CheckoutCompletedLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, CheckoutCompletedLine{
			Sku:       l.Sku,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	ev := &CheckoutCompletedEvent{
		BaseEvent:      primitives.NewBaseEvent(),
		CartID:         cart.ID,
		UserID:         cart.UserID,
		Subtotal:       subtotal,
		Total:          total,
		DiscountType:   d.Type,
		DiscountValue:  d.Value,
		Lines:          lines,
		CompletedAtUtc: time.Now().UTC(),
	}
	ev.SetRoutingKey("CheckoutCompleted")
	return ev
}
