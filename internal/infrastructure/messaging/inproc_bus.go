package messaging

import (
	"context"
	"fmt"

	"github.com/rodolfodevapp/eventshop-messaging-go/core/primitives"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/application"
)

// InProcEventBus dispatches events synchronously inside the process, keyed
// by routing key. It keeps the Subscribe/Publish surface of the broker-backed
// buses so a rabbit transport can replace it for a multi-service deployment.
type InProcEventBus struct {
	handlers map[string][]application.EventHandler
}

func NewInProcEventBus() *InProcEventBus {
	return &InProcEventBus{
		handlers: make(map[string][]application.EventHandler),
	}
}

func (b *InProcEventBus) Subscribe(routingKey string, h application.EventHandler) {
	b.handlers[routingKey] = append(b.handlers[routingKey], h)
}

// Publish delivers to every handler registered for the event's routing key,
// in registration order, inline on the caller's goroutine. The first handler
// error aborts delivery and is returned to the publisher.
func (b *InProcEventBus) Publish(ctx context.Context, ev primitives.Event) error {
	key := ev.GetRoutingKey()
	for _, h := range b.handlers[key] {
		if err := h.Handle(ctx, ev); err != nil {
			return fmt.Errorf("handle %s: %w", key, err)
		}
	}
	return nil
}
