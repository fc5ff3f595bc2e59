package application

import (
	"context"

	"github.com/rodolfodevapp/eventshop-messaging-go/core/primitives"
)

type EventHandler interface {
	Handle(ctx context.Context, ev primitives.Event) error
}

// EventBus is the producing side only; the session runs in a single process
// and subscriptions are wired at start-up by the composition root.
type EventBus interface {
	Publish(ctx context.Context, ev primitives.Event) error
}
