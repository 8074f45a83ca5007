// Package eventbus dispatches domain events to in-process subscribers.
// Delivery is synchronous and in subscription order, so a publisher observes
// the effects of its handlers when Publish returns.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/messaging"
)

type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]messaging.Handler
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]messaging.Handler)}
}

func (b *Bus) Subscribe(eventName string, handler messaging.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish runs every handler subscribed to the event's name. All handlers run
// even if one fails; their errors are joined.
func (b *Bus) Publish(ctx context.Context, event domain_transfer.DomainEvent) error {
	b.mu.RLock()
	handlers := append([]messaging.Handler(nil), b.handlers[event.EventName()]...)
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s handler: %w", event.EventName(), err))
		}
	}

	return errors.Join(errs...)
}
