package messaging

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
)

type Handler func(ctx context.Context, event domain_transfer.DomainEvent) error

type Publisher interface {
	Publish(ctx context.Context, event domain_transfer.DomainEvent) error
}

type Subscriber interface {
	Subscribe(eventName string, handler Handler)
}
