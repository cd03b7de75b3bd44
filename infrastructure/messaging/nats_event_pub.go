package messaging

import (
	"context"
	"fmt"
	"time"

	"meetapp/domain/ports"
	natspkg "meetapp/infrastructure/nats"
)

// jsonPublisher is satisfied by *natspkg.Publisher.
type jsonPublisher interface {
	PublishJSON(ctx context.Context, subject string, payload any) error
}

// NATSEventPublisher implements EventPublisherPort on top of JetStream.
type NATSEventPublisher struct {
	publisher jsonPublisher
}

func NewNATSEventPublisher(publisher jsonPublisher) ports.EventPublisherPort {
	return &NATSEventPublisher{publisher: publisher}
}

func (p *NATSEventPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return p.publisher.PublishJSON(ctx, natspkg.Subject(event.Type), event)
}
