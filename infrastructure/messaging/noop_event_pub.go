package messaging

import (
	"context"

	"meetapp/domain/ports"
	"meetapp/pkg/logger"
)

// NoopEventPublisher logs events instead of sending them. Used when NATS is
// not reachable.
type NoopEventPublisher struct{}

func NewNoopEventPublisher() ports.EventPublisherPort {
	return &NoopEventPublisher{}
}

func (p *NoopEventPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	if event == nil {
		return nil
	}
	logger.DebugContext(ctx, "Event (noop)",
		"type", event.Type,
		"meetup_id", event.MeetupID,
		"actor_id", event.ActorID,
	)
	return nil
}
