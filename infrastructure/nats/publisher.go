package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"meetapp/pkg/logger"
)

// Publisher writes JSON payloads to JetStream subjects.
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// PublishJSON marshals payload and publishes it to subject, waiting for the
// stream ack.
func (p *Publisher) PublishJSON(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	logger.DebugContext(ctx, "Event published to JetStream",
		"subject", subject,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)
	return nil
}
