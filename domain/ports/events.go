package ports

import (
	"context"
	"time"
)

const (
	EventMeetupCreated         = "meetup.created"
	EventMeetupUpdated         = "meetup.updated"
	EventMeetupCancelled       = "meetup.cancelled"
	EventRegistrationCreated   = "registration.created"
	EventRegistrationCancelled = "registration.cancelled"
)

// DomainEvent is published after a state change has been committed.
type DomainEvent struct {
	Type           string    `json:"type"`
	MeetupID       uint      `json:"meetup_id"`
	ActorID        uint      `json:"actor_id"`
	OwnerID        uint      `json:"owner_id,omitempty"`
	RegistrationID uint      `json:"registration_id,omitempty"`
	Title          string    `json:"title,omitempty"`
	Date           time.Time `json:"date"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type EventPublisherPort interface {
	Publish(ctx context.Context, event *DomainEvent) error
}
