package nats

import "strings"

const (
	DefaultStreamName = "MEETAPP"
	SubjectPrefix     = "meetapp"
)

// Subject maps an event type such as "meetup.created" to its subject
// "meetapp.meetup.created".
func Subject(eventType string) string {
	return SubjectPrefix + "." + strings.Trim(eventType, ".")
}
