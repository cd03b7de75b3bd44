package dto

import "time"

type CreateRegistrationRequest struct {
	MeetupID NumericID `json:"meetup_id" validate:"required"`
}

type RegistrationResponse struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	MeetupID  uint            `json:"meetup_id"`
	Meetup    *MeetupResponse `json:"meetup,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
