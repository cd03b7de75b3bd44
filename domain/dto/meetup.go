package dto

import "time"

type CreateMeetupRequest struct {
	BannerID     NumericID `json:"banner_id" validate:"required"`
	Title        string    `json:"title" validate:"required,min=6"`
	Description  string    `json:"description" validate:"required"`
	Date         string    `json:"date" validate:"required,isodate"`
	Localization string    `json:"localization" validate:"required"`
}

// UpdateMeetupRequest is a partial update; nil fields are left untouched.
type UpdateMeetupRequest struct {
	BannerID     *NumericID `json:"banner_id" validate:"omitempty,gt=0"`
	Title        *string    `json:"title" validate:"omitempty,min=6"`
	Description  *string    `json:"description" validate:"omitempty,min=1"`
	Date         *string    `json:"date" validate:"omitempty,isodate"`
	Localization *string    `json:"localization" validate:"omitempty,min=1"`
}

type ListMeetupsQuery struct {
	Page int
	Date *time.Time
}

type MeetupUserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MeetupResponse struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Localization string              `json:"localization"`
	Date         time.Time           `json:"date"`
	Past         bool                `json:"past"`
	BannerID     uint                `json:"banner_id"`
	UserID       uint                `json:"user_id"`
	User         *MeetupUserResponse `json:"user,omitempty"`
	Banner       *FileResponse       `json:"banner,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}
