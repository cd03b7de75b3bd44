package services

import (
	"context"

	"meetapp/domain/dto"
	"meetapp/domain/models"
)

type MeetupService interface {
	List(ctx context.Context, query *dto.ListMeetupsQuery) ([]*models.Meetup, error)
	Create(ctx context.Context, userID uint, req *dto.CreateMeetupRequest) (*models.Meetup, error)
	// Update checks existence, ownership and the past date before validating req.
	// A nil req fails validation.
	Update(ctx context.Context, userID, meetupID uint, req *dto.UpdateMeetupRequest) (*models.Meetup, error)
	Delete(ctx context.Context, userID, meetupID uint) error
	Show(ctx context.Context, userID, meetupID uint) (*models.Meetup, error)
	// Dashboard lists the meetups organised by userID.
	Dashboard(ctx context.Context, userID uint) ([]*models.Meetup, error)
}
