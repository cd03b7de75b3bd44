package repositories

import (
	"context"
	"time"

	"meetapp/domain/models"
)

type RegistrationRepository interface {
	// Create returns ErrDuplicate when the user is already registered.
	Create(ctx context.Context, registration *models.Registration) error
	GetByID(ctx context.Context, id uint) (*models.Registration, error)
	GetByUserAndMeetup(ctx context.Context, userID, meetupID uint) (*models.Registration, error)
	// ExistsAtDate reports whether the user holds a registration for another
	// meetup scheduled at exactly date.
	ExistsAtDate(ctx context.Context, userID uint, date time.Time) (bool, error)
	ListUpcomingByUser(ctx context.Context, userID uint, now time.Time) ([]*models.Registration, error)
	Delete(ctx context.Context, id uint) error
}
