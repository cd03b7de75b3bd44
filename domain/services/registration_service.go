package services

import (
	"context"

	"meetapp/domain/models"
)

type RegistrationService interface {
	ListUpcoming(ctx context.Context, userID uint) ([]*models.Registration, error)
	Register(ctx context.Context, userID, meetupID uint) (*models.Registration, error)
	Cancel(ctx context.Context, userID, registrationID uint) error
}
