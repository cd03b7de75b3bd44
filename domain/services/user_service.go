package services

import (
	"context"

	"meetapp/domain/dto"
	"meetapp/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	// Login returns a signed token for valid credentials.
	Login(ctx context.Context, req *dto.CreateSessionRequest) (string, *models.User, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*models.User, error)
}
