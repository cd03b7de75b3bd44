package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"meetapp/domain/dto"
	"meetapp/domain/models"
	"meetapp/domain/ports"
	"meetapp/domain/repositories"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	jwtSecret    string
	jwtExpiresIn time.Duration
	bcryptCost   int
	listCache    ports.CachePort // meetup list pages embed owner name and email
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string, jwtExpiresIn time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		jwtSecret:    jwtSecret,
		jwtExpiresIn: jwtExpiresIn,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

// NewUserServiceWithCache also drops cached meetup list pages when a user's
// public name or email changes.
func NewUserServiceWithCache(userRepo repositories.UserRepository, jwtSecret string, jwtExpiresIn time.Duration, listCache ports.CachePort) services.UserService {
	s := NewUserService(userRepo, jwtSecret, jwtExpiresIn).(*UserServiceImpl)
	s.listCache = listCache
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		logger.WarnContext(ctx, "Email already exists", "email", email)
		return nil, services.ErrUserExists
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.ErrorContext(ctx, "Failed to look up user", "email", email, "error", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, services.ErrUserExists
		}
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created successfully", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CreateSessionRequest) (string, *models.User, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Login failed - email not found", "email", email)
			return "", nil, services.ErrUserNotFound
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.ErrPasswordMismatch
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiresIn)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in successfully", "user_id", user.ID)
	return token, user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "User not found for profile update", "user_id", userID)
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	prevName, prevEmail := user.Name, user.Email

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			existing, err := s.userRepo.GetByEmail(ctx, email)
			if err == nil && existing != nil {
				return nil, services.ErrUserExists
			}
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.OldPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			logger.WarnContext(ctx, "Profile update rejected - old password mismatch", "user_id", userID)
			return nil, services.ErrPasswordMismatch
		}
	}

	if req.Password != "" {
		if req.OldPassword == "" {
			return nil, services.ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, services.ErrUserExists
		}
		logger.ErrorContext(ctx, "Failed to update user", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User profile updated", "user_id", userID)

	if user.Name != prevName || user.Email != prevEmail {
		invalidateMeetupList(ctx, s.listCache)
	}
	return user, nil
}
