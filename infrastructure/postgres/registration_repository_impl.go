package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"meetapp/domain/models"
	"meetapp/domain/repositories"
)

type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) repositories.RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, registration *models.Registration) error {
	return translateError(r.db.WithContext(ctx).Create(registration).Error)
}

func (r *RegistrationRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).
		Preload("Meetup").
		First(&registration, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &registration, nil
}

func (r *RegistrationRepositoryImpl) GetByUserAndMeetup(ctx context.Context, userID, meetupID uint) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND meetup_id = ?", userID, meetupID).
		First(&registration).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &registration, nil
}

func (r *RegistrationRepositoryImpl) ExistsAtDate(ctx context.Context, userID uint, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Joins("JOIN meetups ON meetups.id = registrations.meetup_id").
		Where("registrations.user_id = ? AND meetups.date = ?", userID, date).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *RegistrationRepositoryImpl) ListUpcomingByUser(ctx context.Context, userID uint, now time.Time) ([]*models.Registration, error) {
	var registrations []*models.Registration
	err := r.db.WithContext(ctx).
		Joins("JOIN meetups ON meetups.id = registrations.meetup_id").
		Where("registrations.user_id = ? AND meetups.date > ?", userID, now).
		Preload("Meetup").
		Preload("Meetup.User", userSummary).
		Preload("Meetup.Banner").
		Order("meetups.date ASC").
		Find(&registrations).Error
	return registrations, translateError(err)
}

func (r *RegistrationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Registration{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
