package postgres

import (
	"context"

	"gorm.io/gorm"

	"meetapp/domain/models"
	"meetapp/domain/repositories"
)

type MeetupRepositoryImpl struct {
	db *gorm.DB
}

func NewMeetupRepository(db *gorm.DB) repositories.MeetupRepository {
	return &MeetupRepositoryImpl{db: db}
}

func (r *MeetupRepositoryImpl) Create(ctx context.Context, meetup *models.Meetup) error {
	return translateError(r.db.WithContext(ctx).Create(meetup).Error)
}

func (r *MeetupRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Meetup, error) {
	var meetup models.Meetup
	err := r.db.WithContext(ctx).
		Preload("User", userSummary).
		Preload("Banner").
		First(&meetup, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &meetup, nil
}

func (r *MeetupRepositoryImpl) List(ctx context.Context, filter repositories.MeetupListFilter) ([]*models.Meetup, error) {
	var meetups []*models.Meetup

	query := r.db.WithContext(ctx).
		Preload("User", userSummary).
		Preload("Banner")

	if filter.From != nil && filter.To != nil {
		query = query.Where("meetups.date BETWEEN ? AND ?", *filter.From, *filter.To)
	}

	// insertion order; id is serial
	err := query.Order("meetups.id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&meetups).Error
	return meetups, translateError(err)
}

func (r *MeetupRepositoryImpl) ListByOwner(ctx context.Context, userID uint) ([]*models.Meetup, error) {
	var meetups []*models.Meetup
	err := r.db.WithContext(ctx).
		Preload("Banner").
		Where("meetups.user_id = ?", userID).
		Order("meetups.date ASC").
		Find(&meetups).Error
	return meetups, translateError(err)
}

func (r *MeetupRepositoryImpl) Update(ctx context.Context, meetup *models.Meetup, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Model(meetup).Updates(fields).Error)
}

func (r *MeetupRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Meetup{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
