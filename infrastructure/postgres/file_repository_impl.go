package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"meetapp/domain/models"
	"meetapp/domain/repositories"
)

type FileRepositoryImpl struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) repositories.FileRepository {
	return &FileRepositoryImpl{db: db}
}

func (r *FileRepositoryImpl) Create(ctx context.Context, file *models.File) error {
	return translateError(r.db.WithContext(ctx).Create(file).Error)
}

func (r *FileRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.File, error) {
	var file models.File
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &file, nil
}

func (r *FileRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.File{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *FileRepositoryImpl) ListOrphans(ctx context.Context, olderThan time.Time, limit int) ([]*models.File, error) {
	var files []*models.File
	err := r.db.WithContext(ctx).
		Where("files.created_at < ?", olderThan).
		Where("NOT EXISTS (SELECT 1 FROM meetups WHERE meetups.banner_id = files.id)").
		Order("files.id ASC").
		Limit(limit).
		Find(&files).Error
	return files, translateError(err)
}
