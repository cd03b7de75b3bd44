package repositories

import (
	"context"
	"time"

	"meetapp/domain/models"
)

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uint) (*models.File, error)
	Delete(ctx context.Context, id uint) error
	// ListOrphans returns files created before olderThan that no meetup uses as banner.
	ListOrphans(ctx context.Context, olderThan time.Time, limit int) ([]*models.File, error)
}
