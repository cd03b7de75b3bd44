package repositories

import (
	"context"
	"time"

	"meetapp/domain/models"
)

// MeetupListFilter restricts List. From/To are inclusive and applied only
// when both are set.
type MeetupListFilter struct {
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

type MeetupRepository interface {
	Create(ctx context.Context, meetup *models.Meetup) error
	// GetByID preloads owner and banner.
	GetByID(ctx context.Context, id uint) (*models.Meetup, error)
	List(ctx context.Context, filter MeetupListFilter) ([]*models.Meetup, error)
	ListByOwner(ctx context.Context, userID uint) ([]*models.Meetup, error)
	// Update writes only the given columns.
	Update(ctx context.Context, meetup *models.Meetup, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}
