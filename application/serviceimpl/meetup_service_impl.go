package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetapp/domain/dto"
	"meetapp/domain/models"
	"meetapp/domain/ports"
	"meetapp/domain/repositories"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
	"meetapp/pkg/utils"
)

const (
	// MeetupPageSize is the fixed page size of the public listing.
	MeetupPageSize = 10

	meetupListCachePrefix = "meetups:list:"
)

type MeetupServiceImpl struct {
	meetupRepo repositories.MeetupRepository
	fileRepo   repositories.FileRepository
	storage    ports.StoragePort
	events     ports.EventPublisherPort
	cache      ports.CachePort // nil = no cache
	cacheTTL   time.Duration
	loc        *time.Location
	now        func() time.Time
}

func NewMeetupService(
	meetupRepo repositories.MeetupRepository,
	fileRepo repositories.FileRepository,
	storage ports.StoragePort,
	events ports.EventPublisherPort,
	loc *time.Location,
) services.MeetupService {
	return newMeetupService(meetupRepo, fileRepo, storage, events, loc)
}

// NewMeetupServiceWithCache caches public listing pages in cache for ttl.
func NewMeetupServiceWithCache(
	meetupRepo repositories.MeetupRepository,
	fileRepo repositories.FileRepository,
	storage ports.StoragePort,
	events ports.EventPublisherPort,
	loc *time.Location,
	cache ports.CachePort,
	ttl time.Duration,
) services.MeetupService {
	s := newMeetupService(meetupRepo, fileRepo, storage, events, loc)
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

func newMeetupService(
	meetupRepo repositories.MeetupRepository,
	fileRepo repositories.FileRepository,
	storage ports.StoragePort,
	events ports.EventPublisherPort,
	loc *time.Location,
) *MeetupServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &MeetupServiceImpl{
		meetupRepo: meetupRepo,
		fileRepo:   fileRepo,
		storage:    storage,
		events:     events,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *MeetupServiceImpl) List(ctx context.Context, query *dto.ListMeetupsQuery) ([]*models.Meetup, error) {
	page := 1
	var day *time.Time
	if query != nil {
		if query.Page < 0 {
			return nil, services.ErrInvalidPage
		}
		if query.Page > 0 {
			page = query.Page
		}
		day = query.Date
	}

	filter := repositories.MeetupListFilter{
		Offset: MeetupPageSize*page - MeetupPageSize,
		Limit:  MeetupPageSize,
	}

	dayKey := "all"
	if day != nil {
		from, to := utils.DayBounds(*day, s.loc)
		filter.From = &from
		filter.To = &to
		dayKey = from.Format("2006-01-02")
	}
	cacheKey := fmt.Sprintf("%s%s:%d", meetupListCachePrefix, dayKey, page)

	if s.cache != nil {
		var cached []*models.Meetup
		err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			logger.WarnContext(ctx, "Meetup list cache read failed", "key", cacheKey, "error", err)
		}
	}

	meetups, err := s.meetupRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list meetups", "page", page, "error", err)
		return nil, err
	}
	s.resolveBanners(meetups...)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, meetups, s.cacheTTL); err != nil {
			logger.WarnContext(ctx, "Meetup list cache write failed", "key", cacheKey, "error", err)
		}
	}

	return meetups, nil
}

func (s *MeetupServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateMeetupRequest) (*models.Meetup, error) {
	date, err := utils.ParseDate(req.Date, s.loc)
	if err != nil {
		return nil, services.ErrValidation
	}

	bannerID := req.BannerID.Uint()
	if err := s.ensureBanner(ctx, bannerID); err != nil {
		return nil, err
	}

	meetup := &models.Meetup{
		Title:        req.Title,
		Description:  req.Description,
		Localization: req.Localization,
		Date:         date,
		BannerID:     bannerID,
		UserID:       userID,
	}

	if err := s.meetupRepo.Create(ctx, meetup); err != nil {
		logger.ErrorContext(ctx, "Failed to create meetup", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Meetup created", "meetup_id", meetup.ID, "user_id", userID)

	created := s.reload(ctx, meetup)
	s.invalidateList(ctx)
	s.publish(ctx, ports.EventMeetupCreated, created, userID)
	return created, nil
}

func (s *MeetupServiceImpl) Update(ctx context.Context, userID, meetupID uint, req *dto.UpdateMeetupRequest) (*models.Meetup, error) {
	meetup, err := s.loadOwned(ctx, userID, meetupID)
	if err != nil {
		return nil, err
	}

	if meetup.IsPast(s.now()) {
		logger.WarnContext(ctx, "Refusing to update past meetup", "meetup_id", meetupID)
		return nil, services.ErrPastMeetupUpdate
	}

	// nil req = body that could not be parsed
	if req == nil {
		return nil, services.ErrValidation
	}
	if err := utils.ValidateStruct(req); err != nil {
		logger.WarnContext(ctx, "Meetup update validation failed", "meetup_id", meetupID, "errors", utils.GetValidationErrors(err))
		return nil, services.ErrValidation
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Localization != nil {
		fields["localization"] = *req.Localization
	}
	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date, s.loc)
		if err != nil {
			return nil, services.ErrValidation
		}
		fields["date"] = date
	}
	if req.BannerID != nil {
		bannerID := req.BannerID.Uint()
		if err := s.ensureBanner(ctx, bannerID); err != nil {
			return nil, err
		}
		fields["banner_id"] = bannerID
	}

	if len(fields) == 0 {
		s.resolveBanners(meetup)
		return meetup, nil
	}

	if err := s.meetupRepo.Update(ctx, meetup, fields); err != nil {
		logger.ErrorContext(ctx, "Failed to update meetup", "meetup_id", meetupID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Meetup updated", "meetup_id", meetupID, "fields", len(fields))

	updated := s.reload(ctx, meetup)
	s.invalidateList(ctx)
	s.publish(ctx, ports.EventMeetupUpdated, updated, userID)
	return updated, nil
}

func (s *MeetupServiceImpl) Delete(ctx context.Context, userID, meetupID uint) error {
	meetup, err := s.loadOwned(ctx, userID, meetupID)
	if err != nil {
		return err
	}

	if meetup.IsPast(s.now()) {
		logger.WarnContext(ctx, "Refusing to cancel past meetup", "meetup_id", meetupID)
		return services.ErrPastMeetupDelete
	}

	if err := s.meetupRepo.Delete(ctx, meetupID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrMeetupNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete meetup", "meetup_id", meetupID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Meetup cancelled", "meetup_id", meetupID, "user_id", userID)

	s.invalidateList(ctx)
	s.publish(ctx, ports.EventMeetupCancelled, meetup, userID)
	return nil
}

func (s *MeetupServiceImpl) Show(ctx context.Context, userID, meetupID uint) (*models.Meetup, error) {
	meetup, err := s.loadOwned(ctx, userID, meetupID)
	if err != nil {
		return nil, err
	}
	s.resolveBanners(meetup)
	return meetup, nil
}

func (s *MeetupServiceImpl) Dashboard(ctx context.Context, userID uint) ([]*models.Meetup, error) {
	meetups, err := s.meetupRepo.ListByOwner(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list organiser meetups", "user_id", userID, "error", err)
		return nil, err
	}
	s.resolveBanners(meetups...)
	return meetups, nil
}

// loadOwned applies the not-found and ownership guards, in that order.
func (s *MeetupServiceImpl) loadOwned(ctx context.Context, userID, meetupID uint) (*models.Meetup, error) {
	meetup, err := s.meetupRepo.GetByID(ctx, meetupID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrMeetupNotFound
		}
		return nil, err
	}
	if !meetup.IsOwnedBy(userID) {
		logger.WarnContext(ctx, "Meetup ownership check failed", "meetup_id", meetupID, "owner_id", meetup.UserID, "user_id", userID)
		return nil, services.ErrNotMeetupOwner
	}
	return meetup, nil
}

func (s *MeetupServiceImpl) ensureBanner(ctx context.Context, bannerID uint) error {
	if _, err := s.fileRepo.GetByID(ctx, bannerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrBannerNotFound
		}
		return err
	}
	return nil
}

// reload fetches owner and banner after a write. On failure the written
// record is returned as is.
func (s *MeetupServiceImpl) reload(ctx context.Context, meetup *models.Meetup) *models.Meetup {
	fresh, err := s.meetupRepo.GetByID(ctx, meetup.ID)
	if err != nil {
		logger.WarnContext(ctx, "Failed to reload meetup", "meetup_id", meetup.ID, "error", err)
		return meetup
	}
	s.resolveBanners(fresh)
	return fresh
}

func (s *MeetupServiceImpl) resolveBanners(meetups ...*models.Meetup) {
	for _, m := range meetups {
		if m != nil && m.Banner != nil && s.storage != nil {
			m.Banner.URL = s.storage.GetFileURL(m.Banner.Path)
		}
	}
}

func (s *MeetupServiceImpl) invalidateList(ctx context.Context) {
	invalidateMeetupList(ctx, s.cache)
}

// invalidateMeetupList drops every cached list page. A nil cache is a no-op.
func invalidateMeetupList(ctx context.Context, cache ports.CachePort) {
	if cache == nil {
		return
	}
	if _, err := cache.DeletePattern(ctx, meetupListCachePrefix+"*"); err != nil {
		logger.WarnContext(ctx, "Meetup list cache invalidation failed", "error", err)
	}
}

func (s *MeetupServiceImpl) publish(ctx context.Context, eventType string, meetup *models.Meetup, actorID uint) {
	if s.events == nil || meetup == nil {
		return
	}
	event := &ports.DomainEvent{
		Type:       eventType,
		MeetupID:   meetup.ID,
		ActorID:    actorID,
		OwnerID:    meetup.UserID,
		Title:      meetup.Title,
		Date:       meetup.Date,
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", eventType, "meetup_id", meetup.ID, "error", err)
	}
}
