package serviceimpl

import (
	"context"
	"errors"
	"time"

	"meetapp/domain/models"
	"meetapp/domain/ports"
	"meetapp/domain/repositories"
	"meetapp/domain/services"
	"meetapp/pkg/logger"
)

type RegistrationServiceImpl struct {
	registrationRepo repositories.RegistrationRepository
	meetupRepo       repositories.MeetupRepository
	storage          ports.StoragePort
	events           ports.EventPublisherPort
	now              func() time.Time
}

func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	meetupRepo repositories.MeetupRepository,
	storage ports.StoragePort,
	events ports.EventPublisherPort,
) services.RegistrationService {
	return &RegistrationServiceImpl{
		registrationRepo: registrationRepo,
		meetupRepo:       meetupRepo,
		storage:          storage,
		events:           events,
		now:              time.Now,
	}
}

func (s *RegistrationServiceImpl) ListUpcoming(ctx context.Context, userID uint) ([]*models.Registration, error) {
	registrations, err := s.registrationRepo.ListUpcomingByUser(ctx, userID, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list registrations", "user_id", userID, "error", err)
		return nil, err
	}
	for _, r := range registrations {
		if r.Meetup != nil && r.Meetup.Banner != nil && s.storage != nil {
			r.Meetup.Banner.URL = s.storage.GetFileURL(r.Meetup.Banner.Path)
		}
	}
	return registrations, nil
}

func (s *RegistrationServiceImpl) Register(ctx context.Context, userID, meetupID uint) (*models.Registration, error) {
	meetup, err := s.meetupRepo.GetByID(ctx, meetupID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrRegistrationMeetupNotFound
		}
		return nil, err
	}

	if meetup.IsOwnedBy(userID) {
		return nil, services.ErrOwnMeetupRegistration
	}

	if meetup.IsPast(s.now()) {
		return nil, services.ErrPastMeetupRegistration
	}

	if _, err := s.registrationRepo.GetByUserAndMeetup(ctx, userID, meetupID); err == nil {
		return nil, services.ErrAlreadyRegistered
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	conflict, err := s.registrationRepo.ExistsAtDate(ctx, userID, meetup.Date)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check registration conflicts", "user_id", userID, "error", err)
		return nil, err
	}
	if conflict {
		logger.WarnContext(ctx, "Registration time conflict", "user_id", userID, "meetup_id", meetupID)
		return nil, services.ErrRegistrationTimeConflict
	}

	registration := &models.Registration{
		UserID:   userID,
		MeetupID: meetupID,
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		// unique index กันกรณีสมัครซ้อนกันพร้อมกัน
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, services.ErrAlreadyRegistered
		}
		logger.ErrorContext(ctx, "Failed to create registration", "user_id", userID, "meetup_id", meetupID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Registration created", "registration_id", registration.ID, "meetup_id", meetupID, "user_id", userID)

	if meetup.Banner != nil && s.storage != nil {
		meetup.Banner.URL = s.storage.GetFileURL(meetup.Banner.Path)
	}
	registration.Meetup = meetup

	s.publish(ctx, ports.EventRegistrationCreated, registration, meetup, userID)
	return registration, nil
}

func (s *RegistrationServiceImpl) Cancel(ctx context.Context, userID, registrationID uint) error {
	registration, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrRegistrationNotFound
		}
		return err
	}

	if registration.UserID != userID {
		logger.WarnContext(ctx, "Registration ownership check failed", "registration_id", registrationID, "user_id", userID)
		return services.ErrNotRegistrationOwner
	}

	meetup := registration.Meetup
	if meetup == nil {
		meetup, err = s.meetupRepo.GetByID(ctx, registration.MeetupID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
	}
	if meetup != nil && meetup.IsPast(s.now()) {
		return services.ErrPastRegistrationCancel
	}

	if err := s.registrationRepo.Delete(ctx, registrationID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrRegistrationNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete registration", "registration_id", registrationID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Registration cancelled", "registration_id", registrationID, "user_id", userID)

	s.publish(ctx, ports.EventRegistrationCancelled, registration, meetup, userID)
	return nil
}

func (s *RegistrationServiceImpl) publish(ctx context.Context, eventType string, r *models.Registration, meetup *models.Meetup, actorID uint) {
	if s.events == nil {
		return
	}
	event := &ports.DomainEvent{
		Type:           eventType,
		MeetupID:       r.MeetupID,
		ActorID:        actorID,
		RegistrationID: r.ID,
		OccurredAt:     s.now().UTC(),
	}
	if meetup != nil {
		event.OwnerID = meetup.UserID
		event.Title = meetup.Title
		event.Date = meetup.Date
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", eventType, "registration_id", r.ID, "error", err)
	}
}
