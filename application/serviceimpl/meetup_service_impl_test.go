package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetapp/domain/dto"
	"meetapp/domain/models"
	"meetapp/domain/ports"
	"meetapp/domain/services"
)

type meetupFixture struct {
	users   *fakeUserRepo
	files   *fakeFileRepo
	meetups *fakeMeetupRepo
	storage *fakeStorage
	events  *fakePublisher
	cache   *fakeCache
	svc     *MeetupServiceImpl
}

func newMeetupFixture(t *testing.T, withCache bool) *meetupFixture {
	t.Helper()
	f := &meetupFixture{
		users:   newFakeUserRepo(),
		files:   newFakeFileRepo(),
		storage: newFakeStorage(),
		events:  &fakePublisher{},
	}
	f.meetups = newFakeMeetupRepo(f.users, f.files)

	var svc services.MeetupService
	if withCache {
		f.cache = newFakeCache()
		svc = NewMeetupServiceWithCache(f.meetups, f.files, f.storage, f.events, time.UTC, f.cache, time.Minute)
	} else {
		svc = NewMeetupService(f.meetups, f.files, f.storage, f.events, time.UTC)
	}
	f.svc = svc.(*MeetupServiceImpl)
	f.svc.now = clock

	ctx := context.Background()
	for _, email := range []string{"owner@meetapp.test", "other@meetapp.test"} {
		if err := f.users.Create(ctx, &models.User{Name: email, Email: email}); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	f.files.add(&models.File{Name: "banner.png", Path: "banners/one.png"})
	return f
}

func (f *meetupFixture) seedMeetup(t *testing.T, ownerID uint, date time.Time) *models.Meetup {
	t.Helper()
	m := &models.Meetup{
		Title:        "Go meetup night",
		Description:  "Talks",
		Localization: "Main street 1",
		Date:         date,
		BannerID:     1,
		UserID:       ownerID,
	}
	if err := f.meetups.Create(context.Background(), m); err != nil {
		t.Fatalf("seed meetup: %v", err)
	}
	return m
}

func validCreateRequest() *dto.CreateMeetupRequest {
	return &dto.CreateMeetupRequest{
		BannerID:     1,
		Title:        "Meetup de React Native",
		Description:  "Talks about React Native",
		Date:         "2030-07-01T19:00:00Z",
		Localization: "Rua Guilherme Gembala, 260",
	}
}

func TestMeetupCreate(t *testing.T) {
	f := newMeetupFixture(t, false)

	m, err := f.svc.Create(context.Background(), 1, validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == 0 || m.UserID != 1 || m.BannerID != 1 {
		t.Fatalf("unexpected meetup %+v", m)
	}
	if !m.Date.Equal(time.Date(2030, 7, 1, 19, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", m.Date)
	}
	if m.Banner == nil || m.Banner.URL != "http://cdn.test/banners/one.png" {
		t.Errorf("banner url not resolved: %+v", m.Banner)
	}
	if m.User == nil || m.User.Email != "owner@meetapp.test" {
		t.Errorf("owner not loaded: %+v", m.User)
	}
	if got := f.events.types(); len(got) != 1 || got[0] != ports.EventMeetupCreated {
		t.Errorf("events = %v", got)
	}
}

func TestMeetupCreateRejectsUnknownBanner(t *testing.T) {
	f := newMeetupFixture(t, false)
	req := validCreateRequest()
	req.BannerID = 99

	_, err := f.svc.Create(context.Background(), 1, req)
	if !errors.Is(err, services.ErrBannerNotFound) {
		t.Fatalf("err = %v, want ErrBannerNotFound", err)
	}
	if len(f.meetups.byID) != 0 {
		t.Error("meetup persisted despite failure")
	}
}

func TestMeetupCreateRejectsBadDate(t *testing.T) {
	f := newMeetupFixture(t, false)
	req := validCreateRequest()
	req.Date = "next friday"

	if _, err := f.svc.Create(context.Background(), 1, req); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(f.meetups.byID) != 0 {
		t.Error("meetup persisted despite failure")
	}
}

func TestMeetupListPagination(t *testing.T) {
	f := newMeetupFixture(t, false)
	for i := 0; i < 12; i++ {
		f.seedMeetup(t, 1, fixedNow.Add(time.Duration(i+1)*time.Hour))
	}

	page1, err := f.svc.List(context.Background(), &dto.ListMeetupsQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page1) != 10 || f.meetups.lastFilter.Offset != 0 {
		t.Errorf("page 1: len=%d offset=%d", len(page1), f.meetups.lastFilter.Offset)
	}

	page2, err := f.svc.List(context.Background(), &dto.ListMeetupsQuery{Page: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if f.meetups.lastFilter.Offset != 10 || f.meetups.lastFilter.Limit != 10 {
		t.Errorf("page 2 filter = %+v", f.meetups.lastFilter)
	}
	if len(page2) != 2 || page2[0].ID != 11 {
		t.Errorf("page 2 = %d items", len(page2))
	}
	if page2[0].Banner == nil || page2[0].Banner.URL == "" {
		t.Error("banner url not resolved on list")
	}

	if _, err := f.svc.List(context.Background(), &dto.ListMeetupsQuery{Page: -1}); !errors.Is(err, services.ErrInvalidPage) {
		t.Errorf("negative page err = %v", err)
	}
}

func TestMeetupListByDay(t *testing.T) {
	f := newMeetupFixture(t, false)
	day := time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)
	f.seedMeetup(t, 1, day.Add(-time.Second))
	inStart := f.seedMeetup(t, 1, day)
	inEnd := f.seedMeetup(t, 2, day.Add(23*time.Hour+59*time.Minute+59*time.Second))
	f.seedMeetup(t, 1, day.Add(24*time.Hour))

	query := time.Date(2030, 7, 1, 15, 30, 0, 0, time.UTC)
	got, err := f.svc.List(context.Background(), &dto.ListMeetupsQuery{Date: &query})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != inStart.ID || got[1].ID != inEnd.ID {
		t.Fatalf("got %d meetups", len(got))
	}
	if !f.meetups.lastFilter.From.Equal(day) {
		t.Errorf("from = %v", f.meetups.lastFilter.From)
	}
	if want := day.Add(24*time.Hour - time.Millisecond); !f.meetups.lastFilter.To.Equal(want) {
		t.Errorf("to = %v, want %v", f.meetups.lastFilter.To, want)
	}
}

func TestMeetupListUsesCache(t *testing.T) {
	f := newMeetupFixture(t, true)
	f.seedMeetup(t, 1, fixedNow.Add(time.Hour))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := f.svc.List(ctx, &dto.ListMeetupsQuery{Page: 1})
		if err != nil || len(got) != 1 {
			t.Fatalf("List: %v (%d items)", err, len(got))
		}
	}
	if f.meetups.listCalls != 1 {
		t.Errorf("repository hit %d times, want 1", f.meetups.listCalls)
	}
	if _, ok := f.cache.data["meetups:list:all:1"]; !ok {
		t.Error("expected cached page under meetups:list:all:1")
	}

	if _, err := f.svc.Create(ctx, 1, validCreateRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := f.svc.List(ctx, &dto.ListMeetupsQuery{Page: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || f.meetups.listCalls != 2 {
		t.Errorf("cache not invalidated: %d items, %d calls", len(got), f.meetups.listCalls)
	}
}

func TestMeetupUpdate(t *testing.T) {
	f := newMeetupFixture(t, false)
	m := f.seedMeetup(t, 1, fixedNow.Add(48*time.Hour))
	title := "Renamed meetup"
	date := "2030-08-01T10:00:00Z"

	updated, err := f.svc.Update(context.Background(), 1, m.ID, &dto.UpdateMeetupRequest{Title: &title, Date: &date})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != title || !updated.Date.Equal(time.Date(2030, 8, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("updated = %+v", updated)
	}
	if updated.Description != "Talks" {
		t.Errorf("untouched field changed: %q", updated.Description)
	}
	if got := f.events.types(); len(got) != 1 || got[0] != ports.EventMeetupUpdated {
		t.Errorf("events = %v", got)
	}
}

func TestMeetupUpdateGuards(t *testing.T) {
	f := newMeetupFixture(t, false)
	future := f.seedMeetup(t, 1, fixedNow.Add(time.Hour))
	past := f.seedMeetup(t, 1, fixedNow.Add(-time.Hour))
	title := "Hijacked title"
	short := "abc"
	badDate := "next friday"
	banner := dto.NumericID(42)

	tests := []struct {
		name   string
		userID uint
		id     uint
		req    *dto.UpdateMeetupRequest
		want   error
	}{
		{"missing", 1, 999, &dto.UpdateMeetupRequest{Title: &title}, services.ErrMeetupNotFound},
		{"not owner", 2, future.ID, &dto.UpdateMeetupRequest{Title: &title}, services.ErrNotMeetupOwner},
		{"past", 1, past.ID, &dto.UpdateMeetupRequest{Title: &title}, services.ErrPastMeetupUpdate},
		{"not owner of past", 2, past.ID, &dto.UpdateMeetupRequest{Title: &title}, services.ErrNotMeetupOwner},
		{"unknown banner", 1, future.ID, &dto.UpdateMeetupRequest{BannerID: &banner}, services.ErrBannerNotFound},
		{"not owner with invalid title", 2, future.ID, &dto.UpdateMeetupRequest{Title: &short}, services.ErrNotMeetupOwner},
		{"missing with invalid date", 1, 999, &dto.UpdateMeetupRequest{Date: &badDate}, services.ErrMeetupNotFound},
		{"past with invalid title", 1, past.ID, &dto.UpdateMeetupRequest{Title: &short}, services.ErrPastMeetupUpdate},
		{"not owner with unparsed body", 2, future.ID, nil, services.ErrNotMeetupOwner},
		{"invalid title", 1, future.ID, &dto.UpdateMeetupRequest{Title: &short}, services.ErrValidation},
		{"invalid date", 1, future.ID, &dto.UpdateMeetupRequest{Date: &badDate}, services.ErrValidation},
		{"unparsed body", 1, future.ID, nil, services.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Update(context.Background(), tt.userID, tt.id, tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	stored, _ := f.meetups.GetByID(context.Background(), future.ID)
	if stored.Title != "Go meetup night" || stored.BannerID != 1 {
		t.Errorf("record changed after rejected updates: %+v", stored)
	}
	if len(f.events.types()) != 0 {
		t.Errorf("unexpected events %v", f.events.types())
	}
}

func TestMeetupDelete(t *testing.T) {
	f := newMeetupFixture(t, false)
	future := f.seedMeetup(t, 1, fixedNow.Add(time.Hour))
	past := f.seedMeetup(t, 1, fixedNow.Add(-time.Hour))
	ctx := context.Background()

	if err := f.svc.Delete(ctx, 2, future.ID); !errors.Is(err, services.ErrNotMeetupOwner) {
		t.Errorf("non-owner err = %v", err)
	}
	if err := f.svc.Delete(ctx, 1, past.ID); !errors.Is(err, services.ErrPastMeetupDelete) {
		t.Errorf("past err = %v", err)
	}
	if err := f.svc.Delete(ctx, 1, 999); !errors.Is(err, services.ErrMeetupNotFound) {
		t.Errorf("missing err = %v", err)
	}
	if err := f.svc.Delete(ctx, 1, future.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := f.meetups.byID[future.ID]; ok {
		t.Error("meetup still stored")
	}
	if _, ok := f.meetups.byID[past.ID]; !ok {
		t.Error("past meetup removed")
	}
	if got := f.events.types(); len(got) != 1 || got[0] != ports.EventMeetupCancelled {
		t.Errorf("events = %v", got)
	}
}

func TestMeetupShowAndDashboard(t *testing.T) {
	f := newMeetupFixture(t, false)
	mine := f.seedMeetup(t, 1, fixedNow.Add(time.Hour))
	f.seedMeetup(t, 2, fixedNow.Add(time.Hour))
	f.seedMeetup(t, 1, fixedNow.Add(-time.Hour))
	ctx := context.Background()

	got, err := f.svc.Show(ctx, 1, mine.ID)
	if err != nil || got.ID != mine.ID {
		t.Fatalf("Show: %v", err)
	}
	if _, err := f.svc.Show(ctx, 2, mine.ID); !errors.Is(err, services.ErrNotMeetupOwner) {
		t.Errorf("Show by other = %v", err)
	}

	dash, err := f.svc.Dashboard(ctx, 1)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if len(dash) != 2 {
		t.Errorf("dashboard has %d meetups, want 2 (past ones included)", len(dash))
	}
	for _, m := range dash {
		if m.UserID != 1 {
			t.Errorf("foreign meetup %d in dashboard", m.ID)
		}
	}
}

func TestMeetupPublishFailureIsNotFatal(t *testing.T) {
	f := newMeetupFixture(t, false)
	f.events.err = errors.New("broker down")

	if _, err := f.svc.Create(context.Background(), 1, validCreateRequest()); err != nil {
		t.Fatalf("Create should succeed when publishing fails: %v", err)
	}
}
