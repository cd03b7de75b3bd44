package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"meetapp/domain/models"
	"meetapp/domain/ports"
	"meetapp/domain/repositories"
)

var fixedNow = time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// users

type fakeUserRepo struct {
	mu     sync.Mutex
	byID   map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

// files

type fakeFileRepo struct {
	mu        sync.Mutex
	byID      map[uint]*models.File
	nextID    uint
	createErr error
	orphans   []*models.File
	deleteErr map[uint]error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{byID: map[uint]*models.File{}, deleteErr: map[uint]error{}}
}

func (r *fakeFileRepo) add(f *models.File) *models.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	r.byID[f.ID] = f
	return f
}

func (r *fakeFileRepo) Create(_ context.Context, f *models.File) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(f)
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id uint) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.deleteErr[id]; err != nil {
		return err
	}
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeFileRepo) ListOrphans(_ context.Context, _ time.Time, limit int) ([]*models.File, error) {
	if len(r.orphans) > limit {
		return r.orphans[:limit], nil
	}
	return r.orphans, nil
}

// meetups

type fakeMeetupRepo struct {
	mu         sync.Mutex
	byID       map[uint]*models.Meetup
	nextID     uint
	users      *fakeUserRepo
	files      *fakeFileRepo
	lastFilter *repositories.MeetupListFilter
	listCalls  int
}

func newFakeMeetupRepo(users *fakeUserRepo, files *fakeFileRepo) *fakeMeetupRepo {
	return &fakeMeetupRepo{byID: map[uint]*models.Meetup{}, users: users, files: files}
}

func (r *fakeMeetupRepo) hydrate(m *models.Meetup) *models.Meetup {
	cp := *m
	if r.users != nil {
		if u, err := r.users.GetByID(context.Background(), m.UserID); err == nil {
			cp.User = u
		}
	}
	if r.files != nil {
		if f, err := r.files.GetByID(context.Background(), m.BannerID); err == nil {
			cp.Banner = f
		}
	}
	return &cp
}

func (r *fakeMeetupRepo) Create(_ context.Context, m *models.Meetup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = fixedNow
	m.UpdatedAt = fixedNow
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *fakeMeetupRepo) GetByID(_ context.Context, id uint) (*models.Meetup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.hydrate(m), nil
}

func (r *fakeMeetupRepo) sorted() []*models.Meetup {
	out := make([]*models.Meetup, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeMeetupRepo) List(_ context.Context, filter repositories.MeetupListFilter) ([]*models.Meetup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	f := filter
	r.lastFilter = &f

	var matched []*models.Meetup
	for _, m := range r.sorted() {
		if filter.From != nil && filter.To != nil {
			if m.Date.Before(*filter.From) || m.Date.After(*filter.To) {
				continue
			}
		}
		matched = append(matched, r.hydrate(m))
	}
	if filter.Offset >= len(matched) {
		return []*models.Meetup{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *fakeMeetupRepo) ListByOwner(_ context.Context, userID uint) ([]*models.Meetup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Meetup
	for _, m := range r.sorted() {
		if m.UserID == userID {
			out = append(out, r.hydrate(m))
		}
	}
	return out, nil
}

func (r *fakeMeetupRepo) Update(_ context.Context, m *models.Meetup, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[m.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			stored.Title = v.(string)
		case "description":
			stored.Description = v.(string)
		case "localization":
			stored.Localization = v.(string)
		case "date":
			stored.Date = v.(time.Time)
		case "banner_id":
			stored.BannerID = v.(uint)
		default:
			return errors.New("unexpected column " + k)
		}
	}
	return nil
}

func (r *fakeMeetupRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// registrations

type fakeRegistrationRepo struct {
	mu      sync.Mutex
	byID    map[uint]*models.Registration
	nextID  uint
	meetups *fakeMeetupRepo
}

func newFakeRegistrationRepo(meetups *fakeMeetupRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{byID: map[uint]*models.Registration{}, meetups: meetups}
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *models.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.UserID == reg.UserID && existing.MeetupID == reg.MeetupID {
			return repositories.ErrDuplicate
		}
	}
	r.nextID++
	reg.ID = r.nextID
	cp := *reg
	r.byID[reg.ID] = &cp
	return nil
}

func (r *fakeRegistrationRepo) withMeetup(reg *models.Registration) *models.Registration {
	cp := *reg
	if m, err := r.meetups.GetByID(context.Background(), reg.MeetupID); err == nil {
		cp.Meetup = m
	}
	return &cp
}

func (r *fakeRegistrationRepo) GetByID(_ context.Context, id uint) (*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.withMeetup(reg), nil
}

func (r *fakeRegistrationRepo) GetByUserAndMeetup(_ context.Context, userID, meetupID uint) (*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.byID {
		if reg.UserID == userID && reg.MeetupID == meetupID {
			cp := *reg
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeRegistrationRepo) ExistsAtDate(ctx context.Context, userID uint, date time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.byID {
		if reg.UserID != userID {
			continue
		}
		m, err := r.meetups.GetByID(ctx, reg.MeetupID)
		if err == nil && m.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRegistrationRepo) ListUpcomingByUser(ctx context.Context, userID uint, now time.Time) ([]*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Registration
	for _, reg := range r.byID {
		if reg.UserID != userID {
			continue
		}
		full := r.withMeetup(reg)
		if full.Meetup != nil && full.Meetup.Date.After(now) {
			out = append(out, full)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Meetup.Date.Before(out[j].Meetup.Date) })
	return out, nil
}

func (r *fakeRegistrationRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// storage

type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) UploadFile(_ context.Context, r io.Reader, _ int64, p string, _ string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[p] = data
	return s.GetFileURL(p), nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, p string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, p)
	s.deleted = append(s.deleted, p)
	return nil
}

func (s *fakeStorage) GetFileURL(p string) string {
	return "http://cdn.test/" + p
}

func (s *fakeStorage) GetProviderName() string { return "fake" }

// cache

type fakeCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	patterns []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, target any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return ports.ErrCacheMiss
	}
	return json.Unmarshal(raw, target)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *fakeCache) DeletePattern(_ context.Context, pattern string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, pattern)
	var n int64
	for k := range c.data {
		if ok, _ := path.Match(pattern, k); ok || strings.HasPrefix(k, strings.TrimSuffix(pattern, "*")) {
			delete(c.data, k)
			n++
		}
	}
	return n, nil
}

// events

type fakePublisher struct {
	mu     sync.Mutex
	events []*ports.DomainEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, e *ports.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
