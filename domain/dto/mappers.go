package dto

import (
	"time"

	"meetapp/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func FileToFileResponse(file *models.File) *FileResponse {
	if file == nil {
		return nil
	}
	return &FileResponse{
		ID:   file.ID,
		Name: file.Name,
		Path: file.Path,
		URL:  file.URL,
	}
}

// MeetupToMeetupResponse computes Past against now.
func MeetupToMeetupResponse(m *models.Meetup, now time.Time) *MeetupResponse {
	if m == nil {
		return nil
	}
	resp := &MeetupResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Localization: m.Localization,
		Date:         m.Date,
		Past:         m.IsPast(now),
		BannerID:     m.BannerID,
		UserID:       m.UserID,
		Banner:       FileToFileResponse(m.Banner),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.User != nil {
		resp.User = &MeetupUserResponse{ID: m.User.ID, Name: m.User.Name, Email: m.User.Email}
	}
	return resp
}

func MeetupsToMeetupResponses(meetups []*models.Meetup, now time.Time) []MeetupResponse {
	out := make([]MeetupResponse, 0, len(meetups))
	for _, m := range meetups {
		if m == nil {
			continue
		}
		out = append(out, *MeetupToMeetupResponse(m, now))
	}
	return out
}

func RegistrationToRegistrationResponse(r *models.Registration, now time.Time) *RegistrationResponse {
	if r == nil {
		return nil
	}
	return &RegistrationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		MeetupID:  r.MeetupID,
		Meetup:    MeetupToMeetupResponse(r.Meetup, now),
		CreatedAt: r.CreatedAt,
	}
}

func RegistrationsToRegistrationResponses(registrations []*models.Registration, now time.Time) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(registrations))
	for _, r := range registrations {
		if r == nil {
			continue
		}
		out = append(out, *RegistrationToRegistrationResponse(r, now))
	}
	return out
}
