package handlers

import (
	"time"

	"meetapp/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService         services.UserService
	FileService         services.FileService
	MeetupService       services.MeetupService
	RegistrationService services.RegistrationService
	Location            *time.Location // time zone ของ query ?date=
}

// Handlers contains all HTTP handlers
type Handlers struct {
	UserHandler         *UserHandler
	SessionHandler      *SessionHandler
	FileHandler         *FileHandler
	MeetupHandler       *MeetupHandler
	RegistrationHandler *RegistrationHandler
	DashboardHandler    *DashboardHandler
}

func NewHandlers(services *Services) *Handlers {
	loc := services.Location
	if loc == nil {
		loc = time.Local
	}
	return &Handlers{
		UserHandler:         NewUserHandler(services.UserService),
		SessionHandler:      NewSessionHandler(services.UserService),
		FileHandler:         NewFileHandler(services.FileService),
		MeetupHandler:       NewMeetupHandler(services.MeetupService, loc),
		RegistrationHandler: NewRegistrationHandler(services.RegistrationService),
		DashboardHandler:    NewDashboardHandler(services.MeetupService),
	}
}
