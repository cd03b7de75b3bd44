package services

// ErrorKind classifies service failures for the HTTP layer.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindNotOwner
	KindBusinessRule
	KindUnauthenticated
)

// AppError carries the client-facing message. Handlers map Kind to a status.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

var (
	ErrValidation = newError(KindValidation, "Validation fails")

	// meetups
	ErrMeetupNotFound   = newError(KindNotFound, "This not exists")
	ErrNotMeetupOwner   = newError(KindNotOwner, "This not belongs to you")
	ErrPastMeetupUpdate = newError(KindBusinessRule, "You can't update past meetup")
	ErrPastMeetupDelete = newError(KindBusinessRule, "You can't canceling past meetup")
	ErrBannerNotFound   = newError(KindNotFound, "Banner not exists")
	ErrInvalidPage      = newError(KindValidation, "Invalid page parameter")
	ErrInvalidDate      = newError(KindValidation, "Invalid date parameter")

	// users and sessions
	ErrUserExists       = newError(KindBusinessRule, "User already exists")
	ErrUserNotFound     = newError(KindUnauthenticated, "User not found")
	ErrPasswordMismatch = newError(KindUnauthenticated, "Password does not match")

	// registrations
	ErrRegistrationMeetupNotFound = newError(KindNotFound, "Meetup not exists")
	ErrOwnMeetupRegistration      = newError(KindBusinessRule, "You can't register to your own meetup")
	ErrPastMeetupRegistration     = newError(KindBusinessRule, "You can't register to past meetups")
	ErrAlreadyRegistered          = newError(KindBusinessRule, "You are already registered to this meetup")
	ErrRegistrationTimeConflict   = newError(KindBusinessRule, "You can't register to two meetups at the same time")
	ErrRegistrationNotFound       = newError(KindNotFound, "Registration not exists")
	ErrNotRegistrationOwner       = newError(KindNotOwner, "This not belongs to you")
	ErrPastRegistrationCancel     = newError(KindBusinessRule, "You can't cancel registration of past meetup")

	// files
	ErrMissingFile     = newError(KindValidation, "File is required")
	ErrInvalidFileType = newError(KindValidation, "Only image files are allowed")
	ErrFileTooLarge    = newError(KindValidation, "File is too large")
)
