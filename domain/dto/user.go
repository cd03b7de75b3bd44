package dto

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest changes profile fields; a new password needs the old
// one and a matching confirmation.
type UpdateUserRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	Email           *string `json:"email" validate:"omitempty,email"`
	OldPassword     string  `json:"oldPassword" validate:"required_with=Password,omitempty,min=6"`
	Password        string  `json:"password" validate:"required_with=OldPassword,omitempty,min=6"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required_with=Password,eqfield=Password"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateSessionRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
