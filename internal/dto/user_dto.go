package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileRequest is the body of PUT /users/profile
type UpdateProfileRequest struct {
	Name   string  `json:"name" example:"Jane Smith"`
	Email  string  `json:"email" example:"jane@example.com"`
	Avatar *string `json:"avatar,omitempty"`
}

// ProfileResponse is the caller's own profile
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateProfileResponse wraps the updated profile
type UpdateProfileResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    *ProfileResponse `json:"user"`
}

// SessionResponse reports who the caller is resolved as
type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *ProfileResponse `json:"user"`
}
