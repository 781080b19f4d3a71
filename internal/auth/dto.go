package auth

import (
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/users"
)

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest contains the profile for a new account.
type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	Name           string `json:"name" validate:"required"`
	Role           string `json:"role"`
	RestaurantName string `json:"restaurantName" validate:"required"`
}

// UpdateProfileRequest patches the signed-in user's profile.
type UpdateProfileRequest struct {
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Role           *string `json:"role,omitempty"`
	RestaurantName *string `json:"restaurantName,omitempty" validate:"omitempty,min=1"`
}

// SessionResponse is returned by login and register.
type SessionResponse struct {
	AccessToken string         `json:"accessToken"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	User        *users.UserDTO `json:"user"`
}

// sessionPointer is the stored shape of restroboost_auth.
type sessionPointer struct {
	UserID string `json:"userId"`
}

const defaultRole = "owner"
