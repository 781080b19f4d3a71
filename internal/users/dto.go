package users

import "time"

// User is the stored account record. PasswordHash is empty for accounts
// created while demo mode accepted any password.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	RestaurantName string    `json:"restaurantName"`
	CreatedAt      time.Time `json:"createdAt"`
	PasswordHash   string    `json:"passwordHash,omitempty"`
}

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	RestaurantName string    `json:"restaurantName"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email          string
	Name           string
	Role           string
	RestaurantName string
	PasswordHash   string
	CreatedAt      time.Time
}

// ProfilePatch is a shallow patch over the editable profile fields.
type ProfilePatch struct {
	Email          *string
	Name           *string
	Role           *string
	RestaurantName *string
}

func FromModel(u *User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		RestaurantName: u.RestaurantName,
		CreatedAt:      u.CreatedAt,
	}
}

func (c CreateUserDTO) ToModel() User {
	return User{
		Email:          NormalizeEmail(c.Email),
		Name:           c.Name,
		Role:           c.Role,
		RestaurantName: c.RestaurantName,
		PasswordHash:   c.PasswordHash,
		CreatedAt:      c.CreatedAt,
	}
}

func (p ProfilePatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = NormalizeEmail(*p.Email)
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.RestaurantName != nil {
		u.RestaurantName = *p.RestaurantName
	}
}
