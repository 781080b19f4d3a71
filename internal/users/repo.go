package users

import (
	"context"
	"strings"

	"github.com/angelmondragon/restroboost-backend/internal/records"
)

// Repository exposes user-related persistence operations over the
// restroboost_users collection.
type Repository struct {
	col *records.Collection[User]
}

func NewRepository(deps records.Deps) (*Repository, error) {
	col, err := records.NewCollectionFromDeps(deps, records.KeyUsers, "",
		func(u User) string { return u.ID },
		func(u *User, id string) { u.ID = id },
	)
	if err != nil {
		return nil, err
	}
	return &Repository{col: col}, nil
}

// Create appends a new user and returns the persisted record.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*User, error) {
	user, err := r.col.Add(ctx, dto.ToModel())
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with email, compared case-insensitively.
// found is false when no user matches.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, bool, error) {
	all, err := r.col.GetAll(ctx)
	if err != nil {
		return nil, false, err
	}
	needle := NormalizeEmail(email)
	for _, u := range all {
		if NormalizeEmail(u.Email) == needle {
			return &u, true, nil
		}
	}
	return nil, false, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*User, bool, error) {
	u, found, err := r.col.Find(ctx, id)
	if err != nil || !found {
		return nil, found, err
	}
	return &u, true, nil
}

// Update applies mutate to the user with id.
func (r *Repository) Update(ctx context.Context, id string, mutate func(*User) error) (*User, bool, error) {
	u, found, err := r.col.Update(ctx, id, mutate)
	if err != nil || !found {
		return nil, found, err
	}
	return &u, true, nil
}

func (r *Repository) List(ctx context.Context) ([]User, error) {
	return r.col.GetAll(ctx)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
