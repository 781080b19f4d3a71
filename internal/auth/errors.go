package auth

import pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"

var (
	ErrDuplicateEmail   = pkgerrors.New(pkgerrors.CodeConflict, "email already exists")
	ErrUserNotFound     = pkgerrors.New(pkgerrors.CodeUnauthorized, "user not found")
	ErrNotAuthenticated = pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated")
	ErrInvalidPassword  = pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
)
