package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/users"
	pkgAuth "github.com/angelmondragon/restroboost-backend/pkg/auth"
	"github.com/angelmondragon/restroboost-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
)

// Service is the single-session account store. One session pointer is shared
// by every caller: logging in as someone else replaces it.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error)
	Login(ctx context.Context, req LoginRequest) (*SessionResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*users.User, bool, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*users.User, error)
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, bool, error)
	FindByID(ctx context.Context, id string) (*users.User, bool, error)
	Update(ctx context.Context, id string, mutate func(*users.User) error) (*users.User, bool, error)
}

type sessionStore interface {
	Load(ctx context.Context) (sessionPointer, bool, error)
	Save(ctx context.Context, value sessionPointer) error
	Clear(ctx context.Context) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo  userRepository
	Sessions  sessionStore
	Hasher    passwordHasher
	JWTConfig config.JWTConfig
	// DemoMode accepts any password for a known email.
	DemoMode bool
	Now      func() time.Time
}

type service struct {
	users    userRepository
	sessions sessionStore
	hasher   passwordHasher
	jwtCfg   config.JWTConfig
	demoMode bool
	now      func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if params.Hasher == nil {
		return nil, fmt.Errorf("password hasher is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		users:    params.UserRepo,
		sessions: params.Sessions,
		hasher:   params.Hasher,
		jwtCfg:   params.JWTConfig,
		demoMode: params.DemoMode,
		now:      now,
	}, nil
}

// Register creates the account and signs it in. The user table is left
// untouched when the email is taken.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	email := users.NormalizeEmail(req.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !s.demoMode && req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	_, exists, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	var hash string
	if req.Password != "" {
		hash, err = s.hasher.Hash(req.Password)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = defaultRole
	}
	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Email:          email,
		Name:           strings.TrimSpace(req.Name),
		Role:           role,
		RestaurantName: strings.TrimSpace(req.RestaurantName),
		PasswordHash:   hash,
		CreatedAt:      s.now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, user)
}

// Login signs in the user with email. In demo mode the password is not
// checked.
func (s *service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	if req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required").
			WithDetails(map[string]any{"field": "password"})
	}
	user, found, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	if !s.demoMode {
		if user.PasswordHash == "" {
			return nil, ErrInvalidPassword
		}
		ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
		}
		if !ok {
			return nil, ErrInvalidPassword
		}
	}
	return s.startSession(ctx, user)
}

// Logout clears the session pointer. The user table is untouched.
func (s *service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser resolves the session pointer. A missing, corrupt or dangling
// pointer reports found=false.
func (s *service) CurrentUser(ctx context.Context) (*users.User, bool, error) {
	pointer, ok, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	if !ok || pointer.UserID == "" {
		return nil, false, nil
	}
	return s.users.FindByID(ctx, pointer.UserID)
}

func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, found, err := s.CurrentUser(ctx)
	return found, err
}

// UpdateProfile merges req into the signed-in user.
func (s *service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*users.User, error) {
	current, found, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotAuthenticated
	}

	if req.Email != nil {
		other, exists, err := s.users.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists && other.ID != current.ID {
			return nil, ErrDuplicateEmail
		}
	}

	patch := users.ProfilePatch{
		Email:          req.Email,
		Name:           req.Name,
		Role:           req.Role,
		RestaurantName: req.RestaurantName,
	}
	updated, found, err := s.users.Update(ctx, current.ID, func(u *users.User) error {
		patch.Apply(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

func (s *service) startSession(ctx context.Context, user *users.User) (*SessionResponse, error) {
	if err := s.sessions.Save(ctx, sessionPointer{UserID: user.ID}); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return &SessionResponse{
		AccessToken: token,
		ExpiresAt:   now.Add(s.jwtCfg.TTL()),
		User:        users.FromModel(user),
	}, nil
}
