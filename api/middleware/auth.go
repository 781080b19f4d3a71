package middleware

import (
	"context"
	"net/http"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	"github.com/angelmondragon/restroboost-backend/api/validators"
	"github.com/angelmondragon/restroboost-backend/internal/users"
	pkgAuth "github.com/angelmondragon/restroboost-backend/pkg/auth"
	"github.com/angelmondragon/restroboost-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

// SessionChecker resolves the single stored session.
type SessionChecker interface {
	CurrentUser(ctx context.Context) (*users.User, bool, error)
}

// Auth validates a bearer token and requires it to belong to the user the
// stored session points at. Tokens outlive a logout but are refused once the
// session is gone or held by another user.
func Auth(cfg config.JWTConfig, sessions SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := validators.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if sessions != nil {
				user, ok, err := sessions.CurrentUser(r.Context())
				if err != nil {
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
				if !ok || user.ID != claims.UserID {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable"))
					return
				}
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
