package demo

import (
	"context"
	"net/http"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	internaldemo "github.com/angelmondragon/restroboost-backend/internal/demo"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

// Seeder loads and clears the sample dataset.
type Seeder interface {
	Seed(ctx context.Context) (internaldemo.Result, error)
	Reset(ctx context.Context) error
}

func unavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "demo seeder unavailable")
}

// Seed fills empty collections with sample data and reports what was written.
func Seed(seeder Seeder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if seeder == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		res, err := seeder.Seed(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

// Reset clears the business collections. Accounts and the session survive.
func Reset(seeder Seeder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if seeder == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		if err := seeder.Reset(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reset demo data"))
			return
		}
		responses.WriteNoContent(w)
	}
}
