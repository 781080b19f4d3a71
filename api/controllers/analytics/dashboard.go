package analytics

import (
	"net/http"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	internalanalytics "github.com/angelmondragon/restroboost-backend/internal/analytics"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

func unavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable")
}

// Dashboard returns every derived statistic, recomputed from storage.
func Dashboard(svc internalanalytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		dashboard, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard)
	}
}

// InventoryAlerts returns items whose stored status is low or critical.
func InventoryAlerts(svc internalanalytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		alerts, err := svc.InventoryAlerts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, alerts)
	}
}
