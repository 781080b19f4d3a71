package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	"github.com/angelmondragon/restroboost-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

const readyTimeout = 2 * time.Second

const envHeader = "X-RestroBoost-Env"

// Pinger is the storage backend readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, backend Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if backend == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "storage backend not configured"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := backend.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage backend unreachable").
				WithDetails(map[string]string{"storage": cfg.Storage.Kind()}))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready", "storage": cfg.Storage.Kind()})
	}
}
