package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	"github.com/angelmondragon/restroboost-backend/api/validators"
	"github.com/angelmondragon/restroboost-backend/internal/analytics"
	internalmenu "github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

type createItemRequest struct {
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    float64  `json:"price" validate:"gte=0"`
	Cost     float64  `json:"cost" validate:"gte=0"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	IsActive *bool    `json:"isActive,omitempty"`
}

type updateItemRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost           *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Rating         *float64 `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	IsActive       *bool    `json:"isActive,omitempty"`
	Sales          *int     `json:"sales,omitempty" validate:"omitempty,gte=0"`
	Revenue        *float64 `json:"revenue,omitempty" validate:"omitempty,gte=0"`
	Trend          *string  `json:"trend,omitempty"`
	Views          *int     `json:"views,omitempty" validate:"omitempty,gte=0"`
	ConversionRate *float64 `json:"conversionRate,omitempty" validate:"omitempty,gte=0"`
}

func unavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable")
}

// List returns menu items, optionally filtered by category and activity.
func List(svc internalmenu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		activeOnly, err := validators.ParseQueryBool(r, "active", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.List(r.Context(), internalmenu.ListInput{
			Category:   validators.QueryString(r, "category"),
			ActiveOnly: activeOnly,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// Categories returns the per-category rollup of the current menu.
func Categories(stats analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if stats == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}
		summary, err := stats.Menu(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary.Categories)
	}
}

func Create(svc internalmenu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body createItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Add(r.Context(), internalmenu.CreateItemInput{
			Name:     validators.SanitizeString(body.Name, 120),
			Category: validators.SanitizeString(body.Category, 60),
			Price:    body.Price,
			Cost:     body.Cost,
			Rating:   body.Rating,
			IsActive: body.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// Update patches a menu item; profit is recomputed when price or cost move.
func Update(svc internalmenu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body updateItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		trend, err := validators.ParseOptionalEnum("trend", body.Trend, enums.ParseMenuTrend)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), chi.URLParam(r, "id"), internalmenu.UpdateItemInput{
			Name:           body.Name,
			Category:       body.Category,
			Price:          body.Price,
			Cost:           body.Cost,
			Rating:         body.Rating,
			IsActive:       body.IsActive,
			Sales:          body.Sales,
			Revenue:        body.Revenue,
			Trend:          trend,
			Views:          body.Views,
			ConversionRate: body.ConversionRate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func Toggle(svc internalmenu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		item, err := svc.ToggleActive(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func Delete(svc internalmenu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
