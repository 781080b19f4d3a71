package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	"github.com/angelmondragon/restroboost-backend/api/validators"
	internalinventory "github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

type createItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"required"`
	MinStock float64 `json:"minStock" validate:"gte=0"`
	MaxStock float64 `json:"maxStock" validate:"gte=0"`
	Cost     float64 `json:"cost" validate:"gte=0"`
}

type updateItemRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Category *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit     *string  `json:"unit,omitempty"`
	MinStock *float64 `json:"minStock,omitempty" validate:"omitempty,gte=0"`
	MaxStock *float64 `json:"maxStock,omitempty" validate:"omitempty,gte=0"`
	Cost     *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Status   *string  `json:"status,omitempty"`
}

type adjustStockRequest struct {
	Quantity *float64 `json:"quantity" validate:"required,gte=0"`
}

func unavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable")
}

// List returns inventory items, optionally filtered by status, category and
// a name search.
func List(svc internalinventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		status, err := validators.ParseQueryEnum(r, "status", enums.ParseStockStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.List(r.Context(), internalinventory.ListInput{
			Status:   status,
			Category: validators.QueryString(r, "category"),
			Search:   validators.QueryString(r, "q"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func Create(svc internalinventory.Service, logg *logger.Logger) http.HandlerFunc {
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

		item, err := svc.Add(r.Context(), internalinventory.CreateItemInput{
			Name:     validators.SanitizeString(body.Name, 120),
			Category: validators.SanitizeString(body.Category, 60),
			Quantity: body.Quantity,
			Unit:     validators.SanitizeString(body.Unit, 30),
			MinStock: body.MinStock,
			MaxStock: body.MaxStock,
			Cost:     body.Cost,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// Update applies a shallow patch. The stored status is only changed when the
// patch carries one.
func Update(svc internalinventory.Service, logg *logger.Logger) http.HandlerFunc {
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
		status, err := validators.ParseOptionalEnum("status", body.Status, enums.ParseStockStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), chi.URLParam(r, "id"), internalinventory.UpdateItemInput{
			Name:     body.Name,
			Category: body.Category,
			Quantity: body.Quantity,
			Unit:     body.Unit,
			MinStock: body.MinStock,
			MaxStock: body.MaxStock,
			Cost:     body.Cost,
			Status:   status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// AdjustStock sets the quantity and recomputes the status from it.
func AdjustStock(svc internalinventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body adjustStockRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.AdjustStock(r.Context(), chi.URLParam(r, "id"), *body.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func Delete(svc internalinventory.Service, logg *logger.Logger) http.HandlerFunc {
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
