package orders

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	"github.com/angelmondragon/restroboost-backend/api/validators"
	internalorders "github.com/angelmondragon/restroboost-backend/internal/orders"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

type lineItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type createOrderRequest struct {
	Customer      string            `json:"customer" validate:"required"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	Items         []lineItemRequest `json:"items" validate:"required,min=1,dive"`
	Total         *float64          `json:"total,omitempty" validate:"omitempty,gte=0"`
	Status        string            `json:"status,omitempty"`
	EstimatedTime string            `json:"estimatedTime,omitempty"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
}

type updateOrderRequest struct {
	Customer      *string            `json:"customer,omitempty" validate:"omitempty,min=1"`
	Phone         *string            `json:"phone,omitempty"`
	Address       *string            `json:"address,omitempty"`
	Items         *[]lineItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	Total         *float64           `json:"total,omitempty" validate:"omitempty,gte=0"`
	Status        *string            `json:"status,omitempty"`
	EstimatedTime *string            `json:"estimatedTime,omitempty"`
	PaymentMethod *string            `json:"paymentMethod,omitempty"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

func unavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
}

func toLineItems(in []lineItemRequest) []internalorders.LineItem {
	out := make([]internalorders.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, internalorders.LineItem{
			Name:     validators.SanitizeString(it.Name, 120),
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return out
}

// List returns orders filtered by status and a customer/id search.
func List(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		status, err := validators.ParseQueryEnum(r, "status", enums.ParseOrderStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), internalorders.ListInput{
			Status: status,
			Search: validators.QueryString(r, "q"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// Create places an order. The total is computed from the items unless the
// client supplies one.
func Create(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body createOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := internalorders.CreateOrderInput{
			Customer:      validators.SanitizeString(body.Customer, 120),
			Phone:         validators.SanitizeString(body.Phone, 40),
			Address:       validators.SanitizeString(body.Address, 200),
			Items:         toLineItems(body.Items),
			Total:         body.Total,
			EstimatedTime: validators.SanitizeString(body.EstimatedTime, 40),
			PaymentMethod: validators.SanitizeString(body.PaymentMethod, 40),
		}
		if body.Status != "" {
			status, err := validators.ParseEnum("status", body.Status, enums.ParseOrderStatus)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Status = status
		}

		order, err := svc.Add(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func Update(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body updateOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := validators.ParseOptionalEnum("status", body.Status, enums.ParseOrderStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := internalorders.UpdateOrderInput{
			Customer:      body.Customer,
			Phone:         body.Phone,
			Address:       body.Address,
			Total:         body.Total,
			Status:        status,
			EstimatedTime: body.EstimatedTime,
			PaymentMethod: body.PaymentMethod,
		}
		if body.Items != nil {
			items := toLineItems(*body.Items)
			input.Items = &items
		}

		order, err := svc.Update(r.Context(), chi.URLParam(r, "id"), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// Transition advances an order through the kitchen workflow. Moves the
// workflow does not allow are rejected with STATE_CONFLICT.
func Transition(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body transitionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		next, err := validators.ParseEnum("status", body.Status, enums.ParseOrderStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Transition(r.Context(), chi.URLParam(r, "id"), next)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// Simulate places a random order drawn from the active menu.
func Simulate(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		order, err := svc.GenerateRandomOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func Delete(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
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
