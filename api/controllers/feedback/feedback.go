package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/restroboost-backend/api/responses"
	"github.com/angelmondragon/restroboost-backend/api/validators"
	"github.com/angelmondragon/restroboost-backend/internal/analytics"
	internalfeedback "github.com/angelmondragon/restroboost-backend/internal/feedback"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

type createEntryRequest struct {
	Customer  string `json:"customer" validate:"required"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
	Comment   string `json:"comment" validate:"max=2000"`
	Dish      string `json:"dish"`
	Sentiment string `json:"sentiment,omitempty"`
}

type updateEntryRequest struct {
	Customer  *string `json:"customer,omitempty" validate:"omitempty,min=1"`
	Rating    *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Comment   *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
	Dish      *string `json:"dish,omitempty"`
	Sentiment *string `json:"sentiment,omitempty"`
	Helpful   *int    `json:"helpful,omitempty" validate:"omitempty,gte=0"`
	Responded *bool   `json:"responded,omitempty"`
}

func unavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "feedback service unavailable")
}

// List returns feedback entries filtered by sentiment and a text search over
// customer, comment and dish.
func List(svc internalfeedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		sentiment, err := validators.ParseQueryEnum(r, "sentiment", enums.ParseSentiment)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, err := svc.List(r.Context(), internalfeedback.ListInput{
			Sentiment: sentiment,
			Search:    validators.QueryString(r, "q"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

func Sentiment(stats analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if stats == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}
		summary, err := stats.Sentiment(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

func Create(svc internalfeedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body createEntryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := internalfeedback.CreateEntryInput{
			Customer: validators.SanitizeString(body.Customer, 120),
			Rating:   body.Rating,
			Comment:  validators.SanitizeString(body.Comment, 2000),
			Dish:     validators.SanitizeString(body.Dish, 120),
		}
		if body.Sentiment != "" {
			sentiment, err := validators.ParseEnum("sentiment", body.Sentiment, enums.ParseSentiment)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Sentiment = sentiment
		}

		entry, err := svc.Add(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, entry)
	}
}

func Update(svc internalfeedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}

		var body updateEntryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sentiment, err := validators.ParseOptionalEnum("sentiment", body.Sentiment, enums.ParseSentiment)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Update(r.Context(), chi.URLParam(r, "id"), internalfeedback.UpdateEntryInput{
			Customer:  body.Customer,
			Rating:    body.Rating,
			Comment:   body.Comment,
			Dish:      body.Dish,
			Sentiment: sentiment,
			Helpful:   body.Helpful,
			Responded: body.Responded,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entry)
	}
}

func MarkResponded(svc internalfeedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		entry, err := svc.MarkResponded(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entry)
	}
}

func MarkHelpful(svc internalfeedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable())
			return
		}
		entry, err := svc.MarkHelpful(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entry)
	}
}

func Delete(svc internalfeedback.Service, logg *logger.Logger) http.HandlerFunc {
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
