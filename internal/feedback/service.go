package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
)

// Service exposes customer feedback operations.
type Service interface {
	List(ctx context.Context, input ListInput) ([]Entry, error)
	Add(ctx context.Context, input CreateEntryInput) (*Entry, error)
	Update(ctx context.Context, id string, input UpdateEntryInput) (*Entry, error)
	MarkResponded(ctx context.Context, id string) (*Entry, error)
	MarkHelpful(ctx context.Context, id string) (*Entry, error)
	Delete(ctx context.Context, id string) error
}

type repository interface {
	GetAll(ctx context.Context) ([]Entry, error)
	Add(ctx context.Context, entry Entry) (Entry, error)
	Update(ctx context.Context, id string, mutate func(*Entry) error) (Entry, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ServiceParams struct {
	Repo repository
	Now  func() time.Time
}

type service struct {
	repo repository
	now  func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("feedback repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, now: now}, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]Entry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if input.Sentiment != nil && e.Sentiment != *input.Sentiment {
			continue
		}
		if search != "" && !matches(e, search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func matches(e Entry, needle string) bool {
	return strings.Contains(strings.ToLower(e.Customer), needle) ||
		strings.Contains(strings.ToLower(e.Comment), needle) ||
		strings.Contains(strings.ToLower(e.Dish), needle)
}

// Add dates the entry today and starts it unanswered with no helpful votes.
func (s *service) Add(ctx context.Context, input CreateEntryInput) (*Entry, error) {
	if strings.TrimSpace(input.Customer) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer is required")
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	sentiment := input.Sentiment
	if sentiment == "" {
		sentiment = enums.SentimentPositive
	}
	if !sentiment.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid sentiment %q", sentiment))
	}

	created, err := s.repo.Add(ctx, Entry{
		Customer:  strings.TrimSpace(input.Customer),
		Rating:    input.Rating,
		Comment:   input.Comment,
		Dish:      input.Dish,
		Sentiment: sentiment,
		Date:      s.now().Format(DateLayout),
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateEntryInput) (*Entry, error) {
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
	}
	if input.Sentiment != nil && !input.Sentiment.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid sentiment %q", *input.Sentiment))
	}
	if input.Helpful != nil && *input.Helpful < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "helpful must be non-negative")
	}
	return s.update(ctx, id, func(e *Entry) error {
		input.apply(e)
		return nil
	})
}

func (s *service) MarkResponded(ctx context.Context, id string) (*Entry, error) {
	return s.update(ctx, id, func(e *Entry) error {
		e.Responded = true
		return nil
	})
}

func (s *service) MarkHelpful(ctx context.Context, id string) (*Entry, error) {
	return s.update(ctx, id, func(e *Entry) error {
		e.Helpful++
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound(id)
	}
	return nil
}

func (s *service) update(ctx context.Context, id string, mutate func(*Entry) error) (*Entry, error) {
	updated, found, err := s.repo.Update(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(id)
	}
	return &updated, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	return nil
}

func notFound(id string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("feedback %s not found", id))
}
