package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
)

// Service exposes menu management operations.
type Service interface {
	List(ctx context.Context, input ListInput) ([]Item, error)
	Add(ctx context.Context, input CreateItemInput) (*Item, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error)
	ToggleActive(ctx context.Context, id string) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type repository interface {
	GetAll(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, id string, mutate func(*Item) error) (Item, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ServiceParams struct {
	Repo repository
}

type service struct {
	repo repository
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("menu repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]Item, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if input.Category != "" && !strings.EqualFold(item.Category, input.Category) {
			continue
		}
		if input.ActiveOnly && !item.IsActive {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// Add creates an item with zeroed sales counters, a stable trend and profit
// derived from price and cost.
func (s *service) Add(ctx context.Context, input CreateItemInput) (*Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price < 0 || input.Cost < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price and cost must be non-negative")
	}
	rating := float64(defaultRating)
	if input.Rating != nil {
		rating = *input.Rating
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	created, err := s.repo.Add(ctx, Item{
		Name:     strings.TrimSpace(input.Name),
		Category: input.Category,
		Price:    input.Price,
		Cost:     input.Cost,
		Profit:   Profit(input.Price, input.Cost),
		Rating:   rating,
		Trend:    enums.MenuTrendStable,
		IsActive: active,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update merges input and recomputes profit when price or cost changes.
func (s *service) Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error) {
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
	}
	if input.Trend != nil && !input.Trend.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid trend %q", *input.Trend))
	}
	return s.update(ctx, id, func(item *Item) error {
		input.apply(item)
		return nil
	})
}

func (s *service) ToggleActive(ctx context.Context, id string) (*Item, error) {
	return s.update(ctx, id, func(item *Item) error {
		item.IsActive = !item.IsActive
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

func (s *service) update(ctx context.Context, id string, mutate func(*Item) error) (*Item, error) {
	updated, found, err := s.repo.Update(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(id)
	}
	return &updated, nil
}

func validateRating(rating float64) error {
	if rating < 1 || rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	return nil
}

func notFound(id string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("menu item %s not found", id))
}
