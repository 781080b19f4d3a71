package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
)

// Service exposes inventory management operations.
type Service interface {
	List(ctx context.Context, input ListInput) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Add(ctx context.Context, input CreateItemInput) (*Item, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error)
	AdjustStock(ctx context.Context, id string, quantity float64) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type repository interface {
	GetAll(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, id string, mutate func(*Item) error) (Item, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ServiceParams bundles the dependencies required to build an inventory service.
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
		return nil, fmt.Errorf("inventory repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, now: now}, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]Item, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if input.Status != nil && item.Status != *input.Status {
			continue
		}
		if input.Category != "" && !strings.EqualFold(item.Category, input.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, notFound(id)
}

// Add derives status from quantity and minStock and stamps lastUpdated.
func (s *service) Add(ctx context.Context, input CreateItemInput) (*Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Quantity < 0 || input.MinStock < 0 || input.MaxStock < 0 || input.Cost < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantities and cost must be non-negative")
	}

	created, err := s.repo.Add(ctx, Item{
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		MinStock:    input.MinStock,
		MaxStock:    input.MaxStock,
		Cost:        input.Cost,
		Status:      DeriveStatus(input.Quantity, input.MinStock),
		LastUpdated: s.stamp(time.Time{}),
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update shallow-merges input. The stored status is kept unless the patch
// carries one, so a quantity-only patch can leave it stale; AdjustStock is
// the path that keeps the two consistent.
func (s *service) Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", *input.Status))
	}
	updated, found, err := s.repo.Update(ctx, id, func(item *Item) error {
		input.apply(item)
		item.LastUpdated = s.stamp(item.LastUpdated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(id)
	}
	return &updated, nil
}

// AdjustStock sets the quantity and recomputes status.
func (s *service) AdjustStock(ctx context.Context, id string, quantity float64) (*Item, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	updated, found, err := s.repo.Update(ctx, id, func(item *Item) error {
		item.Quantity = quantity
		item.Status = DeriveStatus(quantity, item.MinStock)
		item.LastUpdated = s.stamp(item.LastUpdated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(id)
	}
	return &updated, nil
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

// stamp returns the current time, moved past prev when the clock has not
// advanced, so lastUpdated strictly increases across updates.
func (s *service) stamp(prev time.Time) time.Time {
	now := s.now().UTC().Truncate(time.Millisecond)
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}

func notFound(id string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("inventory item %s not found", id))
}
