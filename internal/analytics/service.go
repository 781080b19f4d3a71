package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/feedback"
	"github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/internal/orders"
)

// Service computes statistics from the authoritative collections on every
// call.
type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Orders(ctx context.Context) (*OrderSummary, error)
	Sentiment(ctx context.Context) (*SentimentSummary, error)
	InventoryAlerts(ctx context.Context) (*InventoryAlerts, error)
	Menu(ctx context.Context) (*MenuSummary, error)
}

type (
	inventoryReader interface {
		GetAll(ctx context.Context) ([]inventory.Item, error)
	}
	menuReader interface {
		GetAll(ctx context.Context) ([]menu.Item, error)
	}
	feedbackReader interface {
		GetAll(ctx context.Context) ([]feedback.Entry, error)
	}
	orderReader interface {
		GetAll(ctx context.Context) ([]orders.Order, error)
	}
)

// ServiceParams bundles the collection readers the statistics are built from.
type ServiceParams struct {
	Inventory inventoryReader
	Menu      menuReader
	Feedback  feedbackReader
	Orders    orderReader
	Now       func() time.Time
}

type service struct {
	inventory inventoryReader
	menu      menuReader
	feedback  feedbackReader
	orders    orderReader
	now       func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Inventory == nil || params.Menu == nil || params.Feedback == nil || params.Orders == nil {
		return nil, fmt.Errorf("all collection readers are required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		inventory: params.Inventory,
		menu:      params.Menu,
		feedback:  params.Feedback,
		orders:    params.Orders,
		now:       now,
	}, nil
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	orderStats, err := s.Orders(ctx)
	if err != nil {
		return nil, err
	}
	sentiment, err := s.Sentiment(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.InventoryAlerts(ctx)
	if err != nil {
		return nil, err
	}
	menuStats, err := s.Menu(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Orders:    *orderStats,
		Feedback:  *sentiment,
		Inventory: *alerts,
		Menu:      *menuStats,
	}, nil
}

func (s *service) Orders(ctx context.Context) (*OrderSummary, error) {
	all, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := OrderStats(all, s.now())
	return &summary, nil
}

func (s *service) Sentiment(ctx context.Context) (*SentimentSummary, error) {
	entries, err := s.feedback.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := SentimentDistribution(entries)
	return &summary, nil
}

func (s *service) InventoryAlerts(ctx context.Context) (*InventoryAlerts, error) {
	items, err := s.inventory.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	alerts := LowStock(items)
	return &alerts, nil
}

func (s *service) Menu(ctx context.Context) (*MenuSummary, error) {
	items, err := s.menu.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := MenuStats(items)
	return &summary, nil
}
