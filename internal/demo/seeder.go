// Package demo loads and clears the sample restaurant dataset.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/feedback"
	"github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/internal/orders"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
	"go.uber.org/multierr"
)

type store[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, record T) (T, error)
	Clear(ctx context.Context) error
}

// Result reports how many records Seed wrote per collection. A zero count
// means the collection already held data and was left alone.
type Result struct {
	Inventory int `json:"inventory"`
	Menu      int `json:"menu"`
	Feedback  int `json:"feedback"`
	Orders    int `json:"orders"`
}

type SeederParams struct {
	Inventory store[inventory.Item]
	Menu      store[menu.Item]
	Feedback  store[feedback.Entry]
	Orders    store[orders.Order]
	Logger    *logger.Logger
	Now       func() time.Time
}

type Seeder struct {
	inventory store[inventory.Item]
	menu      store[menu.Item]
	feedback  store[feedback.Entry]
	orders    store[orders.Order]
	logg      *logger.Logger
	now       func() time.Time
}

func NewSeeder(params SeederParams) (*Seeder, error) {
	if params.Inventory == nil || params.Menu == nil || params.Feedback == nil || params.Orders == nil {
		return nil, fmt.Errorf("all collection stores are required")
	}
	if params.Logger == nil {
		params.Logger = logger.Nop()
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Seeder{
		inventory: params.Inventory,
		menu:      params.Menu,
		feedback:  params.Feedback,
		orders:    params.Orders,
		logg:      params.Logger,
		now:       params.Now,
	}, nil
}

// Seed fills every empty business collection with the demo dataset.
// Collections that already hold records are untouched.
func (s *Seeder) Seed(ctx context.Context) (Result, error) {
	data, err := loadDataset(fixtureYAML, s.now())
	if err != nil {
		return Result{}, err
	}

	var res Result
	if res.Inventory, err = seedCollection(ctx, s.inventory, data.inventory); err != nil {
		return res, err
	}
	if res.Menu, err = seedCollection(ctx, s.menu, data.menu); err != nil {
		return res, err
	}
	if res.Feedback, err = seedCollection(ctx, s.feedback, data.feedback); err != nil {
		return res, err
	}
	if res.Orders, err = seedCollection(ctx, s.orders, data.orders); err != nil {
		return res, err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"inventory": res.Inventory,
		"menu":      res.Menu,
		"feedback":  res.Feedback,
		"orders":    res.Orders,
	}), "demo.seeded")
	return res, nil
}

func seedCollection[T any](ctx context.Context, st store[T], rows []T) (int, error) {
	existing, err := st.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, row := range rows {
		if _, err := st.Add(ctx, row); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

// Reset removes the four business collections. Users and the session are
// kept. Every collection is attempted; failures are combined.
func (s *Seeder) Reset(ctx context.Context) error {
	err := multierr.Combine(
		s.inventory.Clear(ctx),
		s.menu.Clear(ctx),
		s.feedback.Clear(ctx),
		s.orders.Clear(ctx),
	)
	if err != nil {
		return err
	}
	s.logg.Info(ctx, "demo.reset")
	return nil
}
