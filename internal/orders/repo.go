package orders

import (
	"context"

	"github.com/angelmondragon/restroboost-backend/internal/records"
)

// Repository persists orders under restroboost_orders with ORD- ids.
type Repository struct {
	col *records.Collection[Order]
}

func NewRepository(deps records.Deps) (*Repository, error) {
	col, err := records.NewCollectionFromDeps(deps, records.KeyOrders, IDPrefix,
		func(o Order) string { return o.ID },
		func(o *Order, id string) { o.ID = id },
	)
	if err != nil {
		return nil, err
	}
	return &Repository{col: col}, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]Order, error) {
	return r.col.GetAll(ctx)
}

func (r *Repository) SaveAll(ctx context.Context, orders []Order) error {
	return r.col.SaveAll(ctx, orders)
}

func (r *Repository) Add(ctx context.Context, order Order) (Order, error) {
	return r.col.Add(ctx, order)
}

func (r *Repository) Update(ctx context.Context, id string, mutate func(*Order) error) (Order, bool, error) {
	return r.col.Update(ctx, id, mutate)
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}

func (r *Repository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
