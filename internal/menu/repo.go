package menu

import (
	"context"

	"github.com/angelmondragon/restroboost-backend/internal/records"
)

// Repository persists menu items under restroboost_menu.
type Repository struct {
	col *records.Collection[Item]
}

func NewRepository(deps records.Deps) (*Repository, error) {
	col, err := records.NewCollectionFromDeps(deps, records.KeyMenu, "",
		func(i Item) string { return i.ID },
		func(i *Item, id string) { i.ID = id },
	)
	if err != nil {
		return nil, err
	}
	return &Repository{col: col}, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]Item, error) {
	return r.col.GetAll(ctx)
}

func (r *Repository) SaveAll(ctx context.Context, items []Item) error {
	return r.col.SaveAll(ctx, items)
}

func (r *Repository) Add(ctx context.Context, item Item) (Item, error) {
	return r.col.Add(ctx, item)
}

func (r *Repository) Update(ctx context.Context, id string, mutate func(*Item) error) (Item, bool, error) {
	return r.col.Update(ctx, id, mutate)
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}

func (r *Repository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
