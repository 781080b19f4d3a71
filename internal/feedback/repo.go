package feedback

import (
	"context"

	"github.com/angelmondragon/restroboost-backend/internal/records"
)

// Repository persists feedback entries under restroboost_feedback.
type Repository struct {
	col *records.Collection[Entry]
}

func NewRepository(deps records.Deps) (*Repository, error) {
	col, err := records.NewCollectionFromDeps(deps, records.KeyFeedback, "",
		func(e Entry) string { return e.ID },
		func(e *Entry, id string) { e.ID = id },
	)
	if err != nil {
		return nil, err
	}
	return &Repository{col: col}, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]Entry, error) {
	return r.col.GetAll(ctx)
}

func (r *Repository) SaveAll(ctx context.Context, entries []Entry) error {
	return r.col.SaveAll(ctx, entries)
}

func (r *Repository) Add(ctx context.Context, entry Entry) (Entry, error) {
	return r.col.Add(ctx, entry)
}

func (r *Repository) Update(ctx context.Context, id string, mutate func(*Entry) error) (Entry, bool, error) {
	return r.col.Update(ctx, id, mutate)
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}

func (r *Repository) Clear(ctx context.Context) error {
	return r.col.Clear(ctx)
}
