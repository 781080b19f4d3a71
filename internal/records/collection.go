// Package records persists whole collections as one JSON array per key.
// Every mutation reads the full blob, edits it in memory and writes it back;
// concurrent writers race and the last one wins.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/ids"
	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
	"github.com/angelmondragon/restroboost-backend/pkg/metrics"
)

// Params bundles what a Collection needs. ID and SetID locate and assign the
// record identifier; IDPrefix is prepended to generated ids.
type Params[T any] struct {
	Key      string
	Backend  kv.Backend
	ID       func(T) string
	SetID    func(*T, string)
	IDPrefix string
	IDs      *ids.Generator
	Logger   *logger.Logger
	Metrics  *metrics.StoreMetrics
}

// Collection is a typed view over one stored array.
type Collection[T any] struct {
	key      string
	backend  kv.Backend
	idOf     func(T) string
	setID    func(*T, string)
	idPrefix string
	ids      *ids.Generator
	logg     *logger.Logger
	metrics  *metrics.StoreMetrics
}

func NewCollection[T any](p Params[T]) (*Collection[T], error) {
	if p.Key == "" {
		return nil, fmt.Errorf("collection key is required")
	}
	if p.Backend == nil {
		return nil, fmt.Errorf("kv backend is required")
	}
	if p.ID == nil || p.SetID == nil {
		return nil, fmt.Errorf("id accessors are required")
	}
	if p.IDs == nil {
		p.IDs = ids.NewGenerator(nil)
	}
	if p.Logger == nil {
		p.Logger = logger.Nop()
	}
	return &Collection[T]{
		key:      p.Key,
		backend:  p.Backend,
		idOf:     p.ID,
		setID:    p.SetID,
		idPrefix: p.IDPrefix,
		ids:      p.IDs,
		logg:     p.Logger,
		metrics:  p.Metrics,
	}, nil
}

func (c *Collection[T]) Key() string {
	return c.key
}

// GetAll returns every stored record. A missing or undecodable blob reads as
// an empty collection; only backend failures are returned.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	start := time.Now()
	items, err := c.load(ctx)
	c.metrics.Observe(c.key, "get_all", time.Since(start), err)
	return items, err
}

// SaveAll overwrites the blob with items.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	start := time.Now()
	err := c.save(ctx, items)
	c.metrics.Observe(c.key, "save_all", time.Since(start), err)
	return err
}

// Add assigns a fresh id to record, appends it and persists the collection.
func (c *Collection[T]) Add(ctx context.Context, record T) (T, error) {
	start := time.Now()
	created, err := c.add(ctx, record)
	c.metrics.Observe(c.key, "add", time.Since(start), err)
	return created, err
}

func (c *Collection[T]) add(ctx context.Context, record T) (T, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	c.setID(&record, c.ids.Prefixed(c.idPrefix))
	items = append(items, record)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	return record, nil
}

// Update applies mutate to the record with id and persists the collection.
// found is false, and nothing is written, when no record has that id. An
// error from mutate aborts the write and is returned as is.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T) error) (T, bool, error) {
	start := time.Now()
	updated, found, err := c.update(ctx, id, mutate)
	c.metrics.Observe(c.key, "update", time.Since(start), err)
	return updated, found, err
}

func (c *Collection[T]) update(ctx context.Context, id string, mutate func(*T) error) (T, bool, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for i := range items {
		if c.idOf(items[i]) != id {
			continue
		}
		next := items[i]
		if err := mutate(&next); err != nil {
			return zero, true, err
		}
		c.setID(&next, id)
		items[i] = next
		if err := c.save(ctx, items); err != nil {
			return zero, true, err
		}
		return next, true, nil
	}
	return zero, false, nil
}

// Find returns the record with id, if any.
func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.GetAll(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if c.idOf(item) == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Delete removes the record with id. It reports false and writes nothing
// when no record matched.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	found, err := c.delete(ctx, id)
	c.metrics.Observe(c.key, "delete", time.Since(start), err)
	return found, err
}

func (c *Collection[T]) delete(ctx context.Context, id string) (bool, error) {
	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	kept := items[:0]
	for _, item := range items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := c.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the key entirely.
func (c *Collection[T]) Clear(ctx context.Context) error {
	start := time.Now()
	err := c.backend.Delete(ctx, c.key)
	if err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear "+c.key)
	}
	c.metrics.Observe(c.key, "clear", time.Since(start), err)
	return err
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.backend.Get(ctx, c.key)
	if errors.Is(err, kv.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+c.key)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.metrics.IncParseFailure(c.key)
		logCtx := c.logg.WithCollection(ctx, c.key)
		logCtx = c.logg.WithField(logCtx, "error", err.Error())
		c.logg.Warn(logCtx, "records.parse_failed")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode "+c.key)
	}
	if err := c.backend.Set(ctx, c.key, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save "+c.key)
	}
	return nil
}

// Deps carries the shared plumbing every domain repository is built from.
type Deps struct {
	Backend kv.Backend
	IDs     *ids.Generator
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

// NewCollectionFromDeps builds a Collection for key using shared deps.
func NewCollectionFromDeps[T any](deps Deps, key, idPrefix string, id func(T) string, setID func(*T, string)) (*Collection[T], error) {
	return NewCollection(Params[T]{
		Key:      key,
		Backend:  deps.Backend,
		ID:       id,
		SetID:    setID,
		IDPrefix: idPrefix,
		IDs:      deps.IDs,
		Logger:   deps.Logger,
		Metrics:  deps.Metrics,
	})
}
