package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
	"github.com/angelmondragon/restroboost-backend/pkg/metrics"
)

// Document stores a single JSON value under a key, such as the session
// pointer.
type Document[T any] struct {
	key     string
	backend kv.Backend
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

func NewDocument[T any](key string, backend kv.Backend, logg *logger.Logger, m *metrics.StoreMetrics) (*Document[T], error) {
	if key == "" {
		return nil, fmt.Errorf("document key is required")
	}
	if backend == nil {
		return nil, fmt.Errorf("kv backend is required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &Document[T]{key: key, backend: backend, logg: logg, metrics: m}, nil
}

// Load returns the stored value. ok is false when the key is absent or its
// value cannot be decoded.
func (d *Document[T]) Load(ctx context.Context) (T, bool, error) {
	var value T
	raw, err := d.backend.Get(ctx, d.key)
	if errors.Is(err, kv.ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+d.key)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		d.metrics.IncParseFailure(d.key)
		logCtx := d.logg.WithCollection(ctx, d.key)
		logCtx = d.logg.WithField(logCtx, "error", err.Error())
		d.logg.Warn(logCtx, "records.parse_failed")
		var zero T
		return zero, false, nil
	}
	return value, true, nil
}

func (d *Document[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode "+d.key)
	}
	if err := d.backend.Set(ctx, d.key, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save "+d.key)
	}
	return nil
}

func (d *Document[T]) Clear(ctx context.Context) error {
	if err := d.backend.Delete(ctx, d.key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear "+d.key)
	}
	return nil
}
