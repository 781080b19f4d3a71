package app

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/angelmondragon/restroboost-backend/pkg/config"
	"github.com/angelmondragon/restroboost-backend/pkg/db"
	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
	"github.com/angelmondragon/restroboost-backend/pkg/migrate"
	"github.com/angelmondragon/restroboost-backend/pkg/redis"
)

// Backend is an opened storage medium and the function that releases it.
type Backend struct {
	kv.Backend
	closers []func() error
}

// NewBackend pairs a kv.Backend with the functions that release it.
func NewBackend(b kv.Backend, closers ...func() error) *Backend {
	return &Backend{Backend: b, closers: closers}
}

// Close releases every underlying connection, combining failures.
func (b *Backend) Close() error {
	var err error
	for _, c := range b.closers {
		err = multierr.Append(err, c())
	}
	return err
}

// OpenBackend connects the configured storage backend. The SQL backend gets
// its kv_entries table from goose in dev with auto-migrate on, and from
// GORM's AutoMigrate otherwise.
func OpenBackend(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*Backend, error) {
	ctx = logg.WithField(ctx, "storage", cfg.Storage.Kind())

	switch cfg.Storage.Kind() {
	case config.StorageBackendMemory:
		logg.Warn(ctx, "using in-memory storage; data is lost on restart")
		return NewBackend(kv.NewMemory()), nil

	case config.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis, cfg.Storage.Namespace, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap redis: %w", err)
		}
		return NewBackend(client, client.Close), nil

	case config.StorageBackendSQL:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap database: %w", err)
		}
		store := db.NewKVStore(client)
		if cfg.App.IsDev() && cfg.FeatureFlags.AutoMigrate {
			err = migrate.MaybeRunDev(ctx, cfg, logg, client)
		} else {
			err = store.EnsureSchema(ctx)
		}
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("prepare kv_entries: %w", err), client.Close())
		}
		return NewBackend(store, client.Close), nil
	}
	return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
}
