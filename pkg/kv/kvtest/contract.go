// Package kvtest holds the behavioral contract every kv.Backend must satisfy.
package kvtest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/restroboost-backend/pkg/kv"
)

// RunBackendContract exercises get/set/delete semantics against backend.
func RunBackendContract(t *testing.T, backend kv.Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := backend.Get(ctx, "contract_missing")
		assert.True(t, errors.Is(err, kv.ErrNotFound), "expected ErrNotFound, got %v", err)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, backend.Set(ctx, "contract_a", []byte(`[{"id":"1"}]`)))
		got, err := backend.Get(ctx, "contract_a")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, backend.Set(ctx, "contract_a", []byte(`[]`)))
		got, err := backend.Get(ctx, "contract_a")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("delete many", func(t *testing.T) {
		require.NoError(t, backend.Set(ctx, "contract_b", []byte(`{"userId":"9"}`)))
		require.NoError(t, backend.Delete(ctx, "contract_a", "contract_b", "contract_never_set"))

		_, err := backend.Get(ctx, "contract_a")
		assert.True(t, errors.Is(err, kv.ErrNotFound))
		_, err = backend.Get(ctx, "contract_b")
		assert.True(t, errors.Is(err, kv.ErrNotFound))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, backend.Ping(ctx))
	})
}
