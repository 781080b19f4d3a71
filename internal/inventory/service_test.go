package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/records"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/ids"
	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newTestService(t *testing.T, clock *fixedClock) (Service, *Repository) {
	t.Helper()
	repo, err := NewRepository(records.Deps{
		Backend: kv.NewMemory(),
		IDs:     ids.NewGenerator(nil),
		Logger:  logger.Nop(),
	})
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Repo: repo, Now: clock.Now})
	require.NoError(t, err)
	return svc, repo
}

func tomatoes() CreateItemInput {
	return CreateItemInput{
		Name:     "Tomatoes",
		Category: "Vegetables",
		Quantity: 40,
		Unit:     "kg",
		MinStock: 10,
		MaxStock: 50,
		Cost:     3.5,
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		quantity, minStock float64
		want               enums.StockStatus
	}{
		{5, 10, enums.StockStatusCritical},
		{0, 10, enums.StockStatusCritical},
		{5.1, 10, enums.StockStatusLow},
		{10, 10, enums.StockStatusLow},
		{10.5, 10, enums.StockStatusGood},
		{0, 0, enums.StockStatusCritical},
		{1, 0, enums.StockStatusGood},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveStatus(tc.quantity, tc.minStock), "quantity=%v minStock=%v", tc.quantity, tc.minStock)
	}
}

func TestAddGrowsCollectionByOne(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, repo := newTestService(t, clock)

	before, err := repo.GetAll(ctx)
	require.NoError(t, err)

	created, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, enums.StockStatusGood, created.Status)
	assert.Equal(t, clock.t, created.LastUpdated)

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, *created, after[len(after)-1])
}

func TestAddCriticalWhenAtHalfMinimum(t *testing.T) {
	svc, _ := newTestService(t, &fixedClock{t: time.Now()})
	input := tomatoes()
	input.Quantity = 5

	created, err := svc.Add(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, enums.StockStatusCritical, created.Status)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t, &fixedClock{t: time.Now()})

	_, err := svc.Add(context.Background(), CreateItemInput{Name: "  "})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	input := tomatoes()
	input.Cost = -1
	_, err = svc.Add(context.Background(), input)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestUpdateChangesOnlyPatchedFieldsAndAdvancesTimestamp(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, _ := newTestService(t, clock)
	created, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)

	cost := 4.25
	updated, err := svc.Update(ctx, created.ID, UpdateItemInput{Cost: &cost})
	require.NoError(t, err)

	assert.Equal(t, 4.25, updated.Cost)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Quantity, updated.Quantity)
	assert.Equal(t, created.Status, updated.Status)
	assert.True(t, updated.LastUpdated.After(created.LastUpdated), "lastUpdated must strictly increase even when the clock is frozen")

	again, err := svc.Update(ctx, created.ID, UpdateItemInput{Cost: &cost})
	require.NoError(t, err)
	assert.True(t, again.LastUpdated.After(updated.LastUpdated))
}

func TestUpdateQuantityLeavesStoredStatusStale(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fixedClock{t: time.Now()})
	created, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)
	require.Equal(t, enums.StockStatusGood, created.Status)

	quantity := 2.0
	updated, err := svc.Update(ctx, created.ID, UpdateItemInput{Quantity: &quantity})
	require.NoError(t, err)

	assert.Equal(t, 2.0, updated.Quantity)
	assert.Equal(t, enums.StockStatusGood, updated.Status, "status is stored, not recomputed on update")
	assert.Equal(t, enums.StockStatusCritical, DeriveStatus(updated.Quantity, updated.MinStock))
}

func TestAdjustStockRecomputesStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fixedClock{t: time.Now()})
	created, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)

	adjusted, err := svc.AdjustStock(ctx, created.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, 8.0, adjusted.Quantity)
	assert.Equal(t, enums.StockStatusLow, adjusted.Status)

	_, err = svc.AdjustStock(ctx, created.ID, -1)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestMissingIDIsNotFoundAndLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, &fixedClock{t: time.Now()})
	_, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)

	name := "Ghost"
	_, err = svc.Update(ctx, "missing", UpdateItemInput{Name: &name})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	err = svc.Delete(ctx, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	_, err = svc.AdjustStock(ctx, "missing", 3)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t, &fixedClock{t: time.Now()})
	bogus := enums.StockStatus("plenty")
	_, err := svc.Update(context.Background(), "any", UpdateItemInput{Status: &bogus})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestDeleteRemovesItem(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, &fixedClock{t: time.Now()})
	created, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fixedClock{t: time.Now()})

	_, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)
	_, err = svc.Add(ctx, CreateItemInput{Name: "Mozzarella Cheese", Category: "Dairy", Quantity: 12, Unit: "pcs", MinStock: 20, MaxStock: 100, Cost: 8})
	require.NoError(t, err)
	_, err = svc.Add(ctx, CreateItemInput{Name: "Parmesan Cheese", Category: "Dairy", Quantity: 3, Unit: "kg", MinStock: 8, MaxStock: 30, Cost: 22})
	require.NoError(t, err)

	all, err := svc.List(ctx, ListInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cheese, err := svc.List(ctx, ListInput{Search: "CHEESE"})
	require.NoError(t, err)
	assert.Len(t, cheese, 2)

	low := enums.StockStatusLow
	lows, err := svc.List(ctx, ListInput{Status: &low})
	require.NoError(t, err)
	require.Len(t, lows, 1)
	assert.Equal(t, "Mozzarella Cheese", lows[0].Name)

	veg, err := svc.List(ctx, ListInput{Category: "vegetables"})
	require.NoError(t, err)
	assert.Len(t, veg, 1)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fixedClock{t: time.Now()})
	created, err := svc.Add(ctx, tomatoes())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(ctx, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(ServiceParams{})
	assert.Error(t, err)
}
