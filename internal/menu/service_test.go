package menu

import (
	"context"
	"testing"

	"github.com/angelmondragon/restroboost-backend/internal/records"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	repo, err := NewRepository(records.Deps{Backend: kv.NewMemory()})
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)
	return svc, repo
}

func ptr[T any](v T) *T { return &v }

func TestAddAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	created, err := svc.Add(ctx, CreateItemInput{Name: "Margherita Pizza", Category: "Pizza", Price: 18.99, Cost: 6.50})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 12.49, created.Profit)
	assert.Equal(t, 5.0, created.Rating)
	assert.Equal(t, enums.MenuTrendStable, created.Trend)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.Sales)
	assert.Zero(t, created.Revenue)
	assert.Zero(t, created.Views)
	assert.Zero(t, created.ConversionRate)

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, *created, items[0])
}

func TestAddHonoursExplicitRatingAndActive(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Add(context.Background(), CreateItemInput{Name: "Soup", Price: 5, Cost: 1, Rating: ptr(3.5), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, 3.5, created.Rating)
	assert.False(t, created.IsActive)
}

func TestAddValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, CreateItemInput{Price: 1})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.Add(ctx, CreateItemInput{Name: "x", Price: -1})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.Add(ctx, CreateItemInput{Name: "x", Price: 1, Rating: ptr(6.0)})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestUpdateRecomputesProfitOnPriceChange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, err := svc.Add(ctx, CreateItemInput{Name: "Caesar Salad", Category: "Salads", Price: 14.99, Cost: 4.20})
	require.NoError(t, err)
	require.Equal(t, 10.79, created.Profit)

	updated, err := svc.Update(ctx, created.ID, UpdateItemInput{Price: ptr(15.99)})
	require.NoError(t, err)
	assert.Equal(t, 15.99, updated.Price)
	assert.Equal(t, 11.79, updated.Profit)
	assert.Equal(t, created.Name, updated.Name)

	updated, err = svc.Update(ctx, created.ID, UpdateItemInput{Cost: ptr(5.0)})
	require.NoError(t, err)
	assert.Equal(t, 10.99, updated.Profit)
}

func TestUpdateWithoutPriceKeepsProfit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, err := svc.Add(ctx, CreateItemInput{Name: "Wings", Price: 12.99, Cost: 4.50})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateItemInput{Sales: ptr(10), Trend: ptr(enums.MenuTrendUp)})
	require.NoError(t, err)
	assert.Equal(t, created.Profit, updated.Profit)
	assert.Equal(t, 10, updated.Sales)
	assert.Equal(t, enums.MenuTrendUp, updated.Trend)
}

func TestUpdateRejectsBadTrend(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Update(context.Background(), "x", UpdateItemInput{Trend: ptr(enums.MenuTrend("sideways"))})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestToggleActive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, err := svc.Add(ctx, CreateItemInput{Name: "Wings", Price: 12.99, Cost: 4.50})
	require.NoError(t, err)

	toggled, err := svc.ToggleActive(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleActive(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestMissingIDs(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	_, err := svc.Add(ctx, CreateItemInput{Name: "Wings", Price: 12.99, Cost: 4.50})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "missing", UpdateItemInput{Name: ptr("x")})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	_, err = svc.ToggleActive(ctx, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	err = svc.Delete(ctx, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Add(ctx, CreateItemInput{Name: "Margherita", Category: "Pizza", Price: 18.99, Cost: 6.5})
	require.NoError(t, err)
	_, err = svc.Add(ctx, CreateItemInput{Name: "Pepperoni", Category: "Pizza", Price: 21.99, Cost: 7.8, IsActive: ptr(false)})
	require.NoError(t, err)
	_, err = svc.Add(ctx, CreateItemInput{Name: "Greek", Category: "Salads", Price: 16.99, Cost: 5.2})
	require.NoError(t, err)

	pizzas, err := svc.List(ctx, ListInput{Category: "pizza"})
	require.NoError(t, err)
	assert.Len(t, pizzas, 2)

	active, err := svc.List(ctx, ListInput{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	created, err := svc.Add(ctx, CreateItemInput{Name: "Wings", Price: 12.99, Cost: 4.50})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}
