package orders

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/internal/records"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 7, 14, 5, 9, 0, time.UTC)

type stubMenu struct {
	items []menu.Item
	err   error
}

func (s stubMenu) GetAll(context.Context) ([]menu.Item, error) {
	return s.items, s.err
}

// sequence returns a scripted IntN that replays values modulo n.
func sequence(values ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := values[i%len(values)]
		i++
		return v % n
	}
}

func newTestService(t *testing.T, m menuReader, intN func(int) int) (Service, *Repository) {
	t.Helper()
	repo, err := NewRepository(records.Deps{Backend: kv.NewMemory()})
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{
		Repo: repo,
		Menu: m,
		Now:  func() time.Time { return testNow },
		IntN: intN,
	})
	require.NoError(t, err)
	return svc, repo
}

func sampleInput() CreateOrderInput {
	return CreateOrderInput{
		Customer: "Sarah Johnson",
		Phone:    "+1 (555) 123-4567",
		Address:  "123 Main St, Downtown",
		Items: []LineItem{
			{Name: "Margherita Pizza", Quantity: 2, Price: 18.99},
			{Name: "Caesar Salad", Quantity: 1, Price: 14.99},
		},
	}
}

func TestAddDerivesTotalAndDefaults(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, stubMenu{}, nil)

	created, err := svc.Add(ctx, sampleInput())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+$`), created.ID)
	assert.Equal(t, 52.97, created.Total)
	assert.Equal(t, enums.OrderStatusPreparing, created.Status)
	assert.Equal(t, "2:05:09 PM", created.OrderTime)
	assert.Equal(t, DefaultEstimatedTime, created.EstimatedTime)
	assert.Equal(t, DefaultPaymentMethod, created.PaymentMethod)
	assert.Equal(t, testNow, created.CreatedAt)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *created, all[0])
}

func TestAddKeepsSuppliedTotal(t *testing.T) {
	input := sampleInput()
	total := 50.0
	input.Total = &total
	svc, _ := newTestService(t, stubMenu{}, nil)

	created, err := svc.Add(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 50.0, created.Total)
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, stubMenu{}, nil)

	_, err := svc.Add(ctx, CreateOrderInput{Items: sampleInput().Items})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.Add(ctx, CreateOrderInput{Customer: "x"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.Add(ctx, CreateOrderInput{Customer: "x", Items: []LineItem{{Name: "a", Quantity: 0, Price: 1}}})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	in := sampleInput()
	in.Status = "lost"
	_, err = svc.Add(ctx, in)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, stubMenu{}, nil)
	created, err := svc.Add(ctx, sampleInput())
	require.NoError(t, err)

	_, err = svc.Transition(ctx, created.ID, enums.OrderStatusDelivered)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStateConflict))

	ready, err := svc.Transition(ctx, created.ID, enums.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusReady, ready.Status)
	assert.Equal(t, created.EstimatedTime, ready.EstimatedTime, "status moves leave estimatedTime alone")

	_, err = svc.Transition(ctx, created.ID, enums.OrderStatusCancelled)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStateConflict))

	delivered, err := svc.Transition(ctx, created.ID, enums.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusDelivered, delivered.Status)

	_, err = svc.Transition(ctx, created.ID, enums.OrderStatusPreparing)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStateConflict))

	_, err = svc.Transition(ctx, created.ID, "teleported")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.Transition(ctx, "ORD-0", enums.OrderStatusReady)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestRejectedTransitionDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, stubMenu{}, nil)
	created, err := svc.Add(ctx, sampleInput())
	require.NoError(t, err)

	_, err = svc.Transition(ctx, created.ID, enums.OrderStatusDelivered)
	require.Error(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPreparing, all[0].Status)
}

func TestCancelFromPreparing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, stubMenu{}, nil)
	created, err := svc.Add(ctx, sampleInput())
	require.NoError(t, err)

	cancelled, err := svc.Transition(ctx, created.ID, enums.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, created.EstimatedTime, cancelled.EstimatedTime)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, stubMenu{}, nil)
	created, err := svc.Add(ctx, sampleInput())
	require.NoError(t, err)

	address := "9 New Rd"
	updated, err := svc.Update(ctx, created.ID, UpdateOrderInput{Address: &address})
	require.NoError(t, err)
	assert.Equal(t, address, updated.Address)
	assert.Equal(t, created.Total, updated.Total)
	assert.Equal(t, created.Items, updated.Items)

	_, err = svc.Update(ctx, "ORD-missing", UpdateOrderInput{Address: &address})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	assert.True(t, pkgerrors.HasCode(svc.Delete(ctx, "ORD-missing"), pkgerrors.CodeNotFound))

	all, _ := repo.GetAll(ctx)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	all, _ = repo.GetAll(ctx)
	assert.Empty(t, all)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, stubMenu{}, nil)
	first, err := svc.Add(ctx, sampleInput())
	require.NoError(t, err)
	other := sampleInput()
	other.Customer = "Mike Chen"
	other.Address = "456 Oak Ave, Uptown"
	other.Status = enums.OrderStatusReady
	_, err = svc.Add(ctx, other)
	require.NoError(t, err)

	ready := enums.OrderStatusReady
	got, err := svc.List(ctx, ListInput{Status: &ready})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mike Chen", got[0].Customer)

	got, err = svc.List(ctx, ListInput{Search: first.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)

	got, err = svc.List(ctx, ListInput{Search: "oak ave"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mike Chen", got[0].Customer)
}

func TestGenerateRandomOrderUsesActiveMenuItems(t *testing.T) {
	m := stubMenu{items: []menu.Item{
		{ID: "1", Name: "Margherita Pizza", Price: 18.99, IsActive: true},
		{ID: "2", Name: "Retired Soup", Price: 3.00, IsActive: false},
		{ID: "3", Name: "Chicken Wings", Price: 12.99, IsActive: true},
	}}
	// count=2, pick wings x3, pick pizza x1, credit card, customer 1, address 4
	svc, _ := newTestService(t, m, sequence(1, 1, 2, 0, 0, 0, 1, 4))

	order, err := svc.GenerateRandomOrder(context.Background())
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, LineItem{Name: "Chicken Wings", Quantity: 3, Price: 12.99}, order.Items[0])
	assert.Equal(t, LineItem{Name: "Margherita Pizza", Quantity: 1, Price: 18.99}, order.Items[1])
	assert.Equal(t, 57.96, order.Total)
	assert.Equal(t, "Credit Card", order.PaymentMethod)
	assert.Equal(t, "Maria Garcia", order.Customer)
	assert.Equal(t, "654 Maple Dr", order.Address)
	assert.Equal(t, enums.OrderStatusPreparing, order.Status)
	assert.Equal(t, DefaultEstimatedTime, order.EstimatedTime)
}

func TestGenerateRandomOrderWithRealRandomness(t *testing.T) {
	m := stubMenu{items: []menu.Item{{ID: "1", Name: "Pasta", Price: 19.99, IsActive: true}}}
	svc, _ := newTestService(t, m, nil)

	order, err := svc.GenerateRandomOrder(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(order.Items), 1)
	assert.LessOrEqual(t, len(order.Items), 3)
	assert.Contains(t, simulatedCustomers, order.Customer)
	assert.Contains(t, simulatedAddresses, order.Address)
	assert.Contains(t, []string{"Cash", "Credit Card"}, order.PaymentMethod)
	assert.Equal(t, Total(order.Items), order.Total)
}

func TestGenerateRandomOrderWithoutActiveItems(t *testing.T) {
	m := stubMenu{items: []menu.Item{{ID: "1", Name: "Soup", IsActive: false}}}
	svc, repo := newTestService(t, m, nil)

	_, err := svc.GenerateRandomOrder(context.Background())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStateConflict))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
	assert.Equal(t, 48.97, Total([]LineItem{{Quantity: 1, Price: 18.99}, {Quantity: 2, Price: 14.99}}))
}
