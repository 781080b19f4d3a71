package orders

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/money"
)

// Service exposes order tracking operations.
type Service interface {
	List(ctx context.Context, input ListInput) ([]Order, error)
	Add(ctx context.Context, input CreateOrderInput) (*Order, error)
	Update(ctx context.Context, id string, input UpdateOrderInput) (*Order, error)
	Transition(ctx context.Context, id string, next enums.OrderStatus) (*Order, error)
	Delete(ctx context.Context, id string) error
	GenerateRandomOrder(ctx context.Context) (*Order, error)
}

// ServiceParams bundles the dependencies required to build an orders service.
// IntN defaults to math/rand/v2.IntN.
type ServiceParams struct {
	Repo repository
	Menu menuReader
	Now  func() time.Time
	IntN func(n int) int
}

type service struct {
	repo repository
	menu menuReader
	now  func() time.Time
	intN func(n int) int
}

var (
	simulatedCustomers = []string{"Alex Johnson", "Maria Garcia", "David Kim", "Sarah Wilson", "Tom Brown"}
	simulatedAddresses = []string{"123 Main St", "456 Oak Ave", "789 Pine Rd", "321 Elm St", "654 Maple Dr"}
)

const simulatedPhone = "+1 (555) 123-4567"

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Menu == nil {
		return nil, fmt.Errorf("menu reader is required")
	}
	svc := &service{repo: params.Repo, menu: params.Menu, now: params.Now, intN: params.IntN}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.intN == nil {
		svc.intN = rand.Intn
	}
	return svc, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]Order, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))
	filtered := make([]Order, 0, len(all))
	for _, o := range all {
		if input.Status != nil && o.Status != *input.Status {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

func matchesSearch(o Order, search string) bool {
	return strings.Contains(strings.ToLower(o.Customer), search) ||
		strings.Contains(strings.ToLower(o.ID), search) ||
		strings.Contains(strings.ToLower(o.Address), search)
}

// Add stamps createdAt and fills in the total and display defaults.
func (s *service) Add(ctx context.Context, input CreateOrderInput) (*Order, error) {
	if strings.TrimSpace(input.Customer) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 || item.Price < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive and price non-negative").
				WithDetails(map[string]any{"item": item.Name})
		}
	}
	status := input.Status
	if status == "" {
		status = enums.OrderStatusPreparing
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", status))
	}

	now := s.now()
	order := Order{
		Customer:      strings.TrimSpace(input.Customer),
		Phone:         input.Phone,
		Address:       input.Address,
		Items:         append([]LineItem{}, input.Items...),
		Status:        status,
		OrderTime:     firstNonEmpty(input.OrderTime, now.Format(TimeLayout)),
		EstimatedTime: firstNonEmpty(input.EstimatedTime, DefaultEstimatedTime),
		PaymentMethod: firstNonEmpty(input.PaymentMethod, DefaultPaymentMethod),
		CreatedAt:     now.UTC().Truncate(time.Millisecond),
	}
	if input.Total != nil {
		order.Total = *input.Total
	} else {
		order.Total = Total(order.Items)
	}

	created, err := s.repo.Add(ctx, order)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateOrderInput) (*Order, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", *input.Status))
	}
	return s.update(ctx, id, func(o *Order) error {
		input.apply(o)
		return nil
	})
}

// Transition moves an order along preparing -> ready -> delivered, or
// preparing -> cancelled. Anything else is a state conflict.
func (s *service) Transition(ctx context.Context, id string, next enums.OrderStatus) (*Order, error) {
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", next))
	}
	return s.update(ctx, id, func(o *Order) error {
		if !o.Status.CanTransitionTo(next) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("order cannot move from %s to %s", o.Status, next)).
				WithDetails(map[string]any{"current": o.Status, "allowed": o.Status.NextStatuses()})
		}
		o.Status = next
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound(id)
	}
	return nil
}

// GenerateRandomOrder places a demo order of one to three random active menu
// items for a random customer.
func (s *service) GenerateRandomOrder(ctx context.Context) (*Order, error) {
	items, err := s.menu.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			active = append(active, item)
		}
	}
	if len(active) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no active menu items to order")
	}

	count := s.intN(3) + 1
	lines := make([]LineItem, 0, count)
	for i := 0; i < count; i++ {
		pick := active[s.intN(len(active))]
		lines = append(lines, LineItem{
			Name:     pick.Name,
			Quantity: s.intN(3) + 1,
			Price:    pick.Price,
		})
	}
	payment := "Cash"
	if s.intN(2) == 0 {
		payment = "Credit Card"
	}

	return s.Add(ctx, CreateOrderInput{
		Customer:      simulatedCustomers[s.intN(len(simulatedCustomers))],
		Phone:         simulatedPhone,
		Address:       simulatedAddresses[s.intN(len(simulatedAddresses))],
		Items:         lines,
		Status:        enums.OrderStatusPreparing,
		EstimatedTime: DefaultEstimatedTime,
		PaymentMethod: payment,
	})
}

func (s *service) update(ctx context.Context, id string, mutate func(*Order) error) (*Order, error) {
	updated, found, err := s.repo.Update(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(id)
	}
	return &updated, nil
}

// Total sums price*quantity across items, exact to the cent.
func Total(items []LineItem) float64 {
	sum := money.Sum()
	for _, item := range items {
		sum = sum.Add(money.LineTotal(item.Price, item.Quantity))
	}
	return money.Float(sum)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func notFound(id string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order %s not found", id))
}
