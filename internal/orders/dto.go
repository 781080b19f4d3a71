package orders

import (
	"time"

	"github.com/angelmondragon/restroboost-backend/pkg/enums"
)

const (
	// IDPrefix starts every order id.
	IDPrefix = "ORD-"
	// TimeLayout renders the clock time shown as orderTime.
	TimeLayout = "3:04:05 PM"

	DefaultEstimatedTime = "20-25 mins"
	DefaultPaymentMethod = "Credit Card"
)

// LineItem is a name/price snapshot taken when the order is placed. It does
// not reference the menu item it came from.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is the persisted delivery order.
type Order struct {
	ID            string            `json:"id"`
	Customer      string            `json:"customer"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	Items         []LineItem        `json:"items"`
	Total         float64           `json:"total"`
	Status        enums.OrderStatus `json:"status"`
	OrderTime     string            `json:"orderTime"`
	EstimatedTime string            `json:"estimatedTime"`
	PaymentMethod string            `json:"paymentMethod"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// CreateOrderInput holds a new order. Nil Total is computed from Items; empty
// strings take their defaults.
type CreateOrderInput struct {
	Customer      string
	Phone         string
	Address       string
	Items         []LineItem
	Total         *float64
	Status        enums.OrderStatus
	OrderTime     string
	EstimatedTime string
	PaymentMethod string
}

// UpdateOrderInput is a shallow patch. Status changes made here bypass the
// transition rules; use Transition for kitchen workflow.
type UpdateOrderInput struct {
	Customer      *string
	Phone         *string
	Address       *string
	Items         *[]LineItem
	Total         *float64
	Status        *enums.OrderStatus
	EstimatedTime *string
	PaymentMethod *string
}

type ListInput struct {
	Status *enums.OrderStatus
	Search string
}

func (in UpdateOrderInput) apply(o *Order) {
	if in.Customer != nil {
		o.Customer = *in.Customer
	}
	if in.Phone != nil {
		o.Phone = *in.Phone
	}
	if in.Address != nil {
		o.Address = *in.Address
	}
	if in.Items != nil {
		o.Items = append([]LineItem{}, (*in.Items)...)
	}
	if in.Total != nil {
		o.Total = *in.Total
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.EstimatedTime != nil {
		o.EstimatedTime = *in.EstimatedTime
	}
	if in.PaymentMethod != nil {
		o.PaymentMethod = *in.PaymentMethod
	}
}
