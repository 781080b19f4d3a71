package menu

import (
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	"github.com/angelmondragon/restroboost-backend/pkg/money"
)

// Item is the persisted menu record.
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          float64         `json:"price"`
	Sales          int             `json:"sales"`
	Revenue        float64         `json:"revenue"`
	Rating         float64         `json:"rating"`
	Cost           float64         `json:"cost"`
	Profit         float64         `json:"profit"`
	Trend          enums.MenuTrend `json:"trend"`
	Views          int             `json:"views"`
	ConversionRate float64         `json:"conversionRate"`
	IsActive       bool            `json:"isActive"`
}

// CreateItemInput holds the fields a new menu item is created from. Nil
// Rating and IsActive take their defaults (5 and true).
type CreateItemInput struct {
	Name     string
	Category string
	Price    float64
	Cost     float64
	Rating   *float64
	IsActive *bool
}

// UpdateItemInput is a shallow patch over a menu item.
type UpdateItemInput struct {
	Name           *string
	Category       *string
	Price          *float64
	Cost           *float64
	Rating         *float64
	IsActive       *bool
	Sales          *int
	Revenue        *float64
	Trend          *enums.MenuTrend
	Views          *int
	ConversionRate *float64
}

type ListInput struct {
	Category   string
	ActiveOnly bool
}

const defaultRating = 5

// Profit is the per-unit margin, rounded to cents.
func Profit(price, cost float64) float64 {
	return money.Sub(price, cost)
}

func (in UpdateItemInput) apply(item *Item) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Cost != nil {
		item.Cost = *in.Cost
	}
	if in.Rating != nil {
		item.Rating = *in.Rating
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if in.Sales != nil {
		item.Sales = *in.Sales
	}
	if in.Revenue != nil {
		item.Revenue = *in.Revenue
	}
	if in.Trend != nil {
		item.Trend = *in.Trend
	}
	if in.Views != nil {
		item.Views = *in.Views
	}
	if in.ConversionRate != nil {
		item.ConversionRate = *in.ConversionRate
	}
	if in.Price != nil || in.Cost != nil {
		item.Profit = Profit(item.Price, item.Cost)
	}
}
