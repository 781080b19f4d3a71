package demo

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/feedback"
	"github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/internal/orders"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var fixtureYAML []byte

type fixture struct {
	Inventory []inventoryRow `yaml:"inventory"`
	Menu      []menuRow      `yaml:"menu"`
	Feedback  []feedbackRow  `yaml:"feedback"`
	Orders    []orderRow     `yaml:"orders"`
}

type inventoryRow struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
	MinStock float64 `yaml:"min_stock"`
	MaxStock float64 `yaml:"max_stock"`
	Cost     float64 `yaml:"cost"`
	Status   string  `yaml:"status"`
}

type menuRow struct {
	Name           string  `yaml:"name"`
	Category       string  `yaml:"category"`
	Price          float64 `yaml:"price"`
	Sales          int     `yaml:"sales"`
	Revenue        float64 `yaml:"revenue"`
	Rating         float64 `yaml:"rating"`
	Cost           float64 `yaml:"cost"`
	Profit         float64 `yaml:"profit"`
	Trend          string  `yaml:"trend"`
	Views          int     `yaml:"views"`
	ConversionRate float64 `yaml:"conversion_rate"`
	Active         bool    `yaml:"active"`
}

type feedbackRow struct {
	Customer  string `yaml:"customer"`
	Rating    int    `yaml:"rating"`
	Comment   string `yaml:"comment"`
	DaysAgo   int    `yaml:"days_ago"`
	Dish      string `yaml:"dish"`
	Sentiment string `yaml:"sentiment"`
	Helpful   int    `yaml:"helpful"`
	Responded bool   `yaml:"responded"`
}

type orderRow struct {
	Customer string `yaml:"customer"`
	Phone    string `yaml:"phone"`
	Address  string `yaml:"address"`
	Items    []struct {
		Name     string  `yaml:"name"`
		Quantity int     `yaml:"quantity"`
		Price    float64 `yaml:"price"`
	} `yaml:"items"`
	Total         float64 `yaml:"total"`
	Status        string  `yaml:"status"`
	MinutesAgo    int     `yaml:"minutes_ago"`
	EstimatedTime string  `yaml:"estimated_time"`
	PaymentMethod string  `yaml:"payment_method"`
}

// dataset is the fixture resolved against a seed time.
type dataset struct {
	inventory []inventory.Item
	menu      []menu.Item
	feedback  []feedback.Entry
	orders    []orders.Order
}

func loadDataset(raw []byte, now time.Time) (*dataset, error) {
	var f fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode demo fixture: %w", err)
	}

	out := &dataset{}
	for _, row := range f.Inventory {
		status, err := enums.ParseStockStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("inventory %q: %w", row.Name, err)
		}
		out.inventory = append(out.inventory, inventory.Item{
			Name:        row.Name,
			Category:    row.Category,
			Quantity:    row.Quantity,
			Unit:        row.Unit,
			MinStock:    row.MinStock,
			MaxStock:    row.MaxStock,
			Cost:        row.Cost,
			Status:      status,
			LastUpdated: now.UTC(),
		})
	}

	for _, row := range f.Menu {
		trend, err := enums.ParseMenuTrend(row.Trend)
		if err != nil {
			return nil, fmt.Errorf("menu %q: %w", row.Name, err)
		}
		out.menu = append(out.menu, menu.Item{
			Name:           row.Name,
			Category:       row.Category,
			Price:          row.Price,
			Sales:          row.Sales,
			Revenue:        row.Revenue,
			Rating:         row.Rating,
			Cost:           row.Cost,
			Profit:         row.Profit,
			Trend:          trend,
			Views:          row.Views,
			ConversionRate: row.ConversionRate,
			IsActive:       row.Active,
		})
	}

	for _, row := range f.Feedback {
		sentiment, err := enums.ParseSentiment(row.Sentiment)
		if err != nil {
			return nil, fmt.Errorf("feedback from %q: %w", row.Customer, err)
		}
		out.feedback = append(out.feedback, feedback.Entry{
			Customer:  row.Customer,
			Rating:    row.Rating,
			Comment:   row.Comment,
			Date:      now.AddDate(0, 0, -row.DaysAgo).Format(feedback.DateLayout),
			Dish:      row.Dish,
			Sentiment: sentiment,
			Helpful:   row.Helpful,
			Responded: row.Responded,
		})
	}

	for _, row := range f.Orders {
		status, err := enums.ParseOrderStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("order for %q: %w", row.Customer, err)
		}
		items := make([]orders.LineItem, 0, len(row.Items))
		for _, it := range row.Items {
			items = append(items, orders.LineItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
		}
		out.orders = append(out.orders, orders.Order{
			Customer:      row.Customer,
			Phone:         row.Phone,
			Address:       row.Address,
			Items:         items,
			Total:         row.Total,
			Status:        status,
			OrderTime:     now.Add(-time.Duration(row.MinutesAgo) * time.Minute).Format(orders.TimeLayout),
			EstimatedTime: row.EstimatedTime,
			PaymentMethod: row.PaymentMethod,
			CreatedAt:     now,
		})
	}
	return out, nil
}
