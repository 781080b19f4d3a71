// Package analytics derives read-only statistics from full collection
// snapshots. Nothing here is cached; callers pass freshly read slices.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/feedback"
	"github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/internal/orders"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	"github.com/angelmondragon/restroboost-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// OrderStats summarizes orders. "Today" is the calendar day of now in now's
// location.
func OrderStats(all []orders.Order, now time.Time) OrderSummary {
	summary := OrderSummary{
		TotalOrders: len(all),
		ByStatus:    make(map[enums.OrderStatus]int),
		Recent:      []orders.Order{},
	}

	revenue := decimal.Zero
	customers := make(map[string]struct{})
	for _, o := range all {
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		customers[o.Customer] = struct{}{}
		summary.ByStatus[o.Status]++
		if sameDay(o.CreatedAt, now) {
			summary.TodayOrders++
		}
	}
	summary.TotalRevenue = revenue.InexactFloat64()
	summary.ActiveCustomers = len(customers)
	if len(all) > 0 {
		summary.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(all)))).InexactFloat64()
	}

	recent := append([]orders.Order(nil), all...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentOrderLimit {
		recent = recent[:RecentOrderLimit]
	}
	summary.Recent = append(summary.Recent, recent...)
	return summary
}

func sameDay(t, now time.Time) bool {
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// SentimentDistribution counts entries by their stored sentiment label.
// Percentages are rounded half up.
func SentimentDistribution(entries []feedback.Entry) SentimentSummary {
	summary := SentimentSummary{Total: len(entries)}
	if len(entries) == 0 {
		return summary
	}

	var ratingSum, responded int
	for _, e := range entries {
		switch e.Sentiment {
		case enums.SentimentPositive:
			summary.Positive++
		case enums.SentimentNeutral:
			summary.Neutral++
		case enums.SentimentNegative:
			summary.Negative++
		}
		ratingSum += e.Rating
		if e.Responded {
			responded++
		}
	}
	n := len(entries)
	summary.AverageRating = float64(ratingSum) / float64(n)
	summary.PositivePercent = percent(summary.Positive, n)
	summary.NegativePercent = percent(summary.Negative, n)
	summary.ResponseRate = percent(responded, n)
	return summary
}

func percent(part, total int) int {
	return int(math.Floor(float64(part)/float64(total)*100 + 0.5))
}

// LowStock returns items whose stored status is critical or low. Status is
// read as stored, not recomputed from quantity.
func LowStock(items []inventory.Item) InventoryAlerts {
	alerts := InventoryAlerts{Items: []inventory.Item{}}
	value := decimal.Zero
	for _, item := range items {
		value = value.Add(decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.Cost)))
		switch item.Status {
		case enums.StockStatusCritical:
			alerts.CriticalCount++
		case enums.StockStatusLow:
			alerts.LowCount++
		default:
			continue
		}
		alerts.Items = append(alerts.Items, item)
	}
	alerts.StockValue = money.Float(value)
	return alerts
}

// CategoryRollup groups menu items by category in first-seen order. The
// average rating folds each item in as (running + rating) / 2, which equals
// the mean for one or two items and weights later items more heavily after
// that. Do not replace it with a true mean.
func CategoryRollup(items []menu.Item) []CategoryStats {
	rollup := []CategoryStats{}
	index := make(map[string]int)
	for _, item := range items {
		if i, ok := index[item.Category]; ok {
			existing := &rollup[i]
			existing.Items++
			existing.TotalSales += item.Sales
			existing.AvgRating = (existing.AvgRating + item.Rating) / 2
			continue
		}
		index[item.Category] = len(rollup)
		rollup = append(rollup, CategoryStats{
			Name:       item.Category,
			Items:      1,
			TotalSales: item.Sales,
			AvgRating:  item.Rating,
		})
	}
	return rollup
}

// MenuStats summarizes the whole menu. Averages are true means.
func MenuStats(items []menu.Item) MenuSummary {
	summary := MenuSummary{
		TotalItems: len(items),
		Categories: CategoryRollup(items),
	}
	revenue := decimal.Zero
	profit := decimal.Zero
	var ratingSum float64
	for _, item := range items {
		revenue = revenue.Add(decimal.NewFromFloat(item.Revenue))
		profit = profit.Add(decimal.NewFromFloat(item.Profit))
		ratingSum += item.Rating
		if item.IsActive {
			summary.ActiveItems++
		}
	}
	summary.TotalRevenue = money.Float(revenue)
	if len(items) > 0 {
		summary.AverageRating = ratingSum / float64(len(items))
		summary.AverageProfit = money.Float(money.Avg(profit, len(items)))
	}
	return summary
}
