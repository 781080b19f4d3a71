package analytics

import (
	"github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/internal/orders"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
)

// RecentOrderLimit caps OrderSummary.Recent.
const RecentOrderLimit = 5

type OrderSummary struct {
	TotalOrders       int                       `json:"totalOrders"`
	TotalRevenue      float64                   `json:"totalRevenue"`
	AverageOrderValue float64                   `json:"averageOrderValue"`
	TodayOrders       int                       `json:"todayOrders"`
	ActiveCustomers   int                       `json:"activeCustomers"`
	ByStatus          map[enums.OrderStatus]int `json:"byStatus"`
	Recent            []orders.Order            `json:"recent"`
}

type SentimentSummary struct {
	Total           int     `json:"total"`
	Positive        int     `json:"positive"`
	Neutral         int     `json:"neutral"`
	Negative        int     `json:"negative"`
	AverageRating   float64 `json:"averageRating"`
	PositivePercent int     `json:"positivePercent"`
	NegativePercent int     `json:"negativePercent"`
	ResponseRate    int     `json:"responseRate"`
}

type InventoryAlerts struct {
	Items         []inventory.Item `json:"items"`
	CriticalCount int              `json:"criticalCount"`
	LowCount      int              `json:"lowCount"`
	StockValue    float64          `json:"stockValue"`
}

// CategoryStats rolls up one menu category. AvgRating is a running pairwise
// average, see CategoryRollup.
type CategoryStats struct {
	Name       string  `json:"name"`
	Items      int     `json:"items"`
	TotalSales int     `json:"totalSales"`
	AvgRating  float64 `json:"avgRating"`
}

type MenuSummary struct {
	TotalItems    int             `json:"totalItems"`
	ActiveItems   int             `json:"activeItems"`
	TotalRevenue  float64         `json:"totalRevenue"`
	AverageRating float64         `json:"averageRating"`
	AverageProfit float64         `json:"averageProfit"`
	Categories    []CategoryStats `json:"categories"`
}

// Dashboard is every derived statistic computed from one read of each
// collection.
type Dashboard struct {
	Orders    OrderSummary     `json:"orders"`
	Feedback  SentimentSummary `json:"feedback"`
	Inventory InventoryAlerts  `json:"inventory"`
	Menu      MenuSummary      `json:"menu"`
}
