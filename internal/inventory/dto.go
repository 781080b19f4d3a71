package inventory

import (
	"time"

	"github.com/angelmondragon/restroboost-backend/pkg/enums"
)

// Item is the persisted inventory record. Field names match the stored blob.
type Item struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Quantity    float64           `json:"quantity"`
	Unit        string            `json:"unit"`
	MinStock    float64           `json:"minStock"`
	MaxStock    float64           `json:"maxStock"`
	Cost        float64           `json:"cost"`
	Status      enums.StockStatus `json:"status"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// CreateItemInput holds the validated payload to add an item. Status is
// derived, never supplied.
type CreateItemInput struct {
	Name     string
	Category string
	Quantity float64
	Unit     string
	MinStock float64
	MaxStock float64
	Cost     float64
}

// UpdateItemInput is a shallow patch; nil fields are left untouched.
type UpdateItemInput struct {
	Name     *string
	Category *string
	Quantity *float64
	Unit     *string
	MinStock *float64
	MaxStock *float64
	Cost     *float64
	Status   *enums.StockStatus
}

// ListInput filters List results. Zero values match everything.
type ListInput struct {
	Status   *enums.StockStatus
	Category string
	Search   string
}

// DeriveStatus classifies stock against its minimum: at or below half the
// minimum is critical, at or below the minimum is low.
func DeriveStatus(quantity, minStock float64) enums.StockStatus {
	switch {
	case quantity <= minStock*0.5:
		return enums.StockStatusCritical
	case quantity <= minStock:
		return enums.StockStatusLow
	default:
		return enums.StockStatusGood
	}
}

func (in UpdateItemInput) apply(item *Item) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		item.MaxStock = *in.MaxStock
	}
	if in.Cost != nil {
		item.Cost = *in.Cost
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
}
