package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AlertTypeLowStock   = "low_stock"
	AlertTypeOutOfStock = "out_of_stock"
)

// StockAlert is derived from a product's current vs. minimum stock. It is
// never persisted; listings recompute it from the product collection.
type StockAlert struct {
	ID        string    `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	AlertType string    `json:"alert_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
