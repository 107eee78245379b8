package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	ProfileID    uuid.UUID  `json:"profile_id" db:"profile_id"`
	Name         string     `json:"name" db:"name"`
	Category     string     `json:"category" db:"category"`
	CurrentStock int        `json:"current_stock" db:"current_stock"`
	MinStock     int        `json:"min_stock" db:"min_stock"`
	MaxStock     int        `json:"max_stock" db:"max_stock"`
	UnitPrice    float64    `json:"unit_price" db:"unit_price"`
	SupplierID   *uuid.UUID `json:"supplier_id" db:"supplier_id"`
	Description  *string    `json:"description" db:"description"`
	SKU          *string    `json:"sku" db:"sku"`
	Unit         string     `json:"unit" db:"unit"` // 'pieces', 'kg', 'liters', etc.
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// ProductUpdate carries a partial-field update. Nil fields are left untouched.
// Stock changes triggered by sales and replenishment approvals do not go
// through here; those use the atomic stock mutations on the repository.
type ProductUpdate struct {
	Name         *string    `json:"name,omitempty"`
	Category     *string    `json:"category,omitempty"`
	CurrentStock *int       `json:"current_stock,omitempty"`
	MinStock     *int       `json:"min_stock,omitempty"`
	MaxStock     *int       `json:"max_stock,omitempty"`
	UnitPrice    *float64   `json:"unit_price,omitempty"`
	SupplierID   *uuid.UUID `json:"supplier_id,omitempty"`
	Description  *string    `json:"description,omitempty"`
	SKU          *string    `json:"sku,omitempty"`
	Unit         *string    `json:"unit,omitempty"`
}
