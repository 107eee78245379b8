package models

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	ProfileID  uuid.UUID `json:"profile_id" db:"profile_id"`
	ProductID  uuid.UUID `json:"product_id" db:"product_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	TotalValue float64   `json:"total_value" db:"total_value"`
	SaleDate   time.Time `json:"sale_date" db:"sale_date"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
