package models

import (
	"time"

	"github.com/google/uuid"
)

// DayClosing is a persisted daily summary (total units sold, total value)
// recorded manually by a user at the end of the day.
type DayClosing struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ProfileID  uuid.UUID `json:"profile_id" db:"profile_id"`
	Date       time.Time `json:"date" db:"date"`
	TotalSales int       `json:"total_sales" db:"total_sales"`
	TotalValue float64   `json:"total_value" db:"total_value"`
	ClosedBy   uuid.UUID `json:"closed_by" db:"closed_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
