package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the tenant/location scoping unit. Every supplier, product, sale,
// closing and replenishment request belongs to exactly one profile, and all
// profiles belong to a single authenticated user account.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Address   *string   `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
