package models

import (
	"time"

	"github.com/google/uuid"
)

// Replenishment request status lifecycle:
// pending -> completed (via approval, which also increments product stock)
// pending -> completed (direct, no stock side effect)
// pending -> rejected
// Approval stamps both approved_at and completed_at; the request never rests
// in an "approved, awaiting fulfillment" state.
const (
	ReplenishmentStatusPending   = "pending"
	ReplenishmentStatusApproved  = "approved"
	ReplenishmentStatusRejected  = "rejected"
	ReplenishmentStatusCompleted = "completed"
)

type ReplenishmentRequest struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ProfileID   uuid.UUID  `json:"profile_id" db:"profile_id"`
	ProductID   uuid.UUID  `json:"product_id" db:"product_id"`
	SupplierID  uuid.UUID  `json:"supplier_id" db:"supplier_id"`
	Quantity    int        `json:"quantity" db:"quantity"`
	Status      string     `json:"status" db:"status"`
	RequestedBy uuid.UUID  `json:"requested_by" db:"requested_by"`
	RequestedAt time.Time  `json:"requested_at" db:"requested_at"`
	ApprovedAt  *time.Time `json:"approved_at" db:"approved_at"`
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"`
	Notes       *string    `json:"notes" db:"notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ReplenishmentItem is one entry of a batch request. Each item becomes its
// own ReplenishmentRequest row; there is no atomicity across items.
type ReplenishmentItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
}
