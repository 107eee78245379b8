package repositories

import (
	"context"
	"time"

	"bodegamart/internal/models"

	"github.com/google/uuid"
)

type ReplenishmentRepository interface {
	Create(ctx context.Context, request *models.ReplenishmentRequest) error
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.ReplenishmentRequest, error)
	List(ctx context.Context, profileID uuid.UUID) ([]*models.ReplenishmentRequest, error)
	UpdateStatus(ctx context.Context, profileID, id uuid.UUID, status string, approvedAt, completedAt *time.Time, notes *string) error
	Delete(ctx context.Context, profileID, id uuid.UUID) error
}

type replenishmentRepo struct {
	db Database
}

func NewReplenishmentRepository(db Database) ReplenishmentRepository {
	return &replenishmentRepo{db: db}
}

const replenishmentColumns = `id, profile_id, product_id, supplier_id, quantity, status, requested_by, requested_at, approved_at, completed_at, notes, created_at, updated_at`

func scanReplenishment(row interface{ Scan(dest ...interface{}) error }, request *models.ReplenishmentRequest) error {
	return row.Scan(
		&request.ID, &request.ProfileID, &request.ProductID, &request.SupplierID,
		&request.Quantity, &request.Status, &request.RequestedBy, &request.RequestedAt,
		&request.ApprovedAt, &request.CompletedAt, &request.Notes,
		&request.CreatedAt, &request.UpdatedAt,
	)
}

func (r *replenishmentRepo) Create(ctx context.Context, request *models.ReplenishmentRequest) error {
	query := `
		INSERT INTO replenishment_requests (id, profile_id, product_id, supplier_id, quantity, status, requested_by, requested_at, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		request.ID, request.ProfileID, request.ProductID, request.SupplierID,
		request.Quantity, request.Status, request.RequestedBy, request.RequestedAt, request.Notes,
	)
	return err
}

func (r *replenishmentRepo) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.ReplenishmentRequest, error) {
	request := &models.ReplenishmentRequest{}
	query := `
		SELECT ` + replenishmentColumns + `
		FROM replenishment_requests
		WHERE profile_id = $1 AND id = $2
	`
	if err := scanReplenishment(r.db.QueryRow(ctx, query, profileID, id), request); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *replenishmentRepo) List(ctx context.Context, profileID uuid.UUID) ([]*models.ReplenishmentRequest, error) {
	query := `
		SELECT ` + replenishmentColumns + `
		FROM replenishment_requests
		WHERE profile_id = $1
		ORDER BY requested_at DESC
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.ReplenishmentRequest
	for rows.Next() {
		request := &models.ReplenishmentRequest{}
		if err := scanReplenishment(rows, request); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (r *replenishmentRepo) UpdateStatus(ctx context.Context, profileID, id uuid.UUID, status string, approvedAt, completedAt *time.Time, notes *string) error {
	query := `
		UPDATE replenishment_requests
		SET status = $1,
		    approved_at = COALESCE($2, approved_at),
		    completed_at = COALESCE($3, completed_at),
		    notes = COALESCE($4, notes),
		    updated_at = NOW()
		WHERE profile_id = $5 AND id = $6
	`
	_, err := r.db.Exec(ctx, query, status, approvedAt, completedAt, notes, profileID, id)
	return err
}

// Delete removes a request unconditionally, regardless of status. Stock
// effects of an earlier approval are not reversed.
func (r *replenishmentRepo) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	query := `DELETE FROM replenishment_requests WHERE profile_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, profileID, id)
	return err
}
