package repositories

import (
	"context"

	"bodegamart/internal/models"

	"github.com/google/uuid"
)

type DayClosingRepository interface {
	Create(ctx context.Context, closing *models.DayClosing) error
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.DayClosing, error)
	List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.DayClosing, error)
}

type dayClosingRepo struct {
	db Database
}

func NewDayClosingRepository(db Database) DayClosingRepository {
	return &dayClosingRepo{db: db}
}

func (r *dayClosingRepo) Create(ctx context.Context, closing *models.DayClosing) error {
	query := `
		INSERT INTO day_closings (id, profile_id, date, total_sales, total_value, closed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, closing.ID, closing.ProfileID, closing.Date, closing.TotalSales, closing.TotalValue, closing.ClosedBy)
	return err
}

func (r *dayClosingRepo) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.DayClosing, error) {
	closing := &models.DayClosing{}
	query := `
		SELECT id, profile_id, date, total_sales, total_value, closed_by, created_at
		FROM day_closings
		WHERE profile_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, profileID, id).Scan(&closing.ID, &closing.ProfileID, &closing.Date, &closing.TotalSales, &closing.TotalValue, &closing.ClosedBy, &closing.CreatedAt)
	if err != nil {
		return nil, err
	}
	return closing, nil
}

func (r *dayClosingRepo) List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.DayClosing, error) {
	query := `
		SELECT id, profile_id, date, total_sales, total_value, closed_by, created_at
		FROM day_closings
		WHERE profile_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, profileID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var closings []*models.DayClosing
	for rows.Next() {
		closing := &models.DayClosing{}
		if err := rows.Scan(&closing.ID, &closing.ProfileID, &closing.Date, &closing.TotalSales, &closing.TotalValue, &closing.ClosedBy, &closing.CreatedAt); err != nil {
			return nil, err
		}
		closings = append(closings, closing)
	}
	return closings, nil
}
