package repositories

import (
	"context"
	"time"

	"bodegamart/internal/models"

	"github.com/google/uuid"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sale, error)
	ListByDate(ctx context.Context, profileID uuid.UUID, day time.Time) ([]*models.Sale, error)
}

type saleRepo struct {
	db Database
}

func NewSaleRepository(db Database) SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) Create(ctx context.Context, sale *models.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, profile_id, product_id, quantity, total_value, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.db.Exec(ctx, query, sale.ID, sale.UserID, sale.ProfileID, sale.ProductID, sale.Quantity, sale.TotalValue, sale.SaleDate)
	return err
}

func (r *saleRepo) List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	query := `
		SELECT id, user_id, profile_id, product_id, quantity, total_value, sale_date, created_at
		FROM sales
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, profileID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		sale := &models.Sale{}
		if err := rows.Scan(&sale.ID, &sale.UserID, &sale.ProfileID, &sale.ProductID, &sale.Quantity, &sale.TotalValue, &sale.SaleDate, &sale.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, nil
}

// ListByDate returns the sales recorded on a calendar day. Used to compute
// day-closing totals and to build closing exports.
func (r *saleRepo) ListByDate(ctx context.Context, profileID uuid.UUID, day time.Time) ([]*models.Sale, error) {
	query := `
		SELECT id, user_id, profile_id, product_id, quantity, total_value, sale_date, created_at
		FROM sales
		WHERE profile_id = $1 AND sale_date::date = $2::date
		ORDER BY sale_date ASC
	`
	rows, err := r.db.Query(ctx, query, profileID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		sale := &models.Sale{}
		if err := rows.Scan(&sale.ID, &sale.UserID, &sale.ProfileID, &sale.ProductID, &sale.Quantity, &sale.TotalValue, &sale.SaleDate, &sale.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, nil
}
