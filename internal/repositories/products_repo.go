package repositories

import (
	"context"

	"bodegamart/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, profileID, id uuid.UUID) error
	List(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error)
	IncrementStock(ctx context.Context, profileID, id uuid.UUID, quantity int) (int, error)
	DecrementStockFloored(ctx context.Context, profileID, id uuid.UUID, quantity int) (int, error)
}

type productRepo struct {
	db Database
}

func NewProductRepository(db Database) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, user_id, profile_id, name, category, current_stock, min_stock, max_stock, unit_price, supplier_id, description, sku, unit, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...interface{}) error }, product *models.Product) error {
	return row.Scan(
		&product.ID, &product.UserID, &product.ProfileID, &product.Name, &product.Category,
		&product.CurrentStock, &product.MinStock, &product.MaxStock, &product.UnitPrice,
		&product.SupplierID, &product.Description, &product.SKU, &product.Unit,
		&product.CreatedAt, &product.UpdatedAt,
	)
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, user_id, profile_id, name, category, current_stock, min_stock, max_stock, unit_price, supplier_id, description, sku, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		product.ID, product.UserID, product.ProfileID, product.Name, product.Category,
		product.CurrentStock, product.MinStock, product.MaxStock, product.UnitPrice,
		product.SupplierID, product.Description, product.SKU, product.Unit,
	)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE profile_id = $1 AND id = $2
	`
	if err := scanProduct(r.db.QueryRow(ctx, query, profileID, id), product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, category = $2, current_stock = $3, min_stock = $4, max_stock = $5,
		    unit_price = $6, supplier_id = $7, description = $8, sku = $9, unit = $10, updated_at = NOW()
		WHERE profile_id = $11 AND id = $12
	`
	_, err := r.db.Exec(ctx, query,
		product.Name, product.Category, product.CurrentStock, product.MinStock, product.MaxStock,
		product.UnitPrice, product.SupplierID, product.Description, product.SKU, product.Unit,
		product.ProfileID, product.ID,
	)
	return err
}

func (r *productRepo) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	query := `DELETE FROM products WHERE profile_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, profileID, id)
	return err
}

func (r *productRepo) List(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := scanProduct(rows, product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// IncrementStock adds quantity to current_stock in a single statement and
// returns the resulting stock level. Used by replenishment approvals.
func (r *productRepo) IncrementStock(ctx context.Context, profileID, id uuid.UUID, quantity int) (int, error) {
	var newStock int
	query := `
		UPDATE products
		SET current_stock = current_stock + $1, updated_at = NOW()
		WHERE profile_id = $2 AND id = $3
		RETURNING current_stock
	`
	err := r.db.QueryRow(ctx, query, quantity, profileID, id).Scan(&newStock)
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

// DecrementStockFloored subtracts quantity from current_stock, floored at
// zero, in a single statement. Used by sale recording.
func (r *productRepo) DecrementStockFloored(ctx context.Context, profileID, id uuid.UUID, quantity int) (int, error) {
	var newStock int
	query := `
		UPDATE products
		SET current_stock = GREATEST(current_stock - $1, 0), updated_at = NOW()
		WHERE profile_id = $2 AND id = $3
		RETURNING current_stock
	`
	err := r.db.QueryRow(ctx, query, quantity, profileID, id).Scan(&newStock)
	if err != nil {
		return 0, err
	}
	return newStock, nil
}
