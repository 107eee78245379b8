package repositories

import (
	"context"

	"bodegamart/internal/models"

	"github.com/google/uuid"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Supplier, error)
	GetByName(ctx context.Context, profileID uuid.UUID, name string) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, profileID, id uuid.UUID) error
	List(ctx context.Context, profileID uuid.UUID) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.UserID, supplier.ProfileID, supplier.Name, supplier.Contact, supplier.Phone, supplier.Email, supplier.Address)
	return err
}

func (r *supplierRepo) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	query := `
		SELECT id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at
		FROM suppliers
		WHERE profile_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, profileID, id).Scan(&supplier.ID, &supplier.UserID, &supplier.ProfileID, &supplier.Name, &supplier.Contact, &supplier.Phone, &supplier.Email, &supplier.Address, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) GetByName(ctx context.Context, profileID uuid.UUID, name string) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	query := `
		SELECT id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at
		FROM suppliers
		WHERE profile_id = $1 AND name = $2
	`
	err := r.db.QueryRow(ctx, query, profileID, name).Scan(&supplier.ID, &supplier.UserID, &supplier.ProfileID, &supplier.Name, &supplier.Contact, &supplier.Phone, &supplier.Email, &supplier.Address, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, contact = $2, phone = $3, email = $4, address = $5, updated_at = NOW()
		WHERE profile_id = $6 AND id = $7
	`
	_, err := r.db.Exec(ctx, query, supplier.Name, supplier.Contact, supplier.Phone, supplier.Email, supplier.Address, supplier.ProfileID, supplier.ID)
	return err
}

func (r *supplierRepo) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	query := `DELETE FROM suppliers WHERE profile_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, profileID, id)
	return err
}

func (r *supplierRepo) List(ctx context.Context, profileID uuid.UUID) ([]*models.Supplier, error) {
	query := `
		SELECT id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at
		FROM suppliers
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		supplier := &models.Supplier{}
		if err := rows.Scan(&supplier.ID, &supplier.UserID, &supplier.ProfileID, &supplier.Name, &supplier.Contact, &supplier.Phone, &supplier.Email, &supplier.Address, &supplier.CreatedAt, &supplier.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}
