package repositories

import (
	"context"

	"bodegamart/internal/models"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Profile, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*models.Profile, error)
	ListAll(ctx context.Context) ([]*models.Profile, error)
}

type profileRepo struct {
	db Database
}

func NewProfileRepository(db Database) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, name, address, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, profile.ID, profile.UserID, profile.Name, profile.Address)
	return err
}

func (r *profileRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, user_id, name, address, created_at
		FROM profiles
		WHERE user_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, userID, id).Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Address, &profile.CreatedAt)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM profiles WHERE user_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, userID, id)
	return err
}

func (r *profileRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.Profile, error) {
	query := `
		SELECT id, user_id, name, address, created_at
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile := &models.Profile{}
		if err := rows.Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Address, &profile.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// ListAll returns every profile across all accounts. Used by background jobs.
func (r *profileRepo) ListAll(ctx context.Context) ([]*models.Profile, error) {
	query := `
		SELECT id, user_id, name, address, created_at
		FROM profiles
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile := &models.Profile{}
		if err := rows.Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.Address, &profile.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
