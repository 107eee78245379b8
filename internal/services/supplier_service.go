package services

import (
	"context"
	"errors"

	"bodegamart/internal/common"
	"bodegamart/internal/models"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, profileID, userID uuid.UUID, supplier *models.Supplier) error
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Supplier, error)
	GetByName(ctx context.Context, profileID uuid.UUID, name string) (*models.Supplier, error)
	Update(ctx context.Context, profileID uuid.UUID, supplier *models.Supplier) error
	Delete(ctx context.Context, profileID, id uuid.UUID) error
	List(ctx context.Context, profileID uuid.UUID) ([]*models.Supplier, error)
	EnsureDefault(ctx context.Context, profileID, userID uuid.UUID, contact common.UserContact) (*models.Supplier, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
	profileRepo  repositories.ProfileRepository
}

func NewSupplierService(supplierRepo repositories.SupplierRepository, profileRepo repositories.ProfileRepository) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
		profileRepo:  profileRepo,
	}
}

func (s *supplierService) Create(ctx context.Context, profileID, userID uuid.UUID, supplier *models.Supplier) error {
	if supplier.Name == "" {
		return errors.New("supplier name is required")
	}

	// Check for duplicate name
	existing, err := s.supplierRepo.GetByName(ctx, profileID, supplier.Name)
	if err == nil && existing != nil {
		return errors.New("supplier with this name already exists")
	}

	supplier.ID = uuid.New()
	supplier.UserID = userID
	supplier.ProfileID = profileID

	return s.supplierRepo.Create(ctx, supplier)
}

func (s *supplierService) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, profileID, id)
}

func (s *supplierService) GetByName(ctx context.Context, profileID uuid.UUID, name string) (*models.Supplier, error) {
	return s.supplierRepo.GetByName(ctx, profileID, name)
}

func (s *supplierService) Update(ctx context.Context, profileID uuid.UUID, supplier *models.Supplier) error {
	if supplier.Name == "" {
		return errors.New("supplier name is required")
	}

	supplier.ProfileID = profileID
	return s.supplierRepo.Update(ctx, supplier)
}

func (s *supplierService) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, profileID, id)
}

func (s *supplierService) List(ctx context.Context, profileID uuid.UUID) ([]*models.Supplier, error) {
	return s.supplierRepo.List(ctx, profileID)
}

// EnsureDefault creates the profile's "default" supplier from the account
// owner's contact details if it does not exist yet. The existence check is
// name-based string equality.
func (s *supplierService) EnsureDefault(ctx context.Context, profileID, userID uuid.UUID, contact common.UserContact) (*models.Supplier, error) {
	existing, err := s.supplierRepo.GetByName(ctx, profileID, models.DefaultSupplierName)
	if err == nil && existing != nil {
		return existing, nil
	}

	contactName := contact.Username
	if contactName == "" {
		contactName = contact.Email
	}
	if contactName == "" {
		contactName = "admin"
	}

	supplier := &models.Supplier{
		ID:        uuid.New(),
		UserID:    userID,
		ProfileID: profileID,
		Name:      models.DefaultSupplierName,
		Contact:   contactName,
	}
	if contact.Phone != "" {
		supplier.Phone = &contact.Phone
	}
	if contact.Email != "" {
		supplier.Email = &contact.Email
	}
	if profile, err := s.profileRepo.GetByID(ctx, userID, profileID); err == nil && profile.Address != nil {
		supplier.Address = profile.Address
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}
