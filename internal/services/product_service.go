package services

import (
	"context"
	"errors"
	"log"
	"time"

	"bodegamart/internal/caching"
	"bodegamart/internal/common"
	"bodegamart/internal/models"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
)

const productCacheTTL = 5 * time.Minute

type ProductService interface {
	Create(ctx context.Context, profileID, userID uuid.UUID, product *models.Product) error
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, profileID, id uuid.UUID, updates *models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, profileID, id uuid.UUID) error
	List(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error)
}

type productService struct {
	productRepo repositories.ProductRepository
	cacheSvc    caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, cacheSvc caching.CacheService) ProductService {
	return &productService{
		productRepo: productRepo,
		cacheSvc:    cacheSvc,
	}
}

func (s *productService) Create(ctx context.Context, profileID, userID uuid.UUID, product *models.Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}
	if product.Unit == "" {
		return errors.New("product unit is required")
	}
	if err := common.ValidateStockLevels(product.CurrentStock, product.MinStock, product.MaxStock); err != nil {
		return err
	}
	if product.UnitPrice < 0 {
		return errors.New("unit price cannot be negative")
	}

	product.ID = uuid.New()
	product.UserID = userID
	product.ProfileID = profileID

	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}

	s.invalidate(ctx, profileID)
	return nil
}

func (s *productService) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cacheSvc.GetProduct(ctx, profileID, id); err == nil && cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetProduct(ctx, profileID, product, productCacheTTL); err != nil {
		log.Printf("Failed to cache product %s: %v", product.ID.String(), err)
	}
	return product, nil
}

// Update applies a partial-field update. Stock mutations driven by sales and
// replenishment approvals bypass this path and use the atomic repository
// operations instead.
func (s *productService) Update(ctx context.Context, profileID, id uuid.UUID, updates *models.ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		product.Name = *updates.Name
	}
	if updates.Category != nil {
		product.Category = *updates.Category
	}
	if updates.CurrentStock != nil {
		product.CurrentStock = *updates.CurrentStock
	}
	if updates.MinStock != nil {
		product.MinStock = *updates.MinStock
	}
	if updates.MaxStock != nil {
		product.MaxStock = *updates.MaxStock
	}
	if updates.UnitPrice != nil {
		product.UnitPrice = *updates.UnitPrice
	}
	if updates.SupplierID != nil {
		product.SupplierID = updates.SupplierID
	}
	if updates.Description != nil {
		product.Description = updates.Description
	}
	if updates.SKU != nil {
		product.SKU = updates.SKU
	}
	if updates.Unit != nil {
		product.Unit = *updates.Unit
	}

	if product.Name == "" {
		return nil, errors.New("product name is required")
	}
	if err := common.ValidateStockLevels(product.CurrentStock, product.MinStock, product.MaxStock); err != nil {
		return nil, err
	}
	if product.UnitPrice < 0 {
		return nil, errors.New("unit price cannot be negative")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, profileID)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, profileID, id); err != nil {
		return err
	}
	s.invalidate(ctx, profileID)
	return nil
}

func (s *productService) List(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error) {
	if cached, err := s.cacheSvc.GetProductList(ctx, profileID); err == nil && cached != nil {
		return cached, nil
	}

	products, err := s.productRepo.List(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetProductList(ctx, profileID, products, productCacheTTL); err != nil {
		log.Printf("Failed to cache product list for profile %s: %v", profileID.String(), err)
	}
	return products, nil
}

func (s *productService) invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := s.cacheSvc.InvalidateProfileCache(ctx, profileID); err != nil {
		log.Printf("Failed to invalidate cache for profile %s: %v", profileID.String(), err)
	}
}
