package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"bodegamart/internal/caching"
	"bodegamart/internal/common"
	"bodegamart/internal/models"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
)

// SaleInput is one sale to record. TotalValue of zero means "compute from the
// product's current unit price".
type SaleInput struct {
	ProductID  uuid.UUID
	Quantity   int
	TotalValue float64
	Date       time.Time
}

type SaleService interface {
	RecordSales(ctx context.Context, profileID, userID uuid.UUID, inputs []SaleInput) ([]*models.Sale, error)
	List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sale, error)
}

type saleService struct {
	saleRepo    repositories.SaleRepository
	productRepo repositories.ProductRepository
	cacheSvc    caching.CacheService
}

func NewSaleService(saleRepo repositories.SaleRepository, productRepo repositories.ProductRepository, cacheSvc caching.CacheService) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		cacheSvc:    cacheSvc,
	}
}

// RecordSales inserts the sale rows and decrements each product's stock,
// floored at zero. Items are processed sequentially with no atomicity across
// them; a failure returns the sales persisted so far alongside the error.
func (s *saleService) RecordSales(ctx context.Context, profileID, userID uuid.UUID, inputs []SaleInput) ([]*models.Sale, error) {
	var recorded []*models.Sale

	for i, input := range inputs {
		if err := common.ValidatePositiveInteger(input.Quantity, "quantity", 1000000); err != nil {
			return recorded, fmt.Errorf("sale %d: %w", i+1, err)
		}

		product, err := s.productRepo.GetByID(ctx, profileID, input.ProductID)
		if err != nil {
			return recorded, fmt.Errorf("sale %d: product lookup failed: %w", i+1, err)
		}

		totalValue := input.TotalValue
		if totalValue == 0 {
			totalValue = float64(input.Quantity) * product.UnitPrice
		}
		saleDate := input.Date
		if saleDate.IsZero() {
			saleDate = time.Now()
		}

		sale := &models.Sale{
			ID:         uuid.New(),
			UserID:     userID,
			ProfileID:  profileID,
			ProductID:  input.ProductID,
			Quantity:   input.Quantity,
			TotalValue: totalValue,
			SaleDate:   saleDate,
		}

		if err := s.saleRepo.Create(ctx, sale); err != nil {
			return recorded, fmt.Errorf("sale %d: %w", i+1, err)
		}
		recorded = append(recorded, sale)

		if _, err := s.productRepo.DecrementStockFloored(ctx, profileID, input.ProductID, input.Quantity); err != nil {
			return recorded, fmt.Errorf("sale %d: stock update failed: %w", i+1, err)
		}
	}

	if len(recorded) > 0 {
		if err := s.cacheSvc.InvalidateProfileCache(ctx, profileID); err != nil {
			log.Printf("Failed to invalidate cache for profile %s: %v", profileID.String(), err)
		}
	}
	return recorded, nil
}

func (s *saleService) List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	return s.saleRepo.List(ctx, profileID, limit, offset)
}
