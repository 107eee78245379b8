package services

import (
	"context"
	"fmt"
	"time"

	"bodegamart/internal/models"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
)

type AlertService interface {
	Alerts(ctx context.Context, profileID uuid.UUID) ([]models.StockAlert, error)
}

type alertService struct {
	productRepo repositories.ProductRepository
}

func NewAlertService(productRepo repositories.ProductRepository) AlertService {
	return &alertService{productRepo: productRepo}
}

// Alerts derives the stock alerts for a profile from its product collection.
// Alerts are never persisted; each call recomputes them.
func (s *alertService) Alerts(ctx context.Context, profileID uuid.UUID) ([]models.StockAlert, error) {
	products, err := s.productRepo.List(ctx, profileID)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.StockAlert, 0)
	now := time.Now()
	for _, product := range products {
		var alertType string
		switch {
		case product.CurrentStock <= 0:
			alertType = models.AlertTypeOutOfStock
		case product.CurrentStock <= product.MinStock:
			alertType = models.AlertTypeLowStock
		default:
			continue
		}

		alerts = append(alerts, models.StockAlert{
			ID:        fmt.Sprintf("alert-%s", product.ID.String()),
			ProductID: product.ID,
			Product:   product,
			AlertType: alertType,
			IsActive:  true,
			CreatedAt: now,
		})
	}
	return alerts, nil
}
