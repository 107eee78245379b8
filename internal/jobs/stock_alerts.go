package jobs

import (
	"context"
	"log"

	"bodegamart/internal/repositories"

	"github.com/google/uuid"
)

type StockAlertService struct {
	productRepo repositories.ProductRepository
}

type StockAlert struct {
	ProfileID    uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	CurrentStock int
	MinStock     int
}

func NewStockAlertService(productRepo repositories.ProductRepository) *StockAlertService {
	return &StockAlertService{productRepo: productRepo}
}

// CheckLowStock scans a profile's products for stock at or below each
// product's own minimum. Out-of-stock products are included.
func (a *StockAlertService) CheckLowStock(ctx context.Context, profileID uuid.UUID) ([]StockAlert, error) {
	products, err := a.productRepo.List(ctx, profileID)
	if err != nil {
		log.Printf("Failed to list products for profile %s: %v", profileID.String(), err)
		return nil, err
	}

	var alerts []StockAlert
	for _, product := range products {
		if product.CurrentStock <= product.MinStock {
			alerts = append(alerts, StockAlert{
				ProfileID:    profileID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				CurrentStock: product.CurrentStock,
				MinStock:     product.MinStock,
			})
		}
	}

	return alerts, nil
}

func (a *StockAlertService) LogLowStockAlerts(ctx context.Context, alerts []StockAlert) {
	if len(alerts) == 0 {
		return
	}

	log.Printf("Low stock alerts for profile %s:", alerts[0].ProfileID.String())
	for _, alert := range alerts {
		log.Printf("- Product '%s' has %d units (minimum: %d)",
			alert.ProductName,
			alert.CurrentStock,
			alert.MinStock,
		)
	}
}
