package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"bodegamart/internal/config"
	"bodegamart/internal/models"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
)

type ClosingService interface {
	Record(ctx context.Context, profileID, userID uuid.UUID, date time.Time, totalSales int, totalValue float64) (*models.DayClosing, error)
	List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.DayClosing, error)
	Export(ctx context.Context, profileID, id uuid.UUID) (string, error)
}

type closingService struct {
	closingRepo repositories.DayClosingRepository
	saleRepo    repositories.SaleRepository
	minioSvc    MinioService
	exportCfg   config.ExportConfig
}

func NewClosingService(closingRepo repositories.DayClosingRepository, saleRepo repositories.SaleRepository, minioSvc MinioService, exportCfg config.ExportConfig) ClosingService {
	return &closingService{
		closingRepo: closingRepo,
		saleRepo:    saleRepo,
		minioSvc:    minioSvc,
		exportCfg:   exportCfg,
	}
}

// Record persists the daily summary. When both totals are zero they are
// computed from the day's recorded sales.
func (s *closingService) Record(ctx context.Context, profileID, userID uuid.UUID, date time.Time, totalSales int, totalValue float64) (*models.DayClosing, error) {
	if date.IsZero() {
		date = time.Now()
	}

	if totalSales == 0 && totalValue == 0 {
		sales, err := s.saleRepo.ListByDate(ctx, profileID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to load sales for closing: %w", err)
		}
		for _, sale := range sales {
			totalSales += sale.Quantity
			totalValue += sale.TotalValue
		}
	}

	closing := &models.DayClosing{
		ID:         uuid.New(),
		ProfileID:  profileID,
		Date:       date,
		TotalSales: totalSales,
		TotalValue: totalValue,
		ClosedBy:   userID,
	}

	if err := s.closingRepo.Create(ctx, closing); err != nil {
		return nil, err
	}
	return closing, nil
}

func (s *closingService) List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.DayClosing, error) {
	return s.closingRepo.List(ctx, profileID, limit, offset)
}

// Export builds a CSV of the closing day's sales, uploads it to object
// storage and returns a presigned download URL.
func (s *closingService) Export(ctx context.Context, profileID, id uuid.UUID) (string, error) {
	closing, err := s.closingRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return "", err
	}

	sales, err := s.saleRepo.ListByDate(ctx, profileID, closing.Date)
	if err != nil {
		return "", fmt.Errorf("failed to load sales for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"sale_id", "product_id", "quantity", "total_value", "sale_date"}); err != nil {
		return "", err
	}
	for _, sale := range sales {
		record := []string{
			sale.ID.String(),
			sale.ProductID.String(),
			strconv.Itoa(sale.Quantity),
			strconv.FormatFloat(sale.TotalValue, 'f', 2, 64),
			sale.SaleDate.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	if err := w.Write([]string{"total", "", strconv.Itoa(closing.TotalSales), strconv.FormatFloat(closing.TotalValue, 'f', 2, 64), closing.Date.Format("2006-01-02")}); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	if err := s.minioSvc.EnsureBucketExists(ctx, s.exportCfg.Bucket); err != nil {
		return "", fmt.Errorf("failed to ensure export bucket: %w", err)
	}

	objectName := fmt.Sprintf("%s/%s.csv", profileID.String(), closing.Date.Format("2006-01-02"))
	if err := s.minioSvc.UploadObject(ctx, s.exportCfg.Bucket, objectName, "text/csv", &buf, int64(buf.Len())); err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	expiry := time.Duration(s.exportCfg.URLExpiryMinutes) * time.Minute
	url, err := s.minioSvc.GetPresignedURL(ctx, s.exportCfg.Bucket, objectName, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign export URL: %w", err)
	}
	return url, nil
}
