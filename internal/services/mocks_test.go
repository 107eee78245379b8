package services

import (
	"context"
	"time"

	"bodegamart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, profileID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	args := m.Called(ctx, profileID, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) IncrementStock(ctx context.Context, profileID, id uuid.UUID, quantity int) (int, error) {
	args := m.Called(ctx, profileID, id, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) DecrementStockFloored(ctx context.Context, profileID, id uuid.UUID, quantity int) (int, error) {
	args := m.Called(ctx, profileID, id, quantity)
	return args.Int(0), args.Error(1)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.Supplier, error) {
	args := m.Called(ctx, profileID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByName(ctx context.Context, profileID uuid.UUID, name string) (*models.Supplier, error) {
	args := m.Called(ctx, profileID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	args := m.Called(ctx, profileID, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) List(ctx context.Context, profileID uuid.UUID) ([]*models.Supplier, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Supplier), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockProfileRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListAll(ctx context.Context) ([]*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	args := m.Called(ctx, profileID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListByDate(ctx context.Context, profileID uuid.UUID, day time.Time) ([]*models.Sale, error) {
	args := m.Called(ctx, profileID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Sale), args.Error(1)
}

type MockReplenishmentRepository struct {
	mock.Mock
}

func (m *MockReplenishmentRepository) Create(ctx context.Context, request *models.ReplenishmentRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockReplenishmentRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.ReplenishmentRequest, error) {
	args := m.Called(ctx, profileID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReplenishmentRequest), args.Error(1)
}

func (m *MockReplenishmentRepository) List(ctx context.Context, profileID uuid.UUID) ([]*models.ReplenishmentRequest, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReplenishmentRequest), args.Error(1)
}

func (m *MockReplenishmentRepository) UpdateStatus(ctx context.Context, profileID, id uuid.UUID, status string, approvedAt, completedAt *time.Time, notes *string) error {
	args := m.Called(ctx, profileID, id, status, approvedAt, completedAt, notes)
	return args.Error(0)
}

func (m *MockReplenishmentRepository) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	args := m.Called(ctx, profileID, id)
	return args.Error(0)
}

type MockDayClosingRepository struct {
	mock.Mock
}

func (m *MockDayClosingRepository) Create(ctx context.Context, closing *models.DayClosing) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

func (m *MockDayClosingRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*models.DayClosing, error) {
	args := m.Called(ctx, profileID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DayClosing), args.Error(1)
}

func (m *MockDayClosingRepository) List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.DayClosing, error) {
	args := m.Called(ctx, profileID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DayClosing), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetProduct(ctx context.Context, profileID, productID uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, profileID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCacheService) SetProduct(ctx context.Context, profileID uuid.UUID, product *models.Product, ttl time.Duration) error {
	args := m.Called(ctx, profileID, product, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteProduct(ctx context.Context, profileID, productID uuid.UUID) error {
	args := m.Called(ctx, profileID, productID)
	return args.Error(0)
}

func (m *MockCacheService) GetProductList(ctx context.Context, profileID uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockCacheService) SetProductList(ctx context.Context, profileID uuid.UUID, products []*models.Product, ttl time.Duration) error {
	args := m.Called(ctx, profileID, products, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateProfileCache(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateAllCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockWebhookService) NotifyReplenishmentCreated(ctx context.Context, event *ReplenishmentCreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
