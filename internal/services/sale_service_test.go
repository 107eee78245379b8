package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bodegamart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSales    *MockSaleRepository
	mockProducts *MockProductRepository
	mockCache    *MockCacheService
	service      SaleService
	profileID    uuid.UUID
	userID       uuid.UUID
	productID    uuid.UUID
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSales = &MockSaleRepository{}
	suite.mockProducts = &MockProductRepository{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewSaleService(suite.mockSales, suite.mockProducts, suite.mockCache)
	suite.profileID = uuid.New()
	suite.userID = uuid.New()
	suite.productID = uuid.New()
}

func (suite *SaleServiceTestSuite) TearDownTest() {
	suite.mockSales.AssertExpectations(suite.T())
	suite.mockProducts.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func (suite *SaleServiceTestSuite) TestRecordSales_ComputesTotalFromUnitPrice() {
	ctx := context.Background()
	product := &models.Product{ID: suite.productID, ProfileID: suite.profileID, Name: "Olive Oil 1L", UnitPrice: 4.50, CurrentStock: 30, Unit: "bottle"}

	suite.mockProducts.On("GetByID", ctx, suite.profileID, suite.productID).Return(product, nil)
	suite.mockSales.On("Create", ctx, mock.AnythingOfType("*models.Sale")).Return(nil).Run(func(args mock.Arguments) {
		sale := args.Get(1).(*models.Sale)
		assert.Equal(suite.T(), 13.50, sale.TotalValue)
		assert.Equal(suite.T(), suite.userID, sale.UserID)
		assert.Equal(suite.T(), suite.profileID, sale.ProfileID)
		assert.False(suite.T(), sale.SaleDate.IsZero())
	})
	suite.mockProducts.On("DecrementStockFloored", ctx, suite.profileID, suite.productID, 3).Return(27, nil)
	suite.mockCache.On("InvalidateProfileCache", ctx, suite.profileID).Return(nil)

	recorded, err := suite.service.RecordSales(ctx, suite.profileID, suite.userID, []SaleInput{
		{ProductID: suite.productID, Quantity: 3},
	})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), recorded, 1)
}

func (suite *SaleServiceTestSuite) TestRecordSales_ExplicitTotalKept() {
	ctx := context.Background()
	product := &models.Product{ID: suite.productID, ProfileID: suite.profileID, Name: "Olive Oil 1L", UnitPrice: 4.50, CurrentStock: 30, Unit: "bottle"}
	saleDate := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	suite.mockProducts.On("GetByID", ctx, suite.profileID, suite.productID).Return(product, nil)
	suite.mockSales.On("Create", ctx, mock.AnythingOfType("*models.Sale")).Return(nil).Run(func(args mock.Arguments) {
		sale := args.Get(1).(*models.Sale)
		assert.Equal(suite.T(), 10.00, sale.TotalValue)
		assert.Equal(suite.T(), saleDate, sale.SaleDate)
	})
	suite.mockProducts.On("DecrementStockFloored", ctx, suite.profileID, suite.productID, 2).Return(28, nil)
	suite.mockCache.On("InvalidateProfileCache", ctx, suite.profileID).Return(nil)

	recorded, err := suite.service.RecordSales(ctx, suite.profileID, suite.userID, []SaleInput{
		{ProductID: suite.productID, Quantity: 2, TotalValue: 10.00, Date: saleDate},
	})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), recorded, 1)
}

func (suite *SaleServiceTestSuite) TestRecordSales_PartialFailureKeepsEarlierSales() {
	ctx := context.Background()
	productID2 := uuid.New()
	product := &models.Product{ID: suite.productID, ProfileID: suite.profileID, Name: "Olive Oil 1L", UnitPrice: 4.50, CurrentStock: 30, Unit: "bottle"}

	suite.mockProducts.On("GetByID", ctx, suite.profileID, suite.productID).Return(product, nil)
	suite.mockSales.On("Create", ctx, mock.AnythingOfType("*models.Sale")).Return(nil).Once()
	suite.mockProducts.On("DecrementStockFloored", ctx, suite.profileID, suite.productID, 1).Return(29, nil)
	suite.mockProducts.On("GetByID", ctx, suite.profileID, productID2).Return((*models.Product)(nil), errors.New("product not found"))

	recorded, err := suite.service.RecordSales(ctx, suite.profileID, suite.userID, []SaleInput{
		{ProductID: suite.productID, Quantity: 1},
		{ProductID: productID2, Quantity: 2},
	})
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "sale 2")
	assert.Len(suite.T(), recorded, 1)
}

func (suite *SaleServiceTestSuite) TestRecordSales_InvalidQuantity() {
	ctx := context.Background()

	recorded, err := suite.service.RecordSales(ctx, suite.profileID, suite.userID, []SaleInput{
		{ProductID: suite.productID, Quantity: -1},
	})
	assert.Error(suite.T(), err)
	assert.Empty(suite.T(), recorded)
	suite.mockSales.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestList_Passthrough() {
	ctx := context.Background()
	expected := []*models.Sale{
		{ID: uuid.New(), ProfileID: suite.profileID, ProductID: suite.productID, Quantity: 2, TotalValue: 9.00},
	}

	suite.mockSales.On("List", ctx, suite.profileID, 50, 0).Return(expected, nil)

	sales, err := suite.service.List(ctx, suite.profileID, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, sales)
}
