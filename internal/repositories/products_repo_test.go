package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"bodegamart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	repo      ProductRepository
	profileID uuid.UUID
	userID    uuid.UUID
	productID uuid.UUID
	context   context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewProductRepository(mock)
	suite.profileID = uuid.New()
	suite.userID = uuid.New()
	suite.productID = uuid.New()
	suite.context = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func (suite *ProductRepoTestSuite) productRow(product *models.Product) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "profile_id", "name", "category", "current_stock", "min_stock", "max_stock", "unit_price", "supplier_id", "description", "sku", "unit", "created_at", "updated_at"}).
		AddRow(product.ID, product.UserID, product.ProfileID, product.Name, product.Category,
			product.CurrentStock, product.MinStock, product.MaxStock, product.UnitPrice,
			product.SupplierID, product.Description, product.SKU, product.Unit,
			time.Now(), time.Now())
}

func (suite *ProductRepoTestSuite) TestCreate_Success() {
	product := &models.Product{
		ID:           suite.productID,
		UserID:       suite.userID,
		ProfileID:    suite.profileID,
		Name:         "Basmati Rice 5kg",
		Category:     "Grains",
		CurrentStock: 40,
		MinStock:     10,
		MaxStock:     100,
		UnitPrice:    12.50,
		Unit:         "bag",
	}

	suite.mock.ExpectExec(`
			INSERT INTO products \(id, user_id, profile_id, name, category, current_stock, min_stock, max_stock, unit_price, supplier_id, description, sku, unit, created_at, updated_at\)
			VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, \$9, \$10, \$11, \$12, \$13, NOW\(\), NOW\(\)\)
		`).WithArgs(product.ID, product.UserID, product.ProfileID, product.Name, product.Category,
		product.CurrentStock, product.MinStock, product.MaxStock, product.UnitPrice,
		product.SupplierID, product.Description, product.SKU, product.Unit).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, product)
	assert.NoError(suite.T(), err)
}

func (suite *ProductRepoTestSuite) TestGetByID_Success() {
	product := &models.Product{
		ID:           suite.productID,
		UserID:       suite.userID,
		ProfileID:    suite.profileID,
		Name:         "Sunflower Oil 1L",
		Category:     "Oils",
		CurrentStock: 25,
		MinStock:     5,
		MaxStock:     60,
		UnitPrice:    3.20,
		Unit:         "bottle",
	}

	suite.mock.ExpectQuery(`
			SELECT id, user_id, profile_id, name, category, current_stock, min_stock, max_stock, unit_price, supplier_id, description, sku, unit, created_at, updated_at
			FROM products
			WHERE profile_id = \$1 AND id = \$2
		`).WithArgs(suite.profileID, suite.productID).
		WillReturnRows(suite.productRow(product))

	result, err := suite.repo.GetByID(suite.context, suite.profileID, suite.productID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product.Name, result.Name)
	assert.Equal(suite.T(), product.CurrentStock, result.CurrentStock)
}

func (suite *ProductRepoTestSuite) TestGetByID_WrongProfile() {
	otherProfile := uuid.New()

	suite.mock.ExpectQuery(`
			SELECT id, user_id, profile_id, name, category, current_stock, min_stock, max_stock, unit_price, supplier_id, description, sku, unit, created_at, updated_at
			FROM products
			WHERE profile_id = \$1 AND id = \$2
		`).WithArgs(otherProfile, suite.productID).
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByID(suite.context, otherProfile, suite.productID)
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), result)
}

func (suite *ProductRepoTestSuite) TestIncrementStock_ReturnsNewLevel() {
	suite.mock.ExpectQuery(`
			UPDATE products
			SET current_stock = current_stock \+ \$1, updated_at = NOW\(\)
			WHERE profile_id = \$2 AND id = \$3
			RETURNING current_stock
		`).WithArgs(15, suite.profileID, suite.productID).
		WillReturnRows(pgxmock.NewRows([]string{"current_stock"}).AddRow(55))

	newStock, err := suite.repo.IncrementStock(suite.context, suite.profileID, suite.productID, 15)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 55, newStock)
}

func (suite *ProductRepoTestSuite) TestIncrementStock_ProductNotFound() {
	suite.mock.ExpectQuery(`
			UPDATE products
			SET current_stock = current_stock \+ \$1, updated_at = NOW\(\)
			WHERE profile_id = \$2 AND id = \$3
			RETURNING current_stock
		`).WithArgs(15, suite.profileID, suite.productID).
		WillReturnError(pgx.ErrNoRows)

	_, err := suite.repo.IncrementStock(suite.context, suite.profileID, suite.productID, 15)
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *ProductRepoTestSuite) TestDecrementStockFloored_NormalDecrement() {
	suite.mock.ExpectQuery(`
			UPDATE products
			SET current_stock = GREATEST\(current_stock - \$1, 0\), updated_at = NOW\(\)
			WHERE profile_id = \$2 AND id = \$3
			RETURNING current_stock
		`).WithArgs(10, suite.profileID, suite.productID).
		WillReturnRows(pgxmock.NewRows([]string{"current_stock"}).AddRow(30))

	newStock, err := suite.repo.DecrementStockFloored(suite.context, suite.profileID, suite.productID, 10)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 30, newStock)
}

func (suite *ProductRepoTestSuite) TestDecrementStockFloored_FloorsAtZero() {
	// Selling more than is on hand leaves stock at zero, never negative
	suite.mock.ExpectQuery(`
			UPDATE products
			SET current_stock = GREATEST\(current_stock - \$1, 0\), updated_at = NOW\(\)
			WHERE profile_id = \$2 AND id = \$3
			RETURNING current_stock
		`).WithArgs(500, suite.profileID, suite.productID).
		WillReturnRows(pgxmock.NewRows([]string{"current_stock"}).AddRow(0))

	newStock, err := suite.repo.DecrementStockFloored(suite.context, suite.profileID, suite.productID, 500)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, newStock)
}

func (suite *ProductRepoTestSuite) TestList_Success() {
	rows := pgxmock.NewRows([]string{"id", "user_id", "profile_id", "name", "category", "current_stock", "min_stock", "max_stock", "unit_price", "supplier_id", "description", "sku", "unit", "created_at", "updated_at"}).
		AddRow(uuid.New(), suite.userID, suite.profileID, "Salt 1kg", "Condiments", 50, 10, 100, 0.80, nil, nil, nil, "pack", time.Now(), time.Now()).
		AddRow(uuid.New(), suite.userID, suite.profileID, "Sugar 1kg", "Condiments", 35, 10, 100, 1.10, nil, nil, nil, "pack", time.Now(), time.Now())

	suite.mock.ExpectQuery(`
			SELECT id, user_id, profile_id, name, category, current_stock, min_stock, max_stock, unit_price, supplier_id, description, sku, unit, created_at, updated_at
			FROM products
			WHERE profile_id = \$1
			ORDER BY created_at DESC
		`).WithArgs(suite.profileID).
		WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, suite.profileID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), "Salt 1kg", result[0].Name)
	assert.Equal(suite.T(), "Sugar 1kg", result[1].Name)
}

func (suite *ProductRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM products WHERE profile_id = \$1 AND id = \$2`).
		WithArgs(suite.profileID, suite.productID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.profileID, suite.productID)
	assert.NoError(suite.T(), err)
}

func (suite *ProductRepoTestSuite) TestUpdate_DatabaseError() {
	product := &models.Product{
		ID:        suite.productID,
		ProfileID: suite.profileID,
		Name:      "Broken",
		Unit:      "pack",
	}

	suite.mock.ExpectExec(`
			UPDATE products
			SET name = \$1, category = \$2, current_stock = \$3, min_stock = \$4, max_stock = \$5,
			    unit_price = \$6, supplier_id = \$7, description = \$8, sku = \$9, unit = \$10, updated_at = NOW\(\)
			WHERE profile_id = \$11 AND id = \$12
		`).WithArgs(product.Name, product.Category, product.CurrentStock, product.MinStock, product.MaxStock,
		product.UnitPrice, product.SupplierID, product.Description, product.SKU, product.Unit,
		product.ProfileID, product.ID).
		WillReturnError(errors.New("database connection failed"))

	err := suite.repo.Update(suite.context, product)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}
