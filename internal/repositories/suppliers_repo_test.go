package repositories

import (
	"context"
	"testing"
	"time"

	"bodegamart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SupplierRepoTestSuite struct {
	suite.Suite
	mock       pgxmock.PgxPoolIface
	repo       SupplierRepository
	profileID  uuid.UUID
	userID     uuid.UUID
	supplierID uuid.UUID
	context    context.Context
}

func (suite *SupplierRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSupplierRepository(mock)
	suite.profileID = uuid.New()
	suite.userID = uuid.New()
	suite.supplierID = uuid.New()
	suite.context = context.Background()
}

func (suite *SupplierRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestSupplierRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierRepoTestSuite))
}

func (suite *SupplierRepoTestSuite) TestCreate_Success() {
	supplier := &models.Supplier{
		ID:        suite.supplierID,
		UserID:    suite.userID,
		ProfileID: suite.profileID,
		Name:      "Fresh Farms Co",
		Contact:   "Maria Lopez",
		Phone:     stringPtr("+34600111222"),
	}

	suite.mock.ExpectExec(`
			INSERT INTO suppliers \(id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at\)
			VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, NOW\(\), NOW\(\)\)
		`).WithArgs(supplier.ID, supplier.UserID, supplier.ProfileID, supplier.Name, supplier.Contact, supplier.Phone, supplier.Email, supplier.Address).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, supplier)
	assert.NoError(suite.T(), err)
}

func (suite *SupplierRepoTestSuite) TestGetByName_Success() {
	suite.mock.ExpectQuery(`
			SELECT id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at
			FROM suppliers
			WHERE profile_id = \$1 AND name = \$2
		`).WithArgs(suite.profileID, models.DefaultSupplierName).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "profile_id", "name", "contact", "phone", "email", "address", "created_at", "updated_at"}).
			AddRow(suite.supplierID, suite.userID, suite.profileID, models.DefaultSupplierName, "admin", stringPtr("+34600111222"), nil, nil, time.Now(), time.Now()))

	result, err := suite.repo.GetByName(suite.context, suite.profileID, models.DefaultSupplierName)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultSupplierName, result.Name)
	assert.Equal(suite.T(), "+34600111222", *result.Phone)
}

func (suite *SupplierRepoTestSuite) TestGetByName_NotFound() {
	suite.mock.ExpectQuery(`
			SELECT id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at
			FROM suppliers
			WHERE profile_id = \$1 AND name = \$2
		`).WithArgs(suite.profileID, "missing").
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByName(suite.context, suite.profileID, "missing")
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), result)
}

func (suite *SupplierRepoTestSuite) TestUpdate_Success() {
	supplier := &models.Supplier{
		ID:        suite.supplierID,
		ProfileID: suite.profileID,
		Name:      "Fresh Farms Co",
		Contact:   "Maria Lopez",
		Email:     stringPtr("maria@freshfarms.example"),
	}

	suite.mock.ExpectExec(`
			UPDATE suppliers
			SET name = \$1, contact = \$2, phone = \$3, email = \$4, address = \$5, updated_at = NOW\(\)
			WHERE profile_id = \$6 AND id = \$7
		`).WithArgs(supplier.Name, supplier.Contact, supplier.Phone, supplier.Email, supplier.Address, supplier.ProfileID, supplier.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, supplier)
	assert.NoError(suite.T(), err)
}

func (suite *SupplierRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM suppliers WHERE profile_id = \$1 AND id = \$2`).
		WithArgs(suite.profileID, suite.supplierID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.profileID, suite.supplierID)
	assert.NoError(suite.T(), err)
}

func (suite *SupplierRepoTestSuite) TestList_ScopedToProfile() {
	rows := pgxmock.NewRows([]string{"id", "user_id", "profile_id", "name", "contact", "phone", "email", "address", "created_at", "updated_at"}).
		AddRow(uuid.New(), suite.userID, suite.profileID, "default", "admin", nil, nil, nil, time.Now(), time.Now()).
		AddRow(uuid.New(), suite.userID, suite.profileID, "Fresh Farms Co", "Maria Lopez", nil, nil, nil, time.Now(), time.Now())

	suite.mock.ExpectQuery(`
			SELECT id, user_id, profile_id, name, contact, phone, email, address, created_at, updated_at
			FROM suppliers
			WHERE profile_id = \$1
			ORDER BY created_at DESC
		`).WithArgs(suite.profileID).
		WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, suite.profileID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), suite.profileID, result[0].ProfileID)
	assert.Equal(suite.T(), suite.profileID, result[1].ProfileID)
}

// Helper function to create string pointer
func stringPtr(s string) *string {
	return &s
}
