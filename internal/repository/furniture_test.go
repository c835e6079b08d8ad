package repository

import (
	"testing"

	"furnishing-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FurnitureRepositoryTestSuite tests the FurnitureRepository
type FurnitureRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FurnitureRepository
	records       *testutils.FurnitureRecordFactory
}

// SetupSuite runs before all tests in the suite
func (suite *FurnitureRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewFurnitureRepository(suite.baseTestSuite.DB)
	suite.records = testutils.NewFurnitureRecordFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *FurnitureRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FurnitureRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FurnitureRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new catalog record
func (suite *FurnitureRepositoryTestSuite) TestCreate() {
	record := suite.records.Create()

	err := suite.repo.Create(record)

	suite.NoError(err)
	suite.NotZero(record.ID)
	suite.NotZero(record.CreatedAt)
}

// TestGetByID tests retrieving a catalog record by ID
func (suite *FurnitureRepositoryTestSuite) TestGetByID() {
	record := suite.records.Create()
	suite.NoError(suite.repo.Create(record))

	retrieved, err := suite.repo.GetByID(record.ID)

	suite.NoError(err)
	suite.Equal(record.Name, retrieved.Name)
	suite.Equal(record.Price, retrieved.Price)
}

// TestGetByIDNotFound tests retrieving a non-existent record
func (suite *FurnitureRepositoryTestSuite) TestGetByIDNotFound() {
	record, err := suite.repo.GetByID(99999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(record)
}

// TestGetAll tests pagination over catalog records
func (suite *FurnitureRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.records.Create()))
	}

	records, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(records, 2)

	rest, _, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(rest, 1)
}

// TestUpdate tests updating a catalog record
func (suite *FurnitureRepositoryTestSuite) TestUpdate() {
	record := suite.records.Create()
	suite.NoError(suite.repo.Create(record))

	record.Quantity = 10
	record.Location = "Warehouse B"
	suite.NoError(suite.repo.Update(record))

	updated, err := suite.repo.GetByID(record.ID)
	suite.NoError(err)
	suite.Equal(10, updated.Quantity)
	suite.Equal("Warehouse B", updated.Location)
}

// TestDelete tests deleting a catalog record
func (suite *FurnitureRepositoryTestSuite) TestDelete() {
	record := suite.records.Create()
	suite.NoError(suite.repo.Create(record))

	suite.NoError(suite.repo.Delete(record.ID))

	_, err := suite.repo.GetByID(record.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestFurnitureRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FurnitureRepositoryTestSuite))
}
