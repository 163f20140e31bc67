package repository

import (
	"testing"

	"docuflow-backend/internal/database/models"
	"docuflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrganization persists a parent organization for employee rows
func (suite *EmployeeRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(org))
	return org
}

// TestCreate tests creating a new employee
func (suite *EmployeeRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	employee := suite.factories.Employee.WithOrganization(org.ID)

	err := suite.repo.Create(employee)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, employee.ID)
	suite.NotZero(employee.CreatedAt)
}

// TestCreateDuplicateEmail tests the per-organization email uniqueness
func (suite *EmployeeRepositoryTestSuite) TestCreateDuplicateEmail() {
	org := suite.createOrganization()

	first := suite.factories.Employee.WithOrganization(org.ID)
	first.Email = "dup@test.com"
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Employee.WithOrganization(org.ID)
	second.Email = "dup@test.com"

	err := suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestDuplicateEmailAcrossOrganizations tests that the same email is allowed
// in different organizations
func (suite *EmployeeRepositoryTestSuite) TestDuplicateEmailAcrossOrganizations() {
	org1 := suite.createOrganization()
	org2 := suite.createOrganization()

	first := suite.factories.Employee.WithOrganization(org1.ID)
	first.Email = "shared@test.com"
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Employee.WithOrganization(org2.ID)
	second.Email = "shared@test.com"
	suite.NoError(suite.repo.Create(second))
}

// TestReAddAfterSoftDelete tests that a soft-deleted employee's email can be
// reused within the organization
func (suite *EmployeeRepositoryTestSuite) TestReAddAfterSoftDelete() {
	org := suite.createOrganization()

	first := suite.factories.Employee.WithOrganization(org.ID)
	first.Email = "rejoin@test.com"
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Delete(first.ID))

	second := suite.factories.Employee.WithOrganization(org.ID)
	second.Email = "rejoin@test.com"

	suite.NoError(suite.repo.Create(second))
}

// TestGetByEmail tests case-insensitive email lookup
func (suite *EmployeeRepositoryTestSuite) TestGetByEmail() {
	org := suite.createOrganization()
	employee := suite.factories.Employee.WithOrganization(org.ID)
	employee.Email = "casey@test.com"
	suite.NoError(suite.repo.Create(employee))

	found, err := suite.repo.GetByEmail(org.ID, "Casey@Test.com")

	suite.NoError(err)
	suite.Equal(employee.ID, found.ID)
}

// TestGetByEmailNotFound tests email lookup for an unknown sender
func (suite *EmployeeRepositoryTestSuite) TestGetByEmailNotFound() {
	org := suite.createOrganization()

	found, err := suite.repo.GetByEmail(org.ID, "ghost@test.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestGetByOrganizationSearch tests substring search over name and email
func (suite *EmployeeRepositoryTestSuite) TestGetByOrganizationSearch() {
	org := suite.createOrganization()

	alice := suite.factories.Employee.WithOrganization(org.ID)
	alice.FullName = "Alice Johnson"
	alice.Email = "alice@test.com"
	suite.NoError(suite.repo.Create(alice))

	bob := suite.factories.Employee.WithOrganization(org.ID)
	bob.FullName = "Bob Smith"
	bob.Email = "bob@test.com"
	suite.NoError(suite.repo.Create(bob))

	employees, total, err := suite.repo.GetByOrganization(org.ID, EmployeeFilter{Search: "john"}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(employees, 1)
	suite.Equal("Alice Johnson", employees[0].FullName)
}

// TestGetEmailSet tests the lowercased email set used by imports
func (suite *EmployeeRepositoryTestSuite) TestGetEmailSet() {
	org := suite.createOrganization()

	employee := suite.factories.Employee.WithOrganization(org.ID)
	employee.Email = "Mixed.Case@Test.com"
	suite.NoError(suite.repo.Create(employee))

	set, err := suite.repo.GetEmailSet(org.ID)

	suite.NoError(err)
	suite.True(set["mixed.case@test.com"])
	suite.Len(set, 1)
}

// TestCreateBatch tests inserting imported employees in one shot
func (suite *EmployeeRepositoryTestSuite) TestCreateBatch() {
	org := suite.createOrganization()

	batch := []models.Employee{
		*suite.factories.Employee.WithOrganization(org.ID),
		*suite.factories.Employee.WithOrganization(org.ID),
		*suite.factories.Employee.WithOrganization(org.ID),
	}

	suite.NoError(suite.repo.CreateBatch(batch))

	total, err := suite.repo.CountByOrganization(org.ID)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

// TestCreateBatchEmpty tests that an empty batch is a no-op
func (suite *EmployeeRepositoryTestSuite) TestCreateBatchEmpty() {
	suite.NoError(suite.repo.CreateBatch(nil))
}

// TestEmployeeRepositoryTestSuite runs the test suite
func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
