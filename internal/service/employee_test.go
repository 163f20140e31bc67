package service_test

import (
	"testing"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockEmployeeRepositoryInterface
	service  *service.EmployeeService
}

// SetupTest sets up the test suite
func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewEmployeeService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateDefaults tests that role and active default when omitted
func (suite *EmployeeServiceTestSuite) TestCreateDefaults() {
	orgID := uuid.New()
	req := &service.CreateEmployeeRequest{
		OrganizationID: orgID,
		FullName:       "Jane Doe",
		Email:          "  Jane.Doe@Example.COM ",
	}

	suite.mockRepo.EXPECT().GetByEmail(orgID, req.Email).Return(nil, gorm.ErrRecordNotFound)

	var created *models.Employee
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Employee) error {
		created = e
		return nil
	})

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane.doe@example.com", created.Email)
	assert.Equal(suite.T(), models.EmployeeRoleEmployee, created.Role)
	assert.True(suite.T(), created.IsActive)
	assert.Equal(suite.T(), models.EmployeeSourceManual, created.Source)
	assert.Equal(suite.T(), "employee", resp.Role)
}

// TestCreateDuplicateEmail tests creating an employee with a taken email
func (suite *EmployeeServiceTestSuite) TestCreateDuplicateEmail() {
	orgID := uuid.New()
	req := &service.CreateEmployeeRequest{
		OrganizationID: orgID,
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
	}

	suite.mockRepo.EXPECT().GetByEmail(orgID, "jane@example.com").Return(&models.Employee{}, nil)

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeExists)
}

// TestCreateUnknownRole tests creating an employee with an invalid role
func (suite *EmployeeServiceTestSuite) TestCreateUnknownRole() {
	orgID := uuid.New()
	role := "wizard"
	req := &service.CreateEmployeeRequest{
		OrganizationID: orgID,
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		Role:           &role,
	}

	suite.mockRepo.EXPECT().GetByEmail(orgID, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateEmailTaken tests updating an employee to an email owned by another
func (suite *EmployeeServiceTestSuite) TestUpdateEmailTaken() {
	orgID := uuid.New()
	id := uuid.New()
	employee := &models.Employee{OrganizationID: orgID, Email: "old@example.com"}
	employee.ID = id

	other := &models.Employee{OrganizationID: orgID, Email: "new@example.com"}
	other.ID = uuid.New()

	email := "new@example.com"
	suite.mockRepo.EXPECT().GetByID(id).Return(employee, nil)
	suite.mockRepo.EXPECT().GetByEmail(orgID, email).Return(other, nil)

	resp, err := suite.service.Update(id, &service.UpdateEmployeeRequest{Email: &email})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeExists)
}

// TestUpdatePartial tests that only the provided fields change
func (suite *EmployeeServiceTestSuite) TestUpdatePartial() {
	id := uuid.New()
	employee := &models.Employee{
		OrganizationID: uuid.New(),
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		Department:     "Finance",
		Role:           models.EmployeeRoleEmployee,
		IsActive:       true,
	}
	employee.ID = id

	department := "Legal"
	suite.mockRepo.EXPECT().GetByID(id).Return(employee, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.Update(id, &service.UpdateEmployeeRequest{Department: &department})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Legal", resp.Department)
	assert.Equal(suite.T(), "Jane Doe", resp.FullName)
	assert.True(suite.T(), resp.IsActive)
}

// TestGetByIDNotFound tests retrieving a missing employee
func (suite *EmployeeServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

// TestEmployeeServiceTestSuite runs the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
