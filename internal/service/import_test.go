package service_test

import (
	"strings"
	"testing"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ImportServiceTestSuite defines the test suite for ImportService
type ImportServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockEmpRepo  *mocks.MockEmployeeRepositoryInterface
	mockOrgRepo  *mocks.MockOrganizationRepositoryInterface
	mockActivity *mocks.MockActivityLogRepositoryInterface
	service      *service.ImportService
}

// SetupTest sets up the test suite
func (suite *ImportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockActivity = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)

	activity := service.NewActivityService(suite.mockActivity, logger.New())
	suite.service = service.NewImportService(suite.mockEmpRepo, suite.mockOrgRepo, activity)
}

// TearDownTest cleans up after each test
func (suite *ImportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

const importCSV = `full name,email,department,role
Jane Doe,jane@acme.com,Finance,manager
John Smith,john@acme.com,Legal,employee
Bad Row,not-an-email,Legal,employee
Jane Again,JANE@acme.com,Finance,employee
`

// TestPreview tests validating a CSV upload without writing
func (suite *ImportServiceTestSuite) TestPreview() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	suite.mockEmpRepo.EXPECT().GetEmailSet(orgID).Return(map[string]bool{}, nil)

	result, err := suite.service.Preview(orgID, "staff.csv", strings.NewReader(importCSV))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, result.Summary.Total)
	assert.Equal(suite.T(), 2, result.Summary.Importable)
	assert.Equal(suite.T(), 1, result.Summary.Invalid)
	// The repeated address inside the same file counts as a duplicate
	assert.Equal(suite.T(), 1, result.Summary.Duplicates)
}

// TestPreviewExistingEmails tests that already-known addresses are duplicates
func (suite *ImportServiceTestSuite) TestPreviewExistingEmails() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	suite.mockEmpRepo.EXPECT().GetEmailSet(orgID).Return(map[string]bool{"jane@acme.com": true}, nil)

	result, err := suite.service.Preview(orgID, "staff.csv", strings.NewReader(importCSV))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Summary.Importable)
	assert.Equal(suite.T(), 2, result.Summary.Duplicates)
}

// TestPreviewOrganizationNotFound tests importing into a missing organization
func (suite *ImportServiceTestSuite) TestPreviewOrganizationNotFound() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.service.Preview(orgID, "staff.csv", strings.NewReader(importCSV))

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestCommit tests inserting the importable rows and skipping the rest
func (suite *ImportServiceTestSuite) TestCommit() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	suite.mockEmpRepo.EXPECT().GetEmailSet(orgID).Return(map[string]bool{}, nil)

	var batch []models.Employee
	suite.mockEmpRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(employees []models.Employee) error {
		batch = employees
		return nil
	})
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Commit(orgID, "admin@acme.com", "staff.csv", strings.NewReader(importCSV))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Imported)
	assert.Equal(suite.T(), 2, resp.Skipped)
	assert.Len(suite.T(), batch, 2)
	assert.Equal(suite.T(), "jane@acme.com", batch[0].Email)
	assert.Equal(suite.T(), models.EmployeeSourceImport, batch[0].Source)
	assert.True(suite.T(), batch[0].IsActive)
}

// TestCommitUnsupportedFormat tests rejecting an unknown file extension
func (suite *ImportServiceTestSuite) TestCommitUnsupportedFormat() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)

	resp, err := suite.service.Commit(orgID, "admin@acme.com", "staff.pdf", strings.NewReader("junk"))

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnsupportedImportFormat)
}

// TestImportServiceTestSuite runs the test suite
func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
