package service_test

import (
	"encoding/json"
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

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockOrganizationRepositoryInterface
	service  *service.OrganizationService
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.service = service.NewOrganizationService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating an organization successfully
func (suite *OrganizationServiceTestSuite) TestCreate() {
	req := &service.CreateOrganizationRequest{
		Name:        "acme",
		DisplayName: "Acme Inc",
		Domain:      "acme.com",
	}

	suite.mockRepo.EXPECT().GetByName("acme").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByDomain("acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acme", resp.Name)
	assert.Equal(suite.T(), "Acme Inc", resp.DisplayName)
	// Untouched settings come back as the defaults
	assert.Equal(suite.T(), 25, resp.Settings.MaxAttachmentMB)
}

// TestCreateDuplicateName tests creating an organization with an existing name
func (suite *OrganizationServiceTestSuite) TestCreateDuplicateName() {
	req := &service.CreateOrganizationRequest{
		Name:        "acme",
		DisplayName: "Acme Inc",
		Domain:      "acme.com",
	}

	suite.mockRepo.EXPECT().GetByName("acme").Return(&models.Organization{Name: "acme"}, nil)

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

// TestCreateValidationError tests creating an organization with missing fields
func (suite *OrganizationServiceTestSuite) TestCreateValidationError() {
	req := &service.CreateOrganizationRequest{Name: ""}

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorContains(suite.T(), err, "validation failed")
}

// TestGetByIDNotFound tests retrieving a missing organization
func (suite *OrganizationServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestUpdateSettings tests merging new settings over stored ones
func (suite *OrganizationServiceTestSuite) TestUpdateSettings() {
	id := uuid.New()
	stored, _ := json.Marshal(models.OrganizationSettings{MaxAttachmentMB: 10})
	org := &models.Organization{
		Name:        "acme",
		DisplayName: "Acme Inc",
		Domain:      "acme.com",
		Settings:    stored,
	}
	org.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.UpdateSettings(id, &service.UpdateOrganizationSettingsRequest{
		AllowedFileTypes: []string{"pdf"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"pdf"}, resp.Settings.AllowedFileTypes)
	// Previously customized limit survives a partial update
	assert.Equal(suite.T(), 10, resp.Settings.MaxAttachmentMB)
}

// TestDeleteNotFound tests deleting a missing organization
func (suite *OrganizationServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
