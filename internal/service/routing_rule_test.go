package service_test

import (
	"testing"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/routing"
	"docuflow-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RoutingRuleServiceTestSuite defines the test suite for RoutingRuleService
type RoutingRuleServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockRoutingRuleRepositoryInterface
	mockSCRepo *mocks.MockStorageConfigRepositoryInterface
	service    *service.RoutingRuleService
}

// SetupTest sets up the test suite
func (suite *RoutingRuleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRoutingRuleRepositoryInterface(suite.ctrl)
	suite.mockSCRepo = mocks.NewMockStorageConfigRepositoryInterface(suite.ctrl)
	suite.service = service.NewRoutingRuleService(suite.mockRepo, suite.mockSCRepo, routing.NewEngine(), validator.New())
}

// TearDownTest cleans up after each test
func (suite *RoutingRuleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateInvalidPattern tests that a broken regex is rejected at create time
func (suite *RoutingRuleServiceTestSuite) TestCreateInvalidPattern() {
	req := &service.CreateRoutingRuleRequest{
		OrganizationID:  uuid.New(),
		Name:            "broken",
		SubjectPattern:  "[invalid",
		StorageConfigID: uuid.New(),
		FolderTemplate:  "Inbox",
	}

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateForeignStorageConfig tests that a destination from another
// organization is rejected
func (suite *RoutingRuleServiceTestSuite) TestCreateForeignStorageConfig() {
	orgID := uuid.New()
	scID := uuid.New()
	req := &service.CreateRoutingRuleRequest{
		OrganizationID:  orgID,
		Name:            "invoices",
		StorageConfigID: scID,
		FolderTemplate:  "Invoices/{year}",
	}

	foreign := &models.StorageConfig{OrganizationID: uuid.New()}
	foreign.ID = scID
	suite.mockSCRepo.EXPECT().GetByID(scID).Return(foreign, nil)

	resp, err := suite.service.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStorageConfigNotFound)
}

// TestCreate tests creating a routing rule successfully
func (suite *RoutingRuleServiceTestSuite) TestCreate() {
	orgID := uuid.New()
	scID := uuid.New()
	req := &service.CreateRoutingRuleRequest{
		OrganizationID:  orgID,
		Name:            "invoices",
		Priority:        5,
		SubjectPattern:  "invoice",
		FileTypes:       []string{"pdf"},
		StorageConfigID: scID,
		FolderTemplate:  "Invoices/{year}/{month}",
	}

	sc := &models.StorageConfig{OrganizationID: orgID}
	sc.ID = scID
	suite.mockSCRepo.EXPECT().GetByID(scID).Return(sc, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "invoices", resp.Name)
	assert.True(suite.T(), resp.IsActive)
	assert.Equal(suite.T(), []string{"pdf"}, resp.FileTypes)
}

// TestReorder tests that priorities descend in the requested order
func (suite *RoutingRuleServiceTestSuite) TestReorder() {
	orgID := uuid.New()
	first := models.RoutingRule{}
	first.ID = uuid.New()
	second := models.RoutingRule{}
	second.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByOrganization(orgID).Return([]models.RoutingRule{first, second}, nil)
	suite.mockRepo.EXPECT().UpdatePriorities(map[uuid.UUID]int{
		second.ID: 2,
		first.ID:  1,
	}).Return(nil)

	err := suite.service.Reorder(orgID, &service.ReorderRoutingRulesRequest{
		RuleIDs: []uuid.UUID{second.ID, first.ID},
	})

	assert.NoError(suite.T(), err)
}

// TestReorderUnknownRule tests reordering with an ID from another organization
func (suite *RoutingRuleServiceTestSuite) TestReorderUnknownRule() {
	orgID := uuid.New()
	suite.mockRepo.EXPECT().GetByOrganization(orgID).Return([]models.RoutingRule{}, nil)

	err := suite.service.Reorder(orgID, &service.ReorderRoutingRulesRequest{
		RuleIDs: []uuid.UUID{uuid.New()},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoutingRuleNotFound)
}

// TestTestMatched tests the dry run against a matching rule
func (suite *RoutingRuleServiceTestSuite) TestTestMatched() {
	orgID := uuid.New()
	rule := models.RoutingRule{
		Name:           "invoices",
		IsActive:       true,
		SubjectPattern: "invoice",
		FolderTemplate: "Invoices/{year}",
	}
	rule.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByOrganization(orgID).Return([]models.RoutingRule{rule}, nil)

	resp, err := suite.service.Test(orgID, &service.TestRoutingRequest{
		SenderEmail: "jane@example.com",
		Subject:     "Invoice for March",
		FileName:    "invoice.pdf",
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Matched)
	assert.Equal(suite.T(), "invoices", resp.RuleName)
	assert.Contains(suite.T(), resp.FolderPath, "Invoices/")
}

// TestTestUnmatched tests the dry run when nothing matches
func (suite *RoutingRuleServiceTestSuite) TestTestUnmatched() {
	orgID := uuid.New()
	rule := models.RoutingRule{
		IsActive:       true,
		SubjectPattern: "payroll",
		FolderTemplate: "Payroll",
	}
	rule.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByOrganization(orgID).Return([]models.RoutingRule{rule}, nil)

	resp, err := suite.service.Test(orgID, &service.TestRoutingRequest{
		SenderEmail: "jane@example.com",
		Subject:     "Invoice for March",
		FileName:    "invoice.pdf",
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Matched)
	assert.Nil(suite.T(), resp.RuleID)
}

// TestDeleteNotFound tests deleting a missing rule
func (suite *RoutingRuleServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoutingRuleNotFound)
}

// TestRoutingRuleServiceTestSuite runs the test suite
func TestRoutingRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoutingRuleServiceTestSuite))
}
