package handlers

import (
	"net/http"
	"testing"

	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/service"
	"docuflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RoutingRuleHandlerTestSuite defines the test suite for RoutingRuleHandler
type RoutingRuleHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRoutingRuleServiceInterface
	handler     *RoutingRuleHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RoutingRuleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRoutingRuleServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewRoutingRuleHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	rules := v1.Group("/routing-rules")
	{
		rules.POST("", suite.handler.CreateRoutingRule)
		rules.GET("", suite.handler.ListRoutingRules)
		rules.PUT("/reorder", suite.handler.ReorderRoutingRules)
		rules.POST("/test", suite.handler.TestRoutingRules)
		rules.GET("/:id", suite.handler.GetRoutingRule)
		rules.PUT("/:id", suite.handler.UpdateRoutingRule)
		rules.DELETE("/:id", suite.handler.DeleteRoutingRule)
	}
}

// TearDownTest cleans up after each test
func (suite *RoutingRuleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRoutingRule tests creating a routing rule
func (suite *RoutingRuleHandlerTestSuite) TestCreateRoutingRule() {
	orgID := uuid.New()
	scID := uuid.New()
	requestBody := map[string]interface{}{
		"organization_id":   orgID.String(),
		"name":              "invoices",
		"subject_pattern":   "invoice",
		"storage_config_id": scID.String(),
		"folder_template":   "Invoices/{year}",
	}

	expectedResponse := &service.RoutingRuleResponse{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           "invoices",
		IsActive:       true,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/routing-rules", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestCreateRoutingRuleInvalidPattern tests creating a rule with a broken regex
func (suite *RoutingRuleHandlerTestSuite) TestCreateRoutingRuleInvalidPattern() {
	requestBody := map[string]interface{}{
		"organization_id":   uuid.New().String(),
		"name":              "broken",
		"subject_pattern":   "[invalid",
		"storage_config_id": uuid.New().String(),
		"folder_template":   "Inbox",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("subject_pattern", "not a valid regular expression")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/routing-rules", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

// TestReorderRoutingRules tests reordering rules
func (suite *RoutingRuleHandlerTestSuite) TestReorderRoutingRules() {
	orgID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	requestBody := map[string]interface{}{
		"rule_ids": []string{first.String(), second.String()},
	}

	suite.mockService.EXPECT().
		Reorder(orgID, gomock.Any()).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT",
		"/api/v1/routing-rules/reorder?organization_id="+orgID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestTestRoutingRules tests the dry-run endpoint
func (suite *RoutingRuleHandlerTestSuite) TestTestRoutingRules() {
	orgID := uuid.New()
	ruleID := uuid.New()
	requestBody := map[string]interface{}{
		"sender_email": "jane@example.com",
		"subject":      "Invoice for March",
		"file_name":    "invoice.pdf",
	}

	expectedResponse := &service.TestRoutingResponse{
		Matched:    true,
		RuleID:     &ruleID,
		RuleName:   "invoices",
		FolderPath: "Invoices/2026",
	}

	suite.mockService.EXPECT().
		Test(orgID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST",
		"/api/v1/routing-rules/test?organization_id="+orgID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.TestRoutingResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Matched)
	assert.Equal(suite.T(), "invoices", response.RuleName)
}

// TestDeleteRoutingRuleNotFound tests deleting a missing rule
func (suite *RoutingRuleHandlerTestSuite) TestDeleteRoutingRuleNotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Delete(id).
		Return(apperrors.ErrRoutingRuleNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/routing-rules/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "routing rule not found")
}

// TestRoutingRuleHandlerTestSuite runs the test suite
func TestRoutingRuleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoutingRuleHandlerTestSuite))
}
