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

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.GET("/by-name/:name", suite.handler.GetOrganizationByName)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.PUT("/:id/settings", suite.handler.UpdateOrganizationSettings)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":         "acme",
		"display_name": "Acme Corp",
		"domain":       "acme.com",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:          orgID,
		Name:        "acme",
		DisplayName: "Acme Corp",
		Domain:      "acme.com",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), expectedResponse.DisplayName, response.DisplayName)
}

// TestCreateOrganizationConflict tests creating a duplicate organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationConflict() {
	requestBody := map[string]interface{}{
		"name":   "acme",
		"domain": "acme.com",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrOrganizationExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestGetOrganization tests retrieving an organization by ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()
	expectedResponse := &service.OrganizationResponse{
		ID:   orgID,
		Name: "acme",
	}

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), orgID, response.ID)
}

// TestGetOrganizationNotFound tests retrieving a missing organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestGetOrganizationInvalidID tests retrieving with a malformed UUID
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestListOrganizations tests listing organizations with pagination
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	orgs := []service.OrganizationResponse{
		{ID: uuid.New(), Name: "acme"},
		{ID: uuid.New(), Name: "globex"},
	}

	suite.mockOrganizationService.EXPECT().
		GetAll(20, 0).
		Return(orgs, int64(2), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(2), response["total"])
	assert.Len(suite.T(), response["organizations"], 2)
}

// TestUpdateOrganizationSettings tests updating ingest settings
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationSettings() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"allowed_file_types": []string{"pdf"},
		"max_attachment_mb":  10,
	}

	expectedResponse := &service.OrganizationResponse{ID: orgID, Name: "acme"}

	suite.mockOrganizationService.EXPECT().
		UpdateSettings(orgID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+orgID.String()+"/settings", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteOrganization tests deleting an organization
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(orgID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
