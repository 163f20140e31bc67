package handlers

import (
	"net/http"
	"testing"

	"docuflow-backend/internal/auth"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/service"
	"docuflow-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sessionFor mimics what auth.RequireAuth puts into the context after
// validating a token for a user of the given organization
func sessionFor(orgID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &auth.AuthClaims{
			Email:          "user@acme.com",
			Name:           "Test User",
			Provider:       "google",
			OrganizationID: orgID.String(),
		}
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("provider", claims.Provider)
		c.Set("organization_id", claims.OrganizationID)
		c.Set("auth_claims", claims)
		c.Next()
	}
}

// TenancyTestSuite covers organization scoping of the authenticated API:
// claims decide the tenant, query parameters cannot widen it, and entities of
// other tenants are indistinguishable from missing ones.
type TenancyTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockEmployeeService *mocks.MockEmployeeServiceInterface
	mockImportService   *mocks.MockImportServiceInterface
	mockDocumentService *mocks.MockDocumentServiceInterface
	httpSuite           *testutils.HTTPTestSuite
	orgID               uuid.UUID
	otherOrgID          uuid.UUID
}

func (suite *TenancyTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeService = mocks.NewMockEmployeeServiceInterface(suite.ctrl)
	suite.mockImportService = mocks.NewMockImportServiceInterface(suite.ctrl)
	suite.mockDocumentService = mocks.NewMockDocumentServiceInterface(suite.ctrl)
	suite.orgID = uuid.New()
	suite.otherOrgID = uuid.New()

	employeeHandler := NewEmployeeHandler(suite.mockEmployeeService, suite.mockImportService)
	documentHandler := NewDocumentHandler(suite.mockDocumentService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(sessionFor(suite.orgID))

	employees := v1.Group("/employees")
	{
		employees.POST("", employeeHandler.CreateEmployee)
		employees.GET("", employeeHandler.ListEmployees)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.PUT("/:id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", employeeHandler.DeleteEmployee)
	}
	documents := v1.Group("/documents")
	{
		documents.GET("/:id", documentHandler.GetDocument)
		documents.DELETE("/:id", documentHandler.DeleteDocument)
	}
}

func (suite *TenancyTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsesClaimsOrganization tests that lists are scoped by the session
// when no organization_id parameter is given
func (suite *TenancyTestSuite) TestListUsesClaimsOrganization() {
	suite.mockEmployeeService.EXPECT().
		GetByOrganization(suite.orgID, service.ListEmployeesOptions{}, 20, 0).
		Return([]service.EmployeeResponse{}, int64(0), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/employees", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListRejectsForeignOrganization tests that a query parameter naming
// another tenant is refused instead of forwarded
func (suite *TenancyTestSuite) TestListRejectsForeignOrganization() {
	recorder := suite.httpSuite.MakeRequest("GET",
		"/api/v1/employees?organization_id="+suite.otherOrgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "does not match")
}

// TestListAcceptsOwnOrganization tests that naming the session's own tenant
// explicitly still works
func (suite *TenancyTestSuite) TestListAcceptsOwnOrganization() {
	suite.mockEmployeeService.EXPECT().
		GetByOrganization(suite.orgID, service.ListEmployeesOptions{}, 20, 0).
		Return([]service.EmployeeResponse{}, int64(0), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		"/api/v1/employees?organization_id="+suite.orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestCreateRejectsForeignOrganization tests that writes cannot target
// another tenant through the request body
func (suite *TenancyTestSuite) TestCreateRejectsForeignOrganization() {
	requestBody := map[string]interface{}{
		"organization_id": suite.otherOrgID.String(),
		"full_name":       "Jane Doe",
		"email":           "jane@other.example",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/employees", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "does not match")
}

// TestGetHidesForeignEmployee tests that reading another tenant's employee
// answers 404, not the row
func (suite *TenancyTestSuite) TestGetHidesForeignEmployee() {
	empID := uuid.New()
	suite.mockEmployeeService.EXPECT().
		GetByID(empID).
		Return(&service.EmployeeResponse{
			ID:             empID,
			OrganizationID: suite.otherOrgID,
			Email:          "victim@other.example",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/employees/"+empID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "employee not found")
	assert.NotContains(suite.T(), recorder.Body.String(), "victim@other.example")
}

// TestUpdateHidesForeignEmployee tests that mutations check ownership before
// touching the row
func (suite *TenancyTestSuite) TestUpdateHidesForeignEmployee() {
	empID := uuid.New()
	suite.mockEmployeeService.EXPECT().
		GetByID(empID).
		Return(&service.EmployeeResponse{ID: empID, OrganizationID: suite.otherOrgID}, nil).
		Times(1)
	// Update must never be reached

	requestBody := map[string]interface{}{"department": "Legal"}
	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/employees/"+empID.String(), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "employee not found")
}

// TestDeleteOwnEmployee tests that same-tenant mutations pass the ownership
// check and go through
func (suite *TenancyTestSuite) TestDeleteOwnEmployee() {
	empID := uuid.New()
	suite.mockEmployeeService.EXPECT().
		GetByID(empID).
		Return(&service.EmployeeResponse{ID: empID, OrganizationID: suite.orgID}, nil).
		Times(1)
	suite.mockEmployeeService.EXPECT().
		Delete(empID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/employees/"+empID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteHidesForeignDocument tests ownership checks on the document
// surface as well
func (suite *TenancyTestSuite) TestDeleteHidesForeignDocument() {
	docID := uuid.New()
	suite.mockDocumentService.EXPECT().
		GetByID(docID).
		Return(&service.DocumentResponse{ID: docID, OrganizationID: suite.otherOrgID}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/documents/"+docID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "document not found")
}

// TestSessionWithoutOrganization tests that a token with no organization
// claim cannot use tenant-scoped endpoints
func (suite *TenancyTestSuite) TestSessionWithoutOrganization() {
	router := testutils.SetupHTTPTest()
	handler := NewEmployeeHandler(suite.mockEmployeeService, suite.mockImportService)
	router.Router.Use(func(c *gin.Context) {
		claims := &auth.AuthClaims{Email: "drifter@nowhere.example", Provider: "google"}
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)
		c.Next()
	})
	router.Router.GET("/api/v1/employees", handler.ListEmployees)

	recorder := router.MakeRequest("GET", "/api/v1/employees", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not associated with an organization")
}

func TestTenancyTestSuite(t *testing.T) {
	suite.Run(t, new(TenancyTestSuite))
}
