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

// IngestHandlerTestSuite defines the test suite for IngestHandler
type IngestHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockIngestServiceInterface
	handler     *IngestHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *IngestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockIngestServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewIngestHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/ingest/email", suite.handler.IngestEmail)
}

// TearDownTest cleans up after each test
func (suite *IngestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestIngestEmail tests processing an inbound email
func (suite *IngestHandlerTestSuite) TestIngestEmail() {
	orgID := uuid.New()
	docID := uuid.New()
	requestBody := map[string]interface{}{
		"recipient_address": "docs@acme.com",
		"sender_email":      "jane@example.com",
		"subject":           "Invoice for March",
		"attachments": []map[string]interface{}{
			{"file_name": "invoice.pdf", "content": []byte("%PDF-1.4")},
		},
	}

	expectedResponse := &service.IngestResponse{
		OrganizationID: orgID,
		Attachments: []service.AttachmentResult{
			{DocumentID: docID, FileName: "invoice.pdf", Status: "stored", FolderPath: "Invoices/2026"},
		},
		Stored: 1,
	}

	suite.mockService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/ingest/email", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.IngestResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 1, response.Stored)
	assert.Equal(suite.T(), "stored", response.Attachments[0].Status)
}

// TestIngestEmailUnknownRecipient tests a recipient with no connected account
func (suite *IngestHandlerTestSuite) TestIngestEmailUnknownRecipient() {
	requestBody := map[string]interface{}{
		"recipient_address": "nobody@acme.com",
		"sender_email":      "jane@example.com",
		"attachments": []map[string]interface{}{
			{"file_name": "invoice.pdf", "content": []byte("%PDF-1.4")},
		},
	}

	suite.mockService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrEmailAccountNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/ingest/email", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "email account not found")
}

// TestIngestEmailInvalidBody tests a malformed payload
func (suite *IngestHandlerTestSuite) TestIngestEmailInvalidBody() {
	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/ingest/email",
		nil, map[string]string{"Content-Type": "application/json"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestIngestHandlerTestSuite runs the test suite
func TestIngestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IngestHandlerTestSuite))
}
