package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/routing"
	"docuflow-backend/internal/service"
	"docuflow-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeProvider records uploads and answers with deterministic keys
type fakeProvider struct {
	uploads []fakeUpload
	err     error
}

type fakeUpload struct {
	folder   string
	fileName string
	size     int64
}

func (f *fakeProvider) Upload(_ context.Context, folder, fileName string, r io.Reader, size int64, _ string) (storage.UploadResult, error) {
	if f.err != nil {
		return storage.UploadResult{}, f.err
	}
	_, _ = io.Copy(io.Discard, r)
	f.uploads = append(f.uploads, fakeUpload{folder: folder, fileName: fileName, size: size})
	return storage.UploadResult{Key: folder + "/" + fileName, Size: size}, nil
}

func (f *fakeProvider) Delete(context.Context, string) error { return nil }

func (f *fakeProvider) DownloadURL(context.Context, string, time.Duration) (string, error) {
	return "https://store.test/file", nil
}

func (f *fakeProvider) Test(context.Context) error { return nil }

// fakeProviderSource hands out the same provider for every config
type fakeProviderSource struct {
	provider *fakeProvider
	err      error
}

func (f *fakeProviderSource) ProviderForConfig(*models.StorageConfig) (storage.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.provider, nil
}

// IngestServiceTestSuite defines the test suite for IngestService
type IngestServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockOrgRepo     *mocks.MockOrganizationRepositoryInterface
	mockAccountRepo *mocks.MockEmailAccountRepositoryInterface
	mockEmpRepo     *mocks.MockEmployeeRepositoryInterface
	mockReqRepo     *mocks.MockDocumentRequestRepositoryInterface
	mockDocRepo     *mocks.MockDocumentRepositoryInterface
	mockRuleRepo    *mocks.MockRoutingRuleRepositoryInterface
	mockSCRepo      *mocks.MockStorageConfigRepositoryInterface
	mockActivity    *mocks.MockActivityLogRepositoryInterface
	provider        *fakeProvider
	providers       *fakeProviderSource
	service         *service.IngestService

	org     *models.Organization
	account *models.EmailAccount
}

// SetupTest sets up the test suite
func (suite *IngestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAccountRepo = mocks.NewMockEmailAccountRepositoryInterface(suite.ctrl)
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockReqRepo = mocks.NewMockDocumentRequestRepositoryInterface(suite.ctrl)
	suite.mockDocRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockRuleRepo = mocks.NewMockRoutingRuleRepositoryInterface(suite.ctrl)
	suite.mockSCRepo = mocks.NewMockStorageConfigRepositoryInterface(suite.ctrl)
	suite.mockActivity = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)
	suite.provider = &fakeProvider{}
	suite.providers = &fakeProviderSource{provider: suite.provider}

	activity := service.NewActivityService(suite.mockActivity, logger.New())
	suite.service = service.NewIngestService(
		suite.mockOrgRepo,
		suite.mockAccountRepo,
		suite.mockEmpRepo,
		suite.mockReqRepo,
		suite.mockDocRepo,
		suite.mockRuleRepo,
		suite.mockSCRepo,
		routing.NewEngine(),
		suite.providers,
		activity,
		validator.New(),
		logger.New(),
	)

	suite.org = &models.Organization{Name: "acme", DisplayName: "Acme Inc", Domain: "acme.com"}
	suite.org.ID = uuid.New()
	suite.account = &models.EmailAccount{
		OrganizationID: suite.org.ID,
		Address:        "docs@acme.com",
		Status:         models.EmailAccountStatusConnected,
	}
	suite.account.ID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *IngestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IngestServiceTestSuite) expectResolution() {
	suite.mockAccountRepo.EXPECT().GetByAddress("docs@acme.com").Return(suite.account, nil)
	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
}

// TestIngestUnknownRecipient tests mail sent to an address nobody connected
func (suite *IngestServiceTestSuite) TestIngestUnknownRecipient() {
	suite.mockAccountRepo.EXPECT().GetByAddress("nobody@acme.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Ingest(context.Background(), &service.InboundEmailRequest{
		RecipientAddress: "nobody@acme.com",
		SenderEmail:      "jane@example.com",
		Attachments:      []service.InboundAttachment{{FileName: "a.pdf", Content: []byte("x")}},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailAccountNotFound)
}

// TestIngestStoresViaMatchingRule tests the happy path through a routing rule
func (suite *IngestServiceTestSuite) TestIngestStoresViaMatchingRule() {
	employee := &models.Employee{
		OrganizationID: suite.org.ID,
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		IsActive:       true,
	}
	employee.ID = uuid.New()

	scID := uuid.New()
	sc := &models.StorageConfig{OrganizationID: suite.org.ID, Provider: models.StorageProviderBuiltin}
	sc.ID = scID

	rule := models.RoutingRule{
		OrganizationID:  suite.org.ID,
		Name:            "invoices",
		IsActive:        true,
		SubjectPattern:  "invoice",
		StorageConfigID: scID,
		FolderTemplate:  "Invoices/{year}",
	}
	rule.ID = uuid.New()

	suite.expectResolution()
	suite.mockEmpRepo.EXPECT().GetByEmail(suite.org.ID, "jane@example.com").Return(employee, nil)
	suite.mockReqRepo.EXPECT().GetOpenByEmployee(employee.ID).Return(nil, nil)
	suite.mockRuleRepo.EXPECT().GetByOrganization(suite.org.ID).Return([]models.RoutingRule{rule}, nil)
	suite.mockDocRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(doc *models.Document) error {
		doc.ID = uuid.New()
		return nil
	})
	suite.mockSCRepo.EXPECT().GetByID(scID).Return(sc, nil)
	suite.mockDocRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Ingest(context.Background(), &service.InboundEmailRequest{
		RecipientAddress: "docs@acme.com",
		SenderEmail:      "Jane@Example.com",
		Subject:          "Invoice for March",
		Attachments:      []service.InboundAttachment{{FileName: "invoice.pdf", ContentType: "application/pdf", Content: []byte("pdf bytes")}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Stored)
	assert.Equal(suite.T(), 0, resp.Failed)
	assert.Equal(suite.T(), employee.ID, *resp.EmployeeID)
	assert.Equal(suite.T(), "stored", resp.Attachments[0].Status)
	assert.Len(suite.T(), suite.provider.uploads, 1)
	assert.Contains(suite.T(), suite.provider.uploads[0].folder, "Invoices/")
}

// TestIngestFallsBackToDefault tests routing when no rule matches
func (suite *IngestServiceTestSuite) TestIngestFallsBackToDefault() {
	sc := &models.StorageConfig{OrganizationID: suite.org.ID, IsDefault: true}
	sc.ID = uuid.New()

	suite.expectResolution()
	suite.mockEmpRepo.EXPECT().GetByEmail(suite.org.ID, "stranger@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRuleRepo.EXPECT().GetByOrganization(suite.org.ID).Return(nil, nil)
	suite.mockDocRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(doc *models.Document) error {
		doc.ID = uuid.New()
		return nil
	})
	suite.mockSCRepo.EXPECT().GetDefault(suite.org.ID).Return(sc, nil)
	suite.mockDocRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Ingest(context.Background(), &service.InboundEmailRequest{
		RecipientAddress: "docs@acme.com",
		SenderEmail:      "stranger@example.com",
		Subject:          "hello",
		Attachments:      []service.InboundAttachment{{FileName: "scan.png", Content: []byte("png bytes")}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Stored)
	assert.Nil(suite.T(), resp.EmployeeID)
	assert.Contains(suite.T(), suite.provider.uploads[0].folder, "stranger@example.com")
}

// TestIngestRejectsDisallowedType tests the organization file-type limit
func (suite *IngestServiceTestSuite) TestIngestRejectsDisallowedType() {
	suite.expectResolution()
	suite.mockEmpRepo.EXPECT().GetByEmail(suite.org.ID, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRuleRepo.EXPECT().GetByOrganization(suite.org.ID).Return(nil, nil)
	suite.mockDocRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(doc *models.Document) error {
		doc.ID = uuid.New()
		return nil
	})
	suite.mockDocRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(doc *models.Document) error {
		assert.Equal(suite.T(), models.DocumentStatusFailed, doc.Status)
		return nil
	})
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Ingest(context.Background(), &service.InboundEmailRequest{
		RecipientAddress: "docs@acme.com",
		SenderEmail:      "jane@example.com",
		Attachments:      []service.InboundAttachment{{FileName: "virus.exe", Content: []byte("binary")}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Failed)
	assert.Equal(suite.T(), "failed", resp.Attachments[0].Status)
	assert.Contains(suite.T(), resp.Attachments[0].FailureReason, "not allowed")
	assert.Empty(suite.T(), suite.provider.uploads)
}

// TestIngestNoDefaultStorage tests the failure when nothing can route a file
func (suite *IngestServiceTestSuite) TestIngestNoDefaultStorage() {
	suite.expectResolution()
	suite.mockEmpRepo.EXPECT().GetByEmail(suite.org.ID, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRuleRepo.EXPECT().GetByOrganization(suite.org.ID).Return(nil, nil)
	suite.mockDocRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(doc *models.Document) error {
		doc.ID = uuid.New()
		return nil
	})
	suite.mockSCRepo.EXPECT().GetDefault(suite.org.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockDocRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Ingest(context.Background(), &service.InboundEmailRequest{
		RecipientAddress: "docs@acme.com",
		SenderEmail:      "jane@example.com",
		Attachments:      []service.InboundAttachment{{FileName: "scan.pdf", Content: []byte("pdf")}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Failed)
	assert.Contains(suite.T(), resp.Attachments[0].FailureReason, "no default storage config")
}

// TestIngestCompletesRequest tests that a stored document completes the
// matching open request
func (suite *IngestServiceTestSuite) TestIngestCompletesRequest() {
	employee := &models.Employee{
		OrganizationID: suite.org.ID,
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		IsActive:       true,
	}
	employee.ID = uuid.New()

	request := models.DocumentRequest{
		OrganizationID: suite.org.ID,
		EmployeeID:     employee.ID,
		Title:          "Tax forms",
		DocumentTypes:  service.EncodeStringSlice([]string{"pdf"}),
		Status:         models.RequestStatusSent,
	}
	request.ID = uuid.New()

	sc := &models.StorageConfig{OrganizationID: suite.org.ID, IsDefault: true}
	sc.ID = uuid.New()

	docID := uuid.New()
	suite.expectResolution()
	suite.mockEmpRepo.EXPECT().GetByEmail(suite.org.ID, "jane@example.com").Return(employee, nil)
	suite.mockReqRepo.EXPECT().GetOpenByEmployee(employee.ID).Return([]models.DocumentRequest{request}, nil)
	suite.mockRuleRepo.EXPECT().GetByOrganization(suite.org.ID).Return(nil, nil)
	suite.mockDocRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(doc *models.Document) error {
		doc.ID = docID
		return nil
	})
	suite.mockSCRepo.EXPECT().GetDefault(suite.org.ID).Return(sc, nil)

	var storedDoc models.Document
	suite.mockDocRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(doc *models.Document) error {
		storedDoc = *doc
		return nil
	})
	suite.mockDocRepo.EXPECT().GetByRequest(request.ID).DoAndReturn(func(uuid.UUID) ([]models.Document, error) {
		return []models.Document{storedDoc}, nil
	})
	suite.mockReqRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(req *models.DocumentRequest) error {
		assert.Equal(suite.T(), models.RequestStatusCompleted, req.Status)
		assert.NotNil(suite.T(), req.CompletedAt)
		return nil
	})
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockDocRepo.EXPECT().GetByID(docID).Return(&storedDoc, nil)

	resp, err := suite.service.Ingest(context.Background(), &service.InboundEmailRequest{
		RecipientAddress: "docs@acme.com",
		SenderEmail:      "jane@example.com",
		Subject:          "here you go",
		Attachments:      []service.InboundAttachment{{FileName: "w2.pdf", Content: []byte("pdf")}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Stored)
	assert.Equal(suite.T(), request.ID, *resp.RequestID)
}

// TestIngestServiceTestSuite runs the test suite
func TestIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceTestSuite))
}
