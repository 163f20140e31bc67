package service_test

import (
	"context"
	"testing"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeMailSender records sends instead of calling a provider
type fakeMailSender struct {
	sent []fakeMail
	err  error
}

type fakeMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeMailSender) Send(_ context.Context, _ *models.EmailAccount, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, fakeMail{to: to, subject: subject, body: body})
	return nil
}

// DocumentRequestServiceTestSuite defines the test suite for DocumentRequestService
type DocumentRequestServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockDocumentRequestRepositoryInterface
	mockEmpRepo     *mocks.MockEmployeeRepositoryInterface
	mockDocRepo     *mocks.MockDocumentRepositoryInterface
	mockAccountRepo *mocks.MockEmailAccountRepositoryInterface
	mockActivity    *mocks.MockActivityLogRepositoryInterface
	mail            *fakeMailSender
	service         *service.DocumentRequestService
}

// SetupTest sets up the test suite
func (suite *DocumentRequestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDocumentRequestRepositoryInterface(suite.ctrl)
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockDocRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockAccountRepo = mocks.NewMockEmailAccountRepositoryInterface(suite.ctrl)
	suite.mockActivity = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)
	suite.mail = &fakeMailSender{}

	activity := service.NewActivityService(suite.mockActivity, logger.New())
	suite.service = service.NewDocumentRequestService(
		suite.mockRepo,
		suite.mockEmpRepo,
		suite.mockDocRepo,
		suite.mockAccountRepo,
		suite.mail,
		activity,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *DocumentRequestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating a request in pending state
func (suite *DocumentRequestServiceTestSuite) TestCreate() {
	orgID := uuid.New()
	empID := uuid.New()
	employee := &models.Employee{OrganizationID: orgID}
	employee.ID = empID

	suite.mockEmpRepo.EXPECT().GetByID(empID).Return(employee, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateDocumentRequestRequest{
		OrganizationID: orgID,
		EmployeeID:     empID,
		Title:          "Tax forms",
		DocumentTypes:  []string{"pdf"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "pending", resp.Status)
	assert.Nil(suite.T(), resp.SentAt)
}

// TestCreateEmployeeFromOtherOrganization tests cross-tenant employee rejection
func (suite *DocumentRequestServiceTestSuite) TestCreateEmployeeFromOtherOrganization() {
	empID := uuid.New()
	employee := &models.Employee{OrganizationID: uuid.New()}
	employee.ID = empID

	suite.mockEmpRepo.EXPECT().GetByID(empID).Return(employee, nil)

	resp, err := suite.service.Create(&service.CreateDocumentRequestRequest{
		OrganizationID: uuid.New(),
		EmployeeID:     empID,
		Title:          "Tax forms",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

// TestSend tests sending a pending request through a connected account
func (suite *DocumentRequestServiceTestSuite) TestSend() {
	id := uuid.New()
	orgID := uuid.New()
	request := &models.DocumentRequest{
		OrganizationID: orgID,
		Title:          "Tax forms",
		Message:        "Please send your W-2.",
		Status:         models.RequestStatusPending,
		Employee:       models.Employee{Email: "jane@example.com"},
	}
	request.ID = id

	account := models.EmailAccount{Status: models.EmailAccountStatusConnected}
	account.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByIDWithEmployee(id).Return(request, nil)
	suite.mockAccountRepo.EXPECT().GetConnectedByOrganization(orgID).Return([]models.EmailAccount{account}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Send(context.Background(), id, "admin@acme.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sent", resp.Status)
	assert.NotNil(suite.T(), resp.SentAt)
	assert.Len(suite.T(), suite.mail.sent, 1)
	assert.Equal(suite.T(), "jane@example.com", suite.mail.sent[0].to)
	assert.Equal(suite.T(), "Tax forms", suite.mail.sent[0].subject)
}

// TestSendNoConnectedAccount tests sending without any connected mailbox
func (suite *DocumentRequestServiceTestSuite) TestSendNoConnectedAccount() {
	id := uuid.New()
	orgID := uuid.New()
	request := &models.DocumentRequest{
		OrganizationID: orgID,
		Title:          "Tax forms",
		Status:         models.RequestStatusPending,
	}
	request.ID = id

	suite.mockRepo.EXPECT().GetByIDWithEmployee(id).Return(request, nil)
	suite.mockAccountRepo.EXPECT().GetConnectedByOrganization(orgID).Return([]models.EmailAccount{}, nil)

	resp, err := suite.service.Send(context.Background(), id, "admin@acme.com")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoEmailAccountConnected)
	assert.Empty(suite.T(), suite.mail.sent)
}

// TestRemind tests that a reminder bumps the counter
func (suite *DocumentRequestServiceTestSuite) TestRemind() {
	id := uuid.New()
	orgID := uuid.New()
	request := &models.DocumentRequest{
		OrganizationID: orgID,
		Title:          "Tax forms",
		Status:         models.RequestStatusSent,
		ReminderCount:  1,
		Employee:       models.Employee{Email: "jane@example.com"},
	}
	request.ID = id

	account := models.EmailAccount{Status: models.EmailAccountStatusConnected}
	account.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByIDWithEmployee(id).Return(request, nil)
	suite.mockAccountRepo.EXPECT().GetConnectedByOrganization(orgID).Return([]models.EmailAccount{account}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Remind(context.Background(), id, "admin@acme.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.ReminderCount)
	assert.NotNil(suite.T(), resp.LastReminderAt)
	assert.Equal(suite.T(), "Reminder: Tax forms", suite.mail.sent[0].subject)
}

// TestRemindCompleted tests reminding a request that already finished
func (suite *DocumentRequestServiceTestSuite) TestRemindCompleted() {
	id := uuid.New()
	now := time.Now()
	request := &models.DocumentRequest{
		Status:      models.RequestStatusCompleted,
		CompletedAt: &now,
	}
	request.ID = id

	suite.mockRepo.EXPECT().GetByIDWithEmployee(id).Return(request, nil)

	resp, err := suite.service.Remind(context.Background(), id, "admin@acme.com")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestAlreadyCompleted)
}

// TestCancel tests cancelling an open request
func (suite *DocumentRequestServiceTestSuite) TestCancel() {
	id := uuid.New()
	request := &models.DocumentRequest{Status: models.RequestStatusSent}
	request.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(request, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.Cancel(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "cancelled", resp.Status)
}

// TestCancelCancelled tests that a cancelled request cannot be cancelled again
func (suite *DocumentRequestServiceTestSuite) TestCancelCancelled() {
	id := uuid.New()
	request := &models.DocumentRequest{Status: models.RequestStatusCancelled}
	request.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(request, nil)

	resp, err := suite.service.Cancel(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestNotOpen)
}

// TestGetByIDNotFound tests retrieving a missing request
func (suite *DocumentRequestServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentRequestNotFound)
}

// TestDocumentRequestServiceTestSuite runs the test suite
func TestDocumentRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRequestServiceTestSuite))
}
