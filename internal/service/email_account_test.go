package service_test

import (
	"errors"
	"testing"
	"time"

	"docuflow-backend/internal/config"
	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/service"
	"docuflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmailAccountServiceTestSuite defines the test suite for EmailAccountService
type EmailAccountServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockEmailAccountRepositoryInterface
	mockActivityRepo *mocks.MockActivityLogRepositoryInterface
	service          *service.EmailAccountService
}

// SetupTest sets up the test suite
func (suite *EmailAccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEmailAccountRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)

	log := logger.New()
	activity := service.NewActivityService(suite.mockActivityRepo, log)
	cfg := &config.Config{
		BaseURL:        "http://localhost:7010",
		GoogleClientID: "google-client",
	}
	suite.service = service.NewEmailAccountService(suite.mockRepo, cfg, activity, log)
}

// TearDownTest cleans up after each test
func (suite *EmailAccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestConnectStart tests building the consent URL
func (suite *EmailAccountServiceTestSuite) TestConnectStart() {
	orgID := uuid.New()

	resp, err := suite.service.ConnectStart(models.EmailProviderGoogle, orgID)

	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), resp.AuthURL, "accounts.google.com")
	assert.Contains(suite.T(), resp.AuthURL, orgID.String())
}

// TestConnectStartUnsupportedProvider tests an unknown mail provider
func (suite *EmailAccountServiceTestSuite) TestConnectStartUnsupportedProvider() {
	_, err := suite.service.ConnectStart(models.EmailProvider("yahoo"), uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnsupportedProvider)
}

// TestDisconnect tests clearing tokens on disconnect
func (suite *EmailAccountServiceTestSuite) TestDisconnect() {
	account := testutils.NewEmailAccountFactory().Create()
	account.Status = models.EmailAccountStatusConnected
	account.AccessToken = "access"
	account.RefreshToken = "refresh"

	suite.mockRepo.EXPECT().GetByID(account.ID).Return(account, nil).Times(1)

	var updated *models.EmailAccount
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(a *models.EmailAccount) error {
			updated = a
			return nil
		}).
		Times(1)
	suite.mockActivityRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	resp, err := suite.service.Disconnect(account.ID, "admin@acme.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "disconnected", resp.Status)
	assert.Empty(suite.T(), updated.AccessToken)
	assert.Empty(suite.T(), updated.RefreshToken)
}

// TestPollNow tests stamping last_polled_at
func (suite *EmailAccountServiceTestSuite) TestPollNow() {
	account := testutils.NewEmailAccountFactory().Create()
	account.Status = models.EmailAccountStatusConnected

	suite.mockRepo.EXPECT().GetByID(account.ID).Return(account, nil).Times(1)

	var updated *models.EmailAccount
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(a *models.EmailAccount) error {
			updated = a
			return nil
		}).
		Times(1)

	before := time.Now().Add(-time.Second)
	resp, err := suite.service.PollNow(account.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.LastPolledAt)
	assert.True(suite.T(), updated.LastPolledAt.After(before))
}

// TestPollNowNotConnected tests polling a disconnected mailbox
func (suite *EmailAccountServiceTestSuite) TestPollNowNotConnected() {
	account := testutils.NewEmailAccountFactory().Create()
	account.Status = models.EmailAccountStatusDisconnected

	suite.mockRepo.EXPECT().GetByID(account.ID).Return(account, nil).Times(1)

	_, err := suite.service.PollNow(account.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailAccountReauthNeeded)
}

// TestGetByIDNotFound tests retrieving a missing account
func (suite *EmailAccountServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, errors.New("record not found")).Times(1)

	_, err := suite.service.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailAccountNotFound)
}

// TestEmailAccountServiceTestSuite runs the test suite
func TestEmailAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmailAccountServiceTestSuite))
}
