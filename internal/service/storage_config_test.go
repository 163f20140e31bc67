package service_test

import (
	"context"
	"errors"
	"testing"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/mocks"
	"docuflow-backend/internal/service"
	"docuflow-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeFactory satisfies StorageFactoryInterface with a canned provider
type fakeFactory struct {
	provider storage.Provider
	err      error
}

func (f *fakeFactory) ForConfig(*models.StorageConfig, func(models.StorageCredentials)) (storage.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.provider, nil
}

// failingProvider always fails its connection test
type failingProvider struct {
	fakeProvider
}

func (p *failingProvider) Test(context.Context) error {
	return errors.New("bucket does not exist")
}

// StorageConfigServiceTestSuite defines the test suite for StorageConfigService
type StorageConfigServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockStorageConfigRepositoryInterface
	mockActivity *mocks.MockActivityLogRepositoryInterface
	factory      *fakeFactory
	service      *service.StorageConfigService
}

// SetupTest sets up the test suite
func (suite *StorageConfigServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockStorageConfigRepositoryInterface(suite.ctrl)
	suite.mockActivity = mocks.NewMockActivityLogRepositoryInterface(suite.ctrl)
	suite.factory = &fakeFactory{provider: &fakeProvider{}}

	activity := service.NewActivityService(suite.mockActivity, logger.New())
	suite.service = service.NewStorageConfigService(suite.mockRepo, suite.factory, activity, validator.New(), logger.New())
}

// TearDownTest cleans up after each test
func (suite *StorageConfigServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUnsupportedProvider tests creating a config for an unknown backend
func (suite *StorageConfigServiceTestSuite) TestCreateUnsupportedProvider() {
	resp, err := suite.service.Create(&service.CreateStorageConfigRequest{
		OrganizationID: uuid.New(),
		Name:           "dropbox",
		Provider:       "dropbox",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnsupportedProvider)
}

// TestCreateFirstBecomesDefault tests that the first config turns default
func (suite *StorageConfigServiceTestSuite) TestCreateFirstBecomesDefault() {
	orgID := uuid.New()

	suite.mockRepo.EXPECT().GetByName(orgID, "main").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(sc *models.StorageConfig) error {
		sc.ID = uuid.New()
		return nil
	})
	suite.mockRepo.EXPECT().GetDefault(orgID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().SetDefault(orgID, gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateStorageConfigRequest{
		OrganizationID: orgID,
		Name:           "main",
		Provider:       "builtin",
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.IsDefault)
	assert.Equal(suite.T(), "disconnected", resp.Status)
}

// TestCreateDuplicateName tests creating a config with a taken name
func (suite *StorageConfigServiceTestSuite) TestCreateDuplicateName() {
	orgID := uuid.New()
	suite.mockRepo.EXPECT().GetByName(orgID, "main").Return(&models.StorageConfig{}, nil)

	resp, err := suite.service.Create(&service.CreateStorageConfigRequest{
		OrganizationID: orgID,
		Name:           "main",
		Provider:       "builtin",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStorageConfigExists)
}

// TestTestConnectionSuccess tests recording a passing connection test
func (suite *StorageConfigServiceTestSuite) TestTestConnectionSuccess() {
	id := uuid.New()
	sc := &models.StorageConfig{
		OrganizationID: uuid.New(),
		Provider:       models.StorageProviderBuiltin,
		Status:         models.StorageStatusDisconnected,
	}
	sc.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(sc, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.TestConnection(context.Background(), id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "connected", resp.Status)
	assert.NotNil(suite.T(), resp.LastVerifiedAt)
	assert.Empty(suite.T(), resp.LastError)
}

// TestTestConnectionFailure tests recording a failed connection test
func (suite *StorageConfigServiceTestSuite) TestTestConnectionFailure() {
	suite.factory.provider = &failingProvider{}

	id := uuid.New()
	sc := &models.StorageConfig{
		OrganizationID: uuid.New(),
		Provider:       models.StorageProviderBuiltin,
		Status:         models.StorageStatusConnected,
	}
	sc.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(sc, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.TestConnection(context.Background(), id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "error", resp.Status)
	assert.Contains(suite.T(), resp.LastError, "bucket does not exist")
}

// TestUpdateCredentialsResetsStatus tests that new credentials invalidate the
// previous verification
func (suite *StorageConfigServiceTestSuite) TestUpdateCredentialsResetsStatus() {
	id := uuid.New()
	sc := &models.StorageConfig{
		OrganizationID: uuid.New(),
		Name:           "main",
		Provider:       models.StorageProviderAzureBlob,
		Status:         models.StorageStatusConnected,
	}
	sc.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(sc, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.Update(id, &service.UpdateStorageConfigRequest{
		Credentials: &models.StorageCredentials{AccountKey: "new-key"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "disconnected", resp.Status)
	assert.Nil(suite.T(), resp.LastVerifiedAt)
}

// TestDelete tests deleting a config and auditing it
func (suite *StorageConfigServiceTestSuite) TestDelete() {
	id := uuid.New()
	sc := &models.StorageConfig{OrganizationID: uuid.New(), Name: "main"}
	sc.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(sc, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)
	suite.mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	err := suite.service.Delete(id, "admin@acme.com")

	assert.NoError(suite.T(), err)
}

// TestStorageConfigServiceTestSuite runs the test suite
func TestStorageConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StorageConfigServiceTestSuite))
}
