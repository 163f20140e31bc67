package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docuflow-backend/internal/config"
	apperrors "docuflow-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAppConfig = config.Config{
	BaseURL:        "http://localhost:7010",
	JWTSecret:      "test-secret",
	GoogleClientID: "google-client",
}

func newTestService() *AuthService {
	cfg := &Config{
		JWTSecret: "test-secret",
		BaseURL:   "http://localhost:7010",
		Providers: map[string]ProviderConfig{
			ProviderGoogle: {Name: ProviderGoogle},
		},
	}
	return NewAuthService(cfg, nil)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service := newTestService()
	orgID := uuid.New()

	profile := &UserProfile{
		Email:          "jane@acme.com",
		Name:           "Jane Doe",
		Provider:       ProviderGoogle,
		OrganizationID: &orgID,
	}

	token, err := service.GenerateJWT(profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, ProviderGoogle, claims.Provider)
	assert.Equal(t, orgID.String(), claims.OrganizationID)
	assert.Equal(t, "docuflow-backend", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateJWT(&UserProfile{Email: "jane@acme.com", Provider: ProviderGoogle})
	require.NoError(t, err)

	other := NewAuthService(&Config{JWTSecret: "different-secret"}, nil)
	_, err = other.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestAuthURLUnknownProvider(t *testing.T) {
	service := newTestService()

	_, err := service.AuthURL("yahoo", "state")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown auth provider")
}

func TestRefreshTokenRotation(t *testing.T) {
	service := newTestService()

	session, err := service.openSession(&UserProfile{Email: "jane@acme.com", Provider: ProviderGoogle})
	require.NoError(t, err)
	require.NotEmpty(t, session.RefreshToken)

	refreshed, err := service.RefreshToken(session.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", refreshed.Profile.Email)
	assert.NotEqual(t, session.RefreshToken, refreshed.RefreshToken)

	// The old refresh token must be unusable after rotation
	_, err = service.RefreshToken(session.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshTokenInvalid(t *testing.T) {
	service := newTestService()

	_, err := service.RefreshToken("never-issued")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshTokenExpired(t *testing.T) {
	service := newTestService()

	session, err := service.openSession(&UserProfile{Email: "jane@acme.com", Provider: ProviderGoogle})
	require.NoError(t, err)

	service.tokenMutex.Lock()
	service.refreshTokens[session.RefreshToken].ExpiresAt = time.Now().Add(-time.Minute)
	service.tokenMutex.Unlock()

	_, err = service.RefreshToken(session.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	service := newTestService()

	session, err := service.openSession(&UserProfile{Email: "jane@acme.com", Provider: ProviderGoogle})
	require.NoError(t, err)

	service.Logout(session.RefreshToken)

	_, err = service.RefreshToken(session.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func setupMiddlewareRouter(service *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewAuthMiddleware(service)
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		orgID, hasOrg := GetOrganizationID(c)
		c.JSON(http.StatusOK, gin.H{"email": email, "organization_id": orgID.String(), "has_org": hasOrg})
	})
	return router
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := setupMiddlewareRouter(newTestService())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router := setupMiddlewareRouter(newTestService())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	service := newTestService()
	router := setupMiddlewareRouter(service)

	orgID := uuid.New()
	token, err := service.GenerateJWT(&UserProfile{
		Email:          "jane@acme.com",
		Provider:       ProviderGoogle,
		OrganizationID: &orgID,
	})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "jane@acme.com")
	assert.Contains(t, recorder.Body.String(), orgID.String())
}

func TestNewConfigProviders(t *testing.T) {
	cfg := NewConfig(&testAppConfig)

	google, err := cfg.GetProvider(ProviderGoogle)
	require.NoError(t, err)
	assert.Equal(t, "google-client", google.OAuth.ClientID)
	assert.Contains(t, google.OAuth.RedirectURL, "/api/auth/google/handler/frame")

	// Microsoft is left out when no client ID is configured
	_, err = cfg.GetProvider(ProviderMicrosoft)
	assert.Error(t, err)
}
