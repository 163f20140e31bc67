package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session and refresh token lifetimes
const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// UserProfile represents the identity returned by a login provider
type UserProfile struct {
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Provider       string     `json:"provider"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	OrganizationID string `json:"organization_id,omitempty"`
	jwt.RegisteredClaims
}

// RefreshTokenData stores the server-side state behind a refresh token
type RefreshTokenData struct {
	Profile   UserProfile
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionResponse is returned after a successful login, refresh or validation
type SessionResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// AuthService provides OAuth login and JWT session management
type AuthService struct {
	config        *Config
	orgRepo       repository.OrganizationRepositoryInterface
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
	httpClient    *http.Client
}

// NewAuthService creates a new authentication service
func NewAuthService(config *Config, orgRepo repository.OrganizationRepositoryInterface) *AuthService {
	return &AuthService{
		config:        config,
		orgRepo:       orgRepo,
		refreshTokens: make(map[string]*RefreshTokenData),
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL generates the OAuth2 authorization URL for a provider
func (s *AuthService) AuthURL(provider, state string) (string, error) {
	providerConfig, err := s.config.GetProvider(provider)
	if err != nil {
		return "", err
	}
	return providerConfig.OAuth.AuthCodeURL(state), nil
}

// HandleCallback exchanges the authorization code, resolves the user's
// organization and opens a JWT session
func (s *AuthService) HandleCallback(ctx context.Context, provider, code string) (*SessionResponse, error) {
	providerConfig, err := s.config.GetProvider(provider)
	if err != nil {
		return nil, err
	}

	token, err := providerConfig.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := s.fetchProfile(ctx, providerConfig, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	profile.OrganizationID = s.organizationIDForEmail(profile.Email)

	return s.openSession(profile)
}

// RefreshToken rotates a refresh token and issues a new JWT
func (s *AuthService) RefreshToken(refreshToken string) (*SessionResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	profile := tokenData.Profile

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	return s.openSession(&profile)
}

// Logout invalidates a refresh token. Access tokens stay valid until expiry.
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(profile *UserProfile) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Email:    profile.Email,
		Name:     profile.Name,
		Provider: profile.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "docuflow-backend",
			Subject:   profile.Email,
		},
	}
	if profile.OrganizationID != nil {
		claims.OrganizationID = profile.OrganizationID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return randomString(32)
}

func (s *AuthService) openSession(profile *UserProfile) (*SessionResponse, error) {
	jwtToken, err := s.GenerateJWT(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := randomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		Profile:   *profile,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &SessionResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile:      *profile,
	}, nil
}

// organizationIDForEmail maps a login email to its tenant through the
// organization's registered domain. Users without a matching organization
// still get a session; org-scoped endpoints resolve scope from the query.
func (s *AuthService) organizationIDForEmail(email string) *uuid.UUID {
	if s.orgRepo == nil {
		return nil
	}
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return nil
	}

	org, err := s.orgRepo.GetByDomain(strings.ToLower(domain))
	if err != nil || org == nil {
		return nil
	}
	return &org.ID
}

// providerProfile covers the userinfo payloads of both providers: Google's
// OIDC userinfo uses email/name, Microsoft Graph /me uses mail/displayName
// (falling back to userPrincipalName for accounts without a mailbox).
type providerProfile struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Mail              string `json:"mail"`
	DisplayName       string `json:"displayName"`
	UserPrincipalName string `json:"userPrincipalName"`
}

func (s *AuthService) fetchProfile(ctx context.Context, providerConfig ProviderConfig, accessToken string) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, providerConfig.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var raw providerProfile
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	profile := &UserProfile{
		Email:    raw.Email,
		Name:     raw.Name,
		Provider: providerConfig.Name,
	}
	if profile.Email == "" {
		profile.Email = raw.Mail
	}
	if profile.Email == "" {
		profile.Email = raw.UserPrincipalName
	}
	if profile.Name == "" {
		profile.Name = raw.DisplayName
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("provider %s returned no email address", providerConfig.Name)
	}
	profile.Email = strings.ToLower(profile.Email)

	return profile, nil
}

func randomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
