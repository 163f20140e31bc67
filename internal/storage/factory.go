package storage

import (
	"fmt"

	"docuflow-backend/internal/config"
	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"

	"golang.org/x/oauth2"
)

// Factory builds Provider instances from stored StorageConfig rows.
type Factory struct {
	cfg *config.Config
}

// NewFactory creates a provider factory.
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg}
}

// ForConfig builds the provider backing sc. onTokenRefresh, when non-nil, is
// invoked with rotated OAuth credentials so the caller can persist them.
func (f *Factory) ForConfig(sc *models.StorageConfig, onTokenRefresh func(models.StorageCredentials)) (Provider, error) {
	creds := sc.DecodeCredentials()

	switch sc.Provider {
	case models.StorageProviderBuiltin:
		return NewBuiltin(f.cfg, sc.OrganizationID.String())

	case models.StorageProviderGoogleDrive:
		session := f.oauthSessionFor(googleOAuthConfig(f.cfg), creds, onTokenRefresh)
		return NewGoogleDrive(session, sc.RootPath), nil

	case models.StorageProviderOneDrive:
		session := f.oauthSessionFor(microsoftOAuthConfig(f.cfg), creds, onTokenRefresh)
		return NewOneDrive(session, sc.RootPath), nil

	case models.StorageProviderSharePoint:
		if creds.SiteID == "" {
			return nil, fmt.Errorf("sharepoint config is missing a site id")
		}
		session := f.oauthSessionFor(microsoftOAuthConfig(f.cfg), creds, onTokenRefresh)
		return NewSharePoint(session, creds.SiteID, sc.RootPath), nil

	case models.StorageProviderAzureBlob:
		return NewAzureBlob(creds.AccountName, creds.AccountKey, sc.RootPath)

	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedProvider, sc.Provider)
	}
}

func (f *Factory) oauthSessionFor(conf *oauth2.Config, creds models.StorageCredentials, onTokenRefresh func(models.StorageCredentials)) *oauthSession {
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		Expiry:       creds.TokenExpiry,
	}
	var onRefresh func(*oauth2.Token)
	if onTokenRefresh != nil {
		onRefresh = func(tok *oauth2.Token) {
			creds.AccessToken = tok.AccessToken
			creds.RefreshToken = tok.RefreshToken
			creds.TokenExpiry = tok.Expiry
			onTokenRefresh(creds)
		}
	}
	return newOAuthSession(conf, token, onRefresh)
}

func googleOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
		Scopes: []string{"https://www.googleapis.com/auth/drive.file"},
	}
}

func microsoftOAuthConfig(cfg *config.Config) *oauth2.Config {
	tenant := cfg.MicrosoftTenant
	if tenant == "" {
		tenant = "common"
	}
	return &oauth2.Config{
		ClientID:     cfg.MicrosoftClientID,
		ClientSecret: cfg.MicrosoftClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/authorize", tenant),
			TokenURL: fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenant),
		},
		Scopes: []string{"Files.ReadWrite.All", "offline_access"},
	}
}
