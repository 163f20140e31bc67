package auth

import (
	"fmt"

	"docuflow-backend/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

// Provider names accepted by the login endpoints
const (
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
)

// ProviderConfig holds the OAuth2 client and profile endpoint for one identity provider
type ProviderConfig struct {
	Name        string
	OAuth       oauth2.Config
	UserInfoURL string
}

// Config holds the login providers and token settings for the auth package
type Config struct {
	JWTSecret string
	BaseURL   string
	Providers map[string]ProviderConfig
}

// NewConfig builds the auth configuration from the application config.
// Providers without a client ID are left out, so a deployment can run
// with only one identity provider configured.
func NewConfig(cfg *config.Config) *Config {
	providers := make(map[string]ProviderConfig)

	if cfg.GoogleClientID != "" {
		providers[ProviderGoogle] = ProviderConfig{
			Name: ProviderGoogle,
			OAuth: oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				RedirectURL:  fmt.Sprintf("%s/api/auth/%s/handler/frame", cfg.BaseURL, ProviderGoogle),
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		}
	}

	if cfg.MicrosoftClientID != "" {
		providers[ProviderMicrosoft] = ProviderConfig{
			Name: ProviderMicrosoft,
			OAuth: oauth2.Config{
				ClientID:     cfg.MicrosoftClientID,
				ClientSecret: cfg.MicrosoftClientSecret,
				Endpoint:     microsoft.AzureADEndpoint(cfg.MicrosoftTenant),
				RedirectURL:  fmt.Sprintf("%s/api/auth/%s/handler/frame", cfg.BaseURL, ProviderMicrosoft),
				Scopes:       []string{"openid", "email", "profile", "User.Read"},
			},
			UserInfoURL: "https://graph.microsoft.com/v1.0/me",
		}
	}

	return &Config{
		JWTSecret: cfg.JWTSecret,
		BaseURL:   cfg.BaseURL,
		Providers: providers,
	}
}

// GetProvider returns the configuration for a named provider
func (c *Config) GetProvider(name string) (ProviderConfig, error) {
	provider, exists := c.Providers[name]
	if !exists {
		return ProviderConfig{}, fmt.Errorf("unknown auth provider: %s", name)
	}
	return provider, nil
}
