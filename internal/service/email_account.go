package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"docuflow-backend/internal/config"
	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

const (
	gmailProfileURL = "https://gmail.googleapis.com/gmail/v1/users/me/profile"
	graphMeURL      = "https://graph.microsoft.com/v1.0/me"
)

// EmailAccountService handles connecting, listing and disconnecting the
// organization's mailboxes.
type EmailAccountService struct {
	repo     repository.EmailAccountRepositoryInterface
	cfg      *config.Config
	activity *ActivityService
	log      *logger.Logger
}

// NewEmailAccountService creates a new email account service
func NewEmailAccountService(repo repository.EmailAccountRepositoryInterface, cfg *config.Config, activity *ActivityService, log *logger.Logger) *EmailAccountService {
	return &EmailAccountService{
		repo:     repo,
		cfg:      cfg,
		activity: activity,
		log:      log,
	}
}

// EmailAccountResponse represents the response data for an email account.
// Tokens are never included.
type EmailAccountResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Provider       string     `json:"provider"`
	Address        string     `json:"address"`
	DisplayName    string     `json:"display_name"`
	Status         string     `json:"status"`
	LastPolledAt   *time.Time `json:"last_polled_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// ConnectStartResponse carries the provider consent URL the browser is sent to
type ConnectStartResponse struct {
	AuthURL string `json:"auth_url"`
}

// ConnectStart builds the provider consent URL for connecting a mailbox.
// The organization ID rides along in the OAuth state.
func (s *EmailAccountService) ConnectStart(provider models.EmailProvider, orgID uuid.UUID) (*ConnectStartResponse, error) {
	conf := s.oauthConfig(provider)
	if conf == nil {
		return nil, apperrors.ErrUnsupportedProvider
	}

	state := fmt.Sprintf("%s:%s", provider, orgID)
	url := conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	return &ConnectStartResponse{AuthURL: url}, nil
}

// ConnectCallback exchanges the authorization code, resolves the mailbox
// address from the provider and creates (or re-connects) the account.
func (s *EmailAccountService) ConnectCallback(ctx context.Context, provider models.EmailProvider, orgID uuid.UUID, code string) (*EmailAccountResponse, error) {
	conf := s.oauthConfig(provider)
	if conf == nil {
		return nil, apperrors.ErrUnsupportedProvider
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth exchange failed: %w", err)
	}

	address, displayName, err := s.resolveProfile(ctx, provider, conf, token)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.GetByAddress(address)
	if err == nil {
		// Re-connecting an existing mailbox refreshes its grant
		if account.OrganizationID != orgID {
			return nil, apperrors.ErrEmailAccountExists
		}
	} else {
		account = &models.EmailAccount{
			OrganizationID: orgID,
			Provider:       provider,
			Address:        address,
		}
	}

	account.DisplayName = displayName
	account.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		account.RefreshToken = token.RefreshToken
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		account.TokenExpiry = &expiry
	}
	account.Status = models.EmailAccountStatusConnected
	account.LastError = ""

	if account.ID == uuid.Nil {
		err = s.repo.Create(account)
	} else {
		err = s.repo.Update(account)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save email account: %w", err)
	}

	s.activity.Record(orgID, address, models.ActivityActionConnected, "email_account", &account.ID, map[string]any{
		"provider": string(provider),
		"address":  address,
	})

	return s.convertToResponse(account), nil
}

// GetByOrganization retrieves all email accounts for an organization
func (s *EmailAccountService) GetByOrganization(orgID uuid.UUID) ([]EmailAccountResponse, error) {
	accounts, err := s.repo.GetByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get email accounts: %w", err)
	}

	responses := make([]EmailAccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = *s.convertToResponse(&account)
	}

	return responses, nil
}

// GetByID retrieves an email account by ID
func (s *EmailAccountService) GetByID(id uuid.UUID) (*EmailAccountResponse, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrEmailAccountNotFound
	}

	return s.convertToResponse(account), nil
}

// Disconnect clears the account's tokens and marks it disconnected, keeping
// the row so received-document history stays attributable.
func (s *EmailAccountService) Disconnect(id uuid.UUID, actorEmail string) (*EmailAccountResponse, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrEmailAccountNotFound
	}

	account.AccessToken = ""
	account.RefreshToken = ""
	account.TokenExpiry = nil
	account.Status = models.EmailAccountStatusDisconnected
	account.LastError = ""

	if err := s.repo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to disconnect email account: %w", err)
	}

	s.activity.Record(account.OrganizationID, actorEmail, models.ActivityActionDisconnected, "email_account", &account.ID, map[string]any{
		"address": account.Address,
	})

	return s.convertToResponse(account), nil
}

// PollNow records a manual poll of the mailbox. Actual message retrieval
// happens through the ingest endpoint; this only stamps last_polled_at so
// the UI can show mailbox freshness.
func (s *EmailAccountService) PollNow(id uuid.UUID) (*EmailAccountResponse, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrEmailAccountNotFound
	}

	if account.Status != models.EmailAccountStatusConnected {
		return nil, apperrors.ErrEmailAccountReauthNeeded
	}

	now := time.Now()
	account.LastPolledAt = &now

	if err := s.repo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to record mailbox poll: %w", err)
	}

	return s.convertToResponse(account), nil
}

// Delete removes an email account entirely
func (s *EmailAccountService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrEmailAccountNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete email account: %w", err)
	}

	return nil
}

// resolveProfile asks the provider which mailbox the grant belongs to
func (s *EmailAccountService) resolveProfile(ctx context.Context, provider models.EmailProvider, conf *oauth2.Config, token *oauth2.Token) (address, displayName string, err error) {
	client := conf.Client(ctx, token)

	switch provider {
	case models.EmailProviderGoogle:
		resp, err := client.Get(gmailProfileURL)
		if err != nil {
			return "", "", fmt.Errorf("failed to fetch gmail profile: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", "", fmt.Errorf("gmail profile returned status %d", resp.StatusCode)
		}
		var profile struct {
			EmailAddress string `json:"emailAddress"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return "", "", fmt.Errorf("failed to decode gmail profile: %w", err)
		}
		return profile.EmailAddress, profile.EmailAddress, nil

	case models.EmailProviderMicrosoft:
		resp, err := client.Get(graphMeURL)
		if err != nil {
			return "", "", fmt.Errorf("failed to fetch graph profile: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", "", fmt.Errorf("graph profile returned status %d", resp.StatusCode)
		}
		var profile struct {
			Mail              string `json:"mail"`
			UserPrincipalName string `json:"userPrincipalName"`
			DisplayName       string `json:"displayName"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return "", "", fmt.Errorf("failed to decode graph profile: %w", err)
		}
		address := profile.Mail
		if address == "" {
			address = profile.UserPrincipalName
		}
		return address, profile.DisplayName, nil
	}

	return "", "", apperrors.ErrUnsupportedProvider
}

// oauthConfig returns the mailbox-scoped OAuth configuration for a provider
func (s *EmailAccountService) oauthConfig(provider models.EmailProvider) *oauth2.Config {
	redirect := s.cfg.BaseURL + "/api/v1/email-accounts/callback"

	switch provider {
	case models.EmailProviderGoogle:
		return &oauth2.Config{
			ClientID:     s.cfg.GoogleClientID,
			ClientSecret: s.cfg.GoogleClientSecret,
			RedirectURL:  redirect,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				"https://www.googleapis.com/auth/gmail.send",
				"https://www.googleapis.com/auth/gmail.readonly",
			},
		}
	case models.EmailProviderMicrosoft:
		return &oauth2.Config{
			ClientID:     s.cfg.MicrosoftClientID,
			ClientSecret: s.cfg.MicrosoftClientSecret,
			RedirectURL:  redirect,
			Endpoint:     microsoft.AzureADEndpoint(s.cfg.MicrosoftTenant),
			Scopes: []string{
				"https://graph.microsoft.com/Mail.Send",
				"https://graph.microsoft.com/Mail.Read",
				"https://graph.microsoft.com/User.Read",
				"offline_access",
			},
		}
	}
	return nil
}

// convertToResponse converts an email account model to response
func (s *EmailAccountService) convertToResponse(account *models.EmailAccount) *EmailAccountResponse {
	return &EmailAccountResponse{
		ID:             account.ID,
		OrganizationID: account.OrganizationID,
		Provider:       string(account.Provider),
		Address:        account.Address,
		DisplayName:    account.DisplayName,
		Status:         string(account.Status),
		LastPolledAt:   account.LastPolledAt,
		LastError:      account.LastError,
		CreatedAt:      account.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
