package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"docuflow-backend/internal/config"
	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

const (
	gmailSendURL  = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"
	graphSendURL  = "https://graph.microsoft.com/v1.0/me/sendMail"
	mailHTTPLimit = 30 * time.Second
)

// MailSenderInterface sends a plain-text message through a connected account.
// Faked in tests.
type MailSenderInterface interface {
	Send(ctx context.Context, account *models.EmailAccount, to, subject, body string) error
}

// MailService sends outbound mail (document requests, reminders) through the
// organization's connected Gmail or Outlook account.
type MailService struct {
	cfg      *config.Config
	accounts repository.EmailAccountRepositoryInterface
	client   *http.Client
	log      *logger.Logger
}

// NewMailService creates a new mail service
func NewMailService(cfg *config.Config, accounts repository.EmailAccountRepositoryInterface, log *logger.Logger) *MailService {
	return &MailService{
		cfg:      cfg,
		accounts: accounts,
		client:   &http.Client{Timeout: mailHTTPLimit},
		log:      log,
	}
}

// Send delivers one message through the account's provider. An expired token
// is refreshed first; an unexpected 401 triggers one refresh and retry before
// the account is flagged for re-authorization.
func (s *MailService) Send(ctx context.Context, account *models.EmailAccount, to, subject, body string) error {
	if account.Status != models.EmailAccountStatusConnected {
		return apperrors.ErrEmailAccountReauthNeeded
	}

	if account.TokenExpired(time.Now()) {
		if err := s.refresh(ctx, account); err != nil {
			return err
		}
	}

	status, err := s.deliver(ctx, account, to, subject, body)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		if err := s.refresh(ctx, account); err != nil {
			return err
		}
		status, err = s.deliver(ctx, account, to, subject, body)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			s.flagReauth(account, "provider rejected refreshed token")
			return apperrors.ErrEmailAccountReauthNeeded
		}
	}
	if status >= 300 {
		return fmt.Errorf("mail provider returned status %d", status)
	}
	return nil
}

// deliver performs one send attempt, returning the provider's status code
func (s *MailService) deliver(ctx context.Context, account *models.EmailAccount, to, subject, body string) (int, error) {
	var (
		url     string
		payload []byte
		err     error
	)
	switch account.Provider {
	case models.EmailProviderGoogle:
		url = gmailSendURL
		payload, err = gmailPayload(account.Address, to, subject, body)
	case models.EmailProviderMicrosoft:
		url = graphSendURL
		payload, err = graphPayload(to, subject, body)
	default:
		return 0, apperrors.ErrUnsupportedProvider
	}
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// refresh exchanges the account's refresh token for a new access token and
// persists it. A failed refresh flags the account for re-authorization.
func (s *MailService) refresh(ctx context.Context, account *models.EmailAccount) error {
	if account.RefreshToken == "" {
		s.flagReauth(account, "no refresh token on file")
		return apperrors.ErrEmailAccountReauthNeeded
	}

	conf := s.oauthConfig(account.Provider)
	if conf == nil {
		return apperrors.ErrUnsupportedProvider
	}

	src := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: account.RefreshToken})
	token, err := src.Token()
	if err != nil {
		s.flagReauth(account, err.Error())
		return apperrors.ErrEmailAccountReauthNeeded
	}

	account.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		account.RefreshToken = token.RefreshToken
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		account.TokenExpiry = &expiry
	}
	if err := s.accounts.Update(account); err != nil {
		s.log.WithError(err).WithField("email_account_id", account.ID.String()).Warn("failed to persist refreshed mail token")
	}
	return nil
}

// flagReauth marks the account as needing a fresh OAuth grant
func (s *MailService) flagReauth(account *models.EmailAccount, reason string) {
	account.Status = models.EmailAccountStatusReauthRequired
	account.LastError = reason
	if err := s.accounts.Update(account); err != nil {
		s.log.WithError(err).WithField("email_account_id", account.ID.String()).Warn("failed to flag email account for reauth")
	}
}

// oauthConfig returns the provider's token endpoint configuration
func (s *MailService) oauthConfig(provider models.EmailProvider) *oauth2.Config {
	switch provider {
	case models.EmailProviderGoogle:
		return &oauth2.Config{
			ClientID:     s.cfg.GoogleClientID,
			ClientSecret: s.cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
		}
	case models.EmailProviderMicrosoft:
		return &oauth2.Config{
			ClientID:     s.cfg.MicrosoftClientID,
			ClientSecret: s.cfg.MicrosoftClientSecret,
			Endpoint:     microsoft.AzureADEndpoint(s.cfg.MicrosoftTenant),
			Scopes:       []string{"https://graph.microsoft.com/Mail.Send", "offline_access"},
		}
	}
	return nil
}

// gmailPayload builds the Gmail API send body: an RFC 822 message,
// base64url-encoded under the "raw" key.
func gmailPayload(from, to, subject, body string) ([]byte, error) {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	return json.Marshal(map[string]string{
		"raw": base64.URLEncoding.EncodeToString(msg.Bytes()),
	})
}

// graphPayload builds the Microsoft Graph sendMail body
func graphPayload(to, subject, body string) ([]byte, error) {
	return json.Marshal(map[string]any{
		"message": map[string]any{
			"subject": subject,
			"body": map[string]string{
				"contentType": "Text",
				"content":     body,
			},
			"toRecipients": []map[string]any{
				{"emailAddress": map[string]string{"address": to}},
			},
		},
		"saveToSentItems": true,
	})
}
