package storage

import (
	"context"
	"fmt"
	"net/http"

	apperrors "docuflow-backend/internal/errors"

	"golang.org/x/oauth2"
)

// oauthSession holds the OAuth token pair for a cloud storage provider and
// handles the refresh-once-on-401 policy: an expired token is refreshed
// before the call, a 401 response triggers exactly one refresh and retry,
// and a second failure surfaces ErrStorageProviderAuthFailed so the caller
// can flag the config for reconnection.
type oauthSession struct {
	conf      *oauth2.Config
	token     *oauth2.Token
	onRefresh func(*oauth2.Token) // persists rotated tokens; may be nil
	client    *http.Client
}

func newOAuthSession(conf *oauth2.Config, token *oauth2.Token, onRefresh func(*oauth2.Token)) *oauthSession {
	return &oauthSession{
		conf:      conf,
		token:     token,
		onRefresh: onRefresh,
		client:    http.DefaultClient,
	}
}

func (s *oauthSession) accessToken(ctx context.Context) (string, error) {
	if s.token.Valid() {
		return s.token.AccessToken, nil
	}
	return s.refresh(ctx)
}

func (s *oauthSession) refresh(ctx context.Context) (string, error) {
	if s.token.RefreshToken == "" {
		return "", fmt.Errorf("%w: no refresh token stored", apperrors.ErrStorageProviderAuthFailed)
	}
	tok, err := s.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: s.token.RefreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStorageProviderAuthFailed, err)
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = s.token.RefreshToken
	}
	s.token = tok
	if s.onRefresh != nil {
		s.onRefresh(tok)
	}
	return tok.AccessToken, nil
}

// do executes the request produced by build with a bearer token, retrying
// once with a freshly refreshed token when the provider answers 401. build
// is called per attempt so request bodies can be re-created.
func (s *oauthSession) do(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.attempt(ctx, build, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	token, err = s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	resp, err = s.attempt(ctx, build, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, apperrors.ErrStorageProviderAuthFailed
	}
	return resp, nil
}

func (s *oauthSession) attempt(ctx context.Context, build func() (*http.Request, error), token string) (*http.Response, error) {
	req, err := build()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+token)
	return s.client.Do(req)
}
