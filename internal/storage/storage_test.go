package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docuflow-backend/internal/config"
	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix, folder, file string
		want                 string
	}{
		{"org-1", "2026/03", "cv.pdf", "org-1/2026/03/cv.pdf"},
		{"org-1", "", "cv.pdf", "org-1/cv.pdf"},
		{"", "/a/b/", "cv.pdf", "a/b/cv.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ObjectKey(tt.prefix, tt.folder, tt.file))
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	factory := NewFactory(&config.Config{})
	sc := &models.StorageConfig{Provider: models.StorageProvider("dropbox")}

	_, err := factory.ForConfig(sc, nil)

	assert.ErrorIs(t, err, apperrors.ErrUnsupportedProvider)
}

func TestFactorySharePointRequiresSiteID(t *testing.T) {
	factory := NewFactory(&config.Config{})
	sc := &models.StorageConfig{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Provider:  models.StorageProviderSharePoint,
	}

	_, err := factory.ForConfig(sc, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "site id")
}

// oauthSession retry policy: a 401 triggers exactly one token refresh and
// retry; a second 401 surfaces ErrStorageProviderAuthFailed.
func TestOAuthSessionRefreshOnceOn401(t *testing.T) {
	var apiCalls, refreshCalls int

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer apiServer.Close()

	conf := &oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: tokenServer.URL},
	}
	var persisted *oauth2.Token
	session := newOAuthSession(conf,
		&oauth2.Token{AccessToken: "stale", RefreshToken: "refresh-me"},
		func(tok *oauth2.Token) { persisted = tok },
	)

	resp, err := session.do(context.Background(), func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, apiServer.URL, nil)
	})

	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, apiCalls)
	assert.Equal(t, 1, refreshCalls)
	require.NotNil(t, persisted)
	assert.Equal(t, "fresh", persisted.AccessToken)
	// Providers that rotate without returning a new refresh token keep the old one
	assert.Equal(t, "refresh-me", persisted.RefreshToken)
}

func TestOAuthSessionAuthFailedAfterRetry(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"still-bad","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer apiServer.Close()

	conf := &oauth2.Config{Endpoint: oauth2.Endpoint{TokenURL: tokenServer.URL}}
	session := newOAuthSession(conf, &oauth2.Token{AccessToken: "stale", RefreshToken: "r"}, nil)

	_, err := session.do(context.Background(), func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, apiServer.URL, nil)
	})

	assert.ErrorIs(t, err, apperrors.ErrStorageProviderAuthFailed)
}

func TestOAuthSessionNoRefreshToken(t *testing.T) {
	session := newOAuthSession(&oauth2.Config{}, &oauth2.Token{}, nil)

	_, err := session.do(context.Background(), func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, "http://unused.invalid", nil)
	})

	assert.ErrorIs(t, err, apperrors.ErrStorageProviderAuthFailed)
}

func TestEscapeItemPath(t *testing.T) {
	assert.Equal(t, "a/b%20c/d.pdf", escapeItemPath("a/b c/d.pdf"))
}

func TestGraphItemPath(t *testing.T) {
	g := &graphDrive{drive: "/me/drive", rootPath: "Docuflow"}
	assert.Equal(t, "Docuflow/2026/cv.pdf", g.itemPath("2026", "cv.pdf"))

	g = &graphDrive{drive: "/me/drive"}
	assert.Equal(t, "cv.pdf", g.itemPath("", "cv.pdf"))
}

func TestAzureBlobRequiresCredentials(t *testing.T) {
	_, err := NewAzureBlob("", "", "")
	assert.Error(t, err)

	_, err = NewAzureBlob("acct", "!!!not-base64!!!", "container")
	assert.Error(t, err)
}

func TestAzureBlobDownloadURL(t *testing.T) {
	provider, err := NewAzureBlob("acct", "a2V5", "docs")
	require.NoError(t, err)

	u, err := provider.DownloadURL(context.Background(), "2026/cv.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://acct.blob.core.windows.net/docs/2026/cv.pdf", u)
	assert.True(t, strings.HasPrefix(u, "https://acct.blob.core.windows.net/"))
}
