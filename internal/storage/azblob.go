package storage

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	apperrors "docuflow-backend/internal/errors"
)

// azureBlob implements Provider on the Azure Blob REST API with SharedKey
// authentication. Keys are blob names inside the configured container.
type azureBlob struct {
	account   string
	key       []byte
	container string
	client    *http.Client
}

// NewAzureBlob creates an Azure Blob provider from account credentials. The
// account key is the base64-encoded shared key from the portal.
func NewAzureBlob(account, accountKey, container string) (Provider, error) {
	if account == "" || accountKey == "" || container == "" {
		return nil, fmt.Errorf("azure blob requires account name, key and container")
	}
	key, err := base64.StdEncoding.DecodeString(accountKey)
	if err != nil {
		return nil, fmt.Errorf("decode account key: %w", err)
	}
	return &azureBlob{
		account:   account,
		key:       key,
		container: container,
		client:    http.DefaultClient,
	}, nil
}

func (a *azureBlob) blobURL(key string) string {
	return fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", a.account, a.container, escapeItemPath(key))
}

func (a *azureBlob) Upload(ctx context.Context, folder, fileName string, r io.Reader, size int64, contentType string) (UploadResult, error) {
	key := ObjectKey("", folder, fileName)
	content, err := io.ReadAll(r)
	if err != nil {
		return UploadResult{}, fmt.Errorf("read content: %w", err)
	}

	endpoint := a.blobURL(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(content))
	if err != nil {
		return UploadResult{}, err
	}
	req.ContentLength = int64(len(content))
	req.Header.Set("x-ms-blob-type", "BlockBlob")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := a.doSigned(req, len(content), contentType)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return UploadResult{}, a.blobError("put blob", resp)
	}
	return UploadResult{Key: key, WebURL: endpoint, Size: int64(len(content))}, nil
}

func (a *azureBlob) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, a.blobURL(key), nil)
	if err != nil {
		return err
	}
	resp, err := a.doSigned(req, 0, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		return a.blobError("delete blob", resp)
	}
	return nil
}

// DownloadURL returns the blob's direct URL; access is governed by the
// container's public access level.
func (a *azureBlob) DownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return a.blobURL(key), nil
}

func (a *azureBlob) Test(ctx context.Context) error {
	endpoint := fmt.Sprintf("https://%s.blob.core.windows.net/%s?restype=container", a.account, a.container)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := a.doSigned(req, 0, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return a.blobError("get container", resp)
	}
	return nil
}

// doSigned stamps the request with the x-ms headers and SharedKey signature
// and executes it.
func (a *azureBlob) doSigned(req *http.Request, contentLength int, contentType string) (*http.Response, error) {
	req.Header.Set("x-ms-date", time.Now().UTC().Format(http.TimeFormat))
	req.Header.Set("x-ms-version", "2021-08-06")

	signature, err := a.sign(req, contentLength, contentType)
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("SharedKey %s:%s", a.account, signature))

	return a.client.Do(req)
}

// sign builds the SharedKey string-to-sign for the blob service. Only the
// headers this client sets are canonicalized.
func (a *azureBlob) sign(req *http.Request, contentLength int, contentType string) (string, error) {
	lengthStr := ""
	if contentLength > 0 {
		lengthStr = fmt.Sprintf("%d", contentLength)
	}

	canonicalHeaders := canonicalizeMSHeaders(req.Header)
	canonicalResource := a.canonicalResource(req.URL)

	stringToSign := strings.Join([]string{
		req.Method,
		"",          // Content-Encoding
		"",          // Content-Language
		lengthStr,   // Content-Length
		"",          // Content-MD5
		contentType, // Content-Type
		"",          // Date (x-ms-date is used instead)
		"",          // If-Modified-Since
		"",          // If-Match
		"",          // If-None-Match
		"",          // If-Unmodified-Since
		"",          // Range
		canonicalHeaders + canonicalResource,
	}, "\n")

	mac := hmac.New(sha256.New, a.key)
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

func canonicalizeMSHeaders(h http.Header) string {
	var names []string
	for name := range h {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, "x-ms-") {
			names = append(names, lower)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(strings.TrimSpace(h.Get(name)))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *azureBlob) canonicalResource(u *url.URL) string {
	resource := "/" + a.account + u.EscapedPath()

	query := u.Query()
	if len(query) == 0 {
		return resource
	}
	var params []string
	for name := range query {
		params = append(params, strings.ToLower(name))
	}
	sort.Strings(params)

	var b strings.Builder
	b.WriteString(resource)
	for _, name := range params {
		values := query[name]
		sort.Strings(values)
		b.WriteString("\n")
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(strings.Join(values, ","))
	}
	return b.String()
}

func (a *azureBlob) blobError(op string, resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: azure %s: status %d", apperrors.ErrStorageProviderAuthFailed, op, resp.StatusCode)
	}
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("azure %s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(detail)))
}
