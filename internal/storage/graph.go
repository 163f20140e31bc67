package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const graphAPIBase = "https://graph.microsoft.com/v1.0"

// graphDrive implements Provider on the Microsoft Graph drive API. It serves
// both OneDrive (the signed-in user's drive) and SharePoint (a site drive);
// the two differ only in the drive base path. Keys are drive item paths
// relative to the drive root, e.g. "invoices/2026/march.pdf".
type graphDrive struct {
	session  *oauthSession
	drive    string // "/me/drive" or "/sites/{siteID}/drive"
	rootPath string
}

// NewOneDrive creates a provider on the account's own OneDrive.
func NewOneDrive(session *oauthSession, rootPath string) Provider {
	return &graphDrive{session: session, drive: "/me/drive", rootPath: strings.Trim(rootPath, "/")}
}

// NewSharePoint creates a provider on a SharePoint site's default drive.
func NewSharePoint(session *oauthSession, siteID, rootPath string) Provider {
	return &graphDrive{
		session:  session,
		drive:    "/sites/" + url.PathEscape(siteID) + "/drive",
		rootPath: strings.Trim(rootPath, "/"),
	}
}

// graphSimpleUploadLimit is the Graph cutoff for single-request uploads;
// larger files go through an upload session.
const graphSimpleUploadLimit = 4 << 20

func (g *graphDrive) Upload(ctx context.Context, folder, fileName string, r io.Reader, size int64, contentType string) (UploadResult, error) {
	itemPath := g.itemPath(folder, fileName)
	content, err := io.ReadAll(r)
	if err != nil {
		return UploadResult{}, fmt.Errorf("read content: %w", err)
	}

	if len(content) <= graphSimpleUploadLimit {
		return g.simpleUpload(ctx, itemPath, content, contentType)
	}
	return g.sessionUpload(ctx, itemPath, content)
}

func (g *graphDrive) simpleUpload(ctx context.Context, itemPath string, content []byte, contentType string) (UploadResult, error) {
	endpoint := graphAPIBase + g.drive + "/root:/" + escapeItemPath(itemPath) + ":/content"

	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return req, nil
	})
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return UploadResult{}, graphError("upload", resp)
	}
	return g.decodeItem(resp.Body, itemPath, int64(len(content)))
}

// sessionUpload pushes the whole file as a single ranged PUT against an
// upload session; Graph accepts ranges up to 60 MiB which comfortably covers
// the organization attachment limit.
func (g *graphDrive) sessionUpload(ctx context.Context, itemPath string, content []byte) (UploadResult, error) {
	sessionEndpoint := graphAPIBase + g.drive + "/root:/" + escapeItemPath(itemPath) + ":/createUploadSession"

	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, sessionEndpoint, strings.NewReader(`{}`))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return UploadResult{}, err
	}
	var session struct {
		UploadURL string `json:"uploadUrl"`
	}
	err = json.NewDecoder(resp.Body).Decode(&session)
	resp.Body.Close()
	if err != nil || session.UploadURL == "" {
		return UploadResult{}, fmt.Errorf("create upload session: %v", err)
	}

	// The session URL is pre-authenticated; no bearer header is sent.
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, session.UploadURL, bytes.NewReader(content))
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Range", fmt.Sprintf("bytes 0-%d/%d", len(content)-1, len(content)))
	req.ContentLength = int64(len(content))

	uploadResp, err := http.DefaultClient.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer uploadResp.Body.Close()
	if uploadResp.StatusCode != http.StatusOK && uploadResp.StatusCode != http.StatusCreated {
		return UploadResult{}, graphError("session upload", uploadResp)
	}
	return g.decodeItem(uploadResp.Body, itemPath, int64(len(content)))
}

func (g *graphDrive) decodeItem(body io.Reader, itemPath string, size int64) (UploadResult, error) {
	var item struct {
		WebURL string `json:"webUrl"`
	}
	if err := json.NewDecoder(body).Decode(&item); err != nil {
		return UploadResult{}, fmt.Errorf("decode item response: %w", err)
	}
	return UploadResult{Key: itemPath, WebURL: item.WebURL, Size: size}, nil
}

func (g *graphDrive) Delete(ctx context.Context, key string) error {
	endpoint := graphAPIBase + g.drive + "/root:/" + escapeItemPath(key)

	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodDelete, endpoint, nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return graphError("delete", resp)
	}
	return nil
}

func (g *graphDrive) DownloadURL(ctx context.Context, key string, _ time.Duration) (string, error) {
	endpoint := graphAPIBase + g.drive + "/root:/" + escapeItemPath(key)

	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", graphError("get item", resp)
	}
	var item struct {
		WebURL string `json:"webUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return "", fmt.Errorf("decode item response: %w", err)
	}
	return item.WebURL, nil
}

func (g *graphDrive) Test(ctx context.Context) error {
	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, graphAPIBase+g.drive+"/root", nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return graphError("get root", resp)
	}
	return nil
}

func (g *graphDrive) itemPath(folder, fileName string) string {
	segments := make([]string, 0, 3)
	for _, s := range []string{g.rootPath, folder, fileName} {
		if s = strings.Trim(s, "/"); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, "/")
}

func escapeItemPath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func graphError(op string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("graph %s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(detail)))
}
