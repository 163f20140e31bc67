package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

const (
	driveAPIBase    = "https://www.googleapis.com/drive/v3"
	driveUploadURL  = "https://www.googleapis.com/upload/drive/v3/files?uploadType=multipart&fields=id,webViewLink"
	driveFolderMime = "application/vnd.google-apps.folder"
)

// googleDrive implements Provider on the Drive v3 REST API. Folder paths are
// resolved segment by segment under the configured root folder, creating
// folders that do not exist yet. Keys are Drive file IDs.
type googleDrive struct {
	session *oauthSession
	rootID  string // parent folder ID; "root" when unset
}

// NewGoogleDrive creates a Drive-backed provider.
func NewGoogleDrive(session *oauthSession, rootID string) Provider {
	if rootID == "" {
		rootID = "root"
	}
	return &googleDrive{session: session, rootID: rootID}
}

func (g *googleDrive) Upload(ctx context.Context, folder, fileName string, r io.Reader, size int64, contentType string) (UploadResult, error) {
	parentID, err := g.resolveFolder(ctx, folder)
	if err != nil {
		return UploadResult{}, err
	}

	// The multipart body is buffered so the 401-retry can resend it;
	// attachment sizes are bounded by the organization limit.
	content, err := io.ReadAll(r)
	if err != nil {
		return UploadResult{}, fmt.Errorf("read content: %w", err)
	}

	metadata := map[string]interface{}{
		"name":    fileName,
		"parents": []string{parentID},
	}
	body, boundary, err := driveMultipartBody(metadata, content, contentType)
	if err != nil {
		return UploadResult{}, err
	}

	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, driveUploadURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "multipart/related; boundary="+boundary)
		return req, nil
	})
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UploadResult{}, driveError("upload", resp)
	}

	var created struct {
		ID          string `json:"id"`
		WebViewLink string `json:"webViewLink"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return UploadResult{}, fmt.Errorf("decode upload response: %w", err)
	}
	return UploadResult{Key: created.ID, WebURL: created.WebViewLink, Size: int64(len(content))}, nil
}

func (g *googleDrive) Delete(ctx context.Context, key string) error {
	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodDelete, driveAPIBase+"/files/"+url.PathEscape(key), nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return driveError("delete", resp)
	}
	return nil
}

func (g *googleDrive) DownloadURL(ctx context.Context, key string, _ time.Duration) (string, error) {
	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, driveAPIBase+"/files/"+url.PathEscape(key)+"?fields=webViewLink", nil)
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", driveError("get file", resp)
	}
	var file struct {
		WebViewLink string `json:"webViewLink"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return "", fmt.Errorf("decode file response: %w", err)
	}
	return file.WebViewLink, nil
}

func (g *googleDrive) Test(ctx context.Context) error {
	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, driveAPIBase+"/about?fields=user", nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return driveError("about", resp)
	}
	return nil
}

// resolveFolder walks the folder path under the root, creating missing
// segments, and returns the deepest folder ID.
func (g *googleDrive) resolveFolder(ctx context.Context, folder string) (string, error) {
	parentID := g.rootID
	for _, segment := range strings.Split(folder, "/") {
		if segment == "" {
			continue
		}
		id, err := g.findFolder(ctx, parentID, segment)
		if err != nil {
			return "", err
		}
		if id == "" {
			id, err = g.createFolder(ctx, parentID, segment)
			if err != nil {
				return "", err
			}
		}
		parentID = id
	}
	return parentID, nil
}

func (g *googleDrive) findFolder(ctx context.Context, parentID, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`), parentID, driveFolderMime)
	endpoint := driveAPIBase + "/files?fields=files(id)&q=" + url.QueryEscape(query)

	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", driveError("list folders", resp)
	}

	var list struct {
		Files []struct {
			ID string `json:"id"`
		} `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("decode folder list: %w", err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].ID, nil
}

func (g *googleDrive) createFolder(ctx context.Context, parentID, name string) (string, error) {
	payload, _ := json.Marshal(map[string]interface{}{
		"name":     name,
		"mimeType": driveFolderMime,
		"parents":  []string{parentID},
	})

	resp, err := g.session.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, driveAPIBase+"/files?fields=id", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", driveError("create folder", resp)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode folder response: %w", err)
	}
	return created.ID, nil
}

func driveMultipartBody(metadata map[string]interface{}, content []byte, contentType string) (body []byte, boundary string, err error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := writer.CreatePart(metaHeader)
	if err != nil {
		return nil, "", err
	}
	if err := json.NewEncoder(metaPart).Encode(metadata); err != nil {
		return nil, "", err
	}

	fileHeader := textproto.MIMEHeader{}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileHeader.Set("Content-Type", contentType)
	filePart, err := writer.CreatePart(fileHeader)
	if err != nil {
		return nil, "", err
	}
	if _, err := filePart.Write(content); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), writer.Boundary(), nil
}

func driveError(op string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("drive %s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(detail)))
}
