// Package storage contains the file-storage provider abstraction documents
// are routed into: the built-in S3-compatible object store plus Google Drive,
// OneDrive, SharePoint and Azure Blob clients.
package storage

import (
	"context"
	"io"
	"time"
)

// UploadResult describes a stored object.
type UploadResult struct {
	// Key is the provider-specific identifier used for later operations:
	// object key (builtin, azure), file ID (drive), or item path (graph).
	Key    string
	WebURL string
	Size   int64
}

// Provider is a connected file-storage destination. Implementations must be
// safe for concurrent use.
type Provider interface {
	// Upload stores the content under folder/fileName, creating intermediate
	// folders where the backend has real folders.
	Upload(ctx context.Context, folder, fileName string, r io.Reader, size int64, contentType string) (UploadResult, error)
	// Delete removes a stored object by key.
	Delete(ctx context.Context, key string) error
	// DownloadURL returns a URL the document can be fetched or viewed at.
	// The built-in store presigns with the given expiry; cloud providers
	// return their web URL and ignore expiry.
	DownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Test verifies the connection and credentials with a cheap call.
	Test(ctx context.Context) error
}
