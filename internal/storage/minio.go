package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"docuflow-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// builtinStore implements Provider on the deployment's own S3-compatible
// bucket (MinIO, AWS S3, etc.). Objects are namespaced per organization by
// the key prefix the caller passes in folder.
type builtinStore struct {
	client *minio.Client
	bucket string
	prefix string // organization scope, e.g. the org UUID
}

// NewBuiltin creates the built-in object store client and ensures the bucket
// exists (creates it if missing).
func NewBuiltin(cfg *config.Config, prefix string) (Provider, error) {
	if cfg.MinIOEndpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.MinIOAccessKey == "" || cfg.MinIOSecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.MinIOBucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	store := &builtinStore{client: cli, bucket: cfg.MinIOBucket, prefix: strings.Trim(prefix, "/")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return store, nil
}

// ObjectKey builds the bucket key for a document: prefix/folder/fileName with
// empty segments dropped.
func ObjectKey(prefix, folder, fileName string) string {
	segments := make([]string, 0, 3)
	for _, s := range []string{prefix, folder, fileName} {
		if s = strings.Trim(s, "/"); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, "/")
}

func (s *builtinStore) Upload(ctx context.Context, folder, fileName string, r io.Reader, size int64, contentType string) (UploadResult, error) {
	key := ObjectKey(s.prefix, folder, fileName)
	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("put object %q: %w", key, err)
	}
	return UploadResult{Key: key, Size: info.Size}, nil
}

func (s *builtinStore) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *builtinStore) DownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %q: %w", key, err)
	}
	return u.String(), nil
}

func (s *builtinStore) Test(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}
