package storage

import (
	"bytes"
	"context"
	"fmt"

	"lead_intake_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore keeps resumes in an S3-compatible bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore creates a MinIO-backed resume store.
func NewMinIOStore(cfg config.UploadConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &MinIOStore{client: client, bucket: cfg.GetMinIOBucketResumes()}, nil
}

// EnsureBucketExists creates the resume bucket if it is missing.
func (m *MinIOStore) EnsureBucketExists(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", m.bucket, err)
	}
	return nil
}

// Put uploads the object and returns its bucket-qualified path.
func (m *MinIOStore) Put(ctx context.Context, name string, content []byte, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, name,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload resume: %w", err)
	}
	return m.bucket + "/" + name, nil
}

// Compile-time check that MinIOStore implements BlobStore.
var _ BlobStore = (*MinIOStore)(nil)
