// Package storage validates and persists uploaded resumes. The byte storage
// itself is pluggable: a local directory by default, or an S3-compatible
// bucket when MinIO is configured.
package storage

import (
	"context"
	"path/filepath"
	"strings"

	"lead_intake_backend/platform/config"
	"lead_intake_backend/platform/logger"

	"github.com/google/uuid"
)

// BlobStore persists resume content under a storage-unique name and
// returns the path recorded on the lead.
type BlobStore interface {
	Put(ctx context.Context, name string, content []byte, contentType string) (string, error)
}

// Service enforces the resume upload policy and writes accepted files.
type Service struct {
	store   BlobStore
	maxSize int64
	log     *logger.Logger
}

// NewService builds the resume storage service, selecting the MinIO backend
// when an endpoint is configured and the local disk backend otherwise.
func NewService(cfg config.UploadConfig, log *logger.Logger) (*Service, error) {
	var store BlobStore
	var err error

	if cfg.IsMinIOEnabled() {
		store, err = NewMinIOStore(cfg)
	} else {
		store, err = NewDiskStore(cfg.GetUploadDir())
	}
	if err != nil {
		return nil, err
	}

	return &Service{store: store, maxSize: cfg.GetMaxResumeSize(), log: log}, nil
}

// NewServiceWithStore builds a service around an explicit backend.
func NewServiceWithStore(store BlobStore, maxSize int64, log *logger.Logger) *Service {
	return &Service{store: store, maxSize: maxSize, log: log}
}

// EnsureReady verifies the backing store is provisioned. For the MinIO
// backend this creates the resume bucket if it is missing.
func (s *Service) EnsureReady(ctx context.Context) error {
	if m, ok := s.store.(*MinIOStore); ok {
		return m.EnsureBucketExists(ctx)
	}
	return nil
}

// SaveResume validates the upload and, on acceptance, persists it under a
// freshly generated name (uuid plus the original extension, never the
// original name) and returns the storage path. Nothing is written on
// rejection.
func (s *Service) SaveResume(ctx context.Context, filename string, content []byte) (string, error) {
	if err := ValidateResume(filename, int64(len(content)), s.maxSize); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext

	path, err := s.store.Put(ctx, name, content, extensionContentTypes[ext])
	if err != nil {
		return "", err
	}

	s.log.Info("resume stored", "path", path, "size", len(content))
	return path, nil
}
