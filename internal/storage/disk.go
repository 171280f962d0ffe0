package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore writes resumes to a local upload directory. Names are generated
// before the write and never reused, so the directory is append-only and
// concurrent writes cannot collide.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Put writes the file and returns its path relative to the working directory.
func (d *DiskStore) Put(_ context.Context, name string, content []byte, _ string) (string, error) {
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write resume: %w", err)
	}
	return path, nil
}

// Compile-time check that DiskStore implements BlobStore.
var _ BlobStore = (*DiskStore)(nil)
