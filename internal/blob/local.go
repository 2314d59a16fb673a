package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFS implements the Storage interface for the local filesystem
type LocalFS struct {
	baseDir string
}

// NewLocalFS creates a new local filesystem storage
func NewLocalFS(baseDir string) (*LocalFS, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("base dir is required for local image storage")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &LocalFS{baseDir: baseDir}, nil
}

// Put writes an object, creating parent directories as needed
func (lfs *LocalFS) Put(ctx context.Context, path string, data io.Reader) error {
	fullPath := lfs.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

// Reader returns a reader for the specified path
func (lfs *LocalFS) Reader(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(lfs.fullPath(path))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Delete removes an object
func (lfs *LocalFS) Delete(ctx context.Context, path string) error {
	err := os.Remove(lfs.fullPath(path))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Health verifies the base directory is accessible
func (lfs *LocalFS) Health(ctx context.Context) error {
	_, err := os.Stat(lfs.baseDir)
	return err
}

// fullPath joins the base directory with a sanitized relative path
func (lfs *LocalFS) fullPath(path string) string {
	clean := filepath.Clean("/" + strings.TrimPrefix(path, "/"))
	return filepath.Join(lfs.baseDir, clean)
}
