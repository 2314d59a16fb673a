// Package blob stores property images behind a small storage
// interface with local-filesystem and S3 backends.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"property-engine/internal/config"
)

// ErrNotFound indicates the requested object does not exist
var ErrNotFound = errors.New("object not found")

// Storage defines the interface for image blob operations
type Storage interface {
	Put(ctx context.Context, path string, data io.Reader) error
	Reader(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Health(ctx context.Context) error
}

// New creates a storage backend from the image configuration
func New(cfg config.ImageConfig) (Storage, error) {
	switch cfg.Backend {
	case "local", "filesystem", "fs":
		return NewLocalFS(cfg.BaseDir)
	case "s3":
		return NewS3FS(cfg)
	default:
		return nil, fmt.Errorf("unsupported image backend: %s", cfg.Backend)
	}
}
