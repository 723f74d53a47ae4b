package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/config"
)

var ErrInvalidPath = errors.New("invalid object path")

// FileStorage is a write-once blob store for proof images and avatars.
type FileStorage interface {
	// Upload writes the object and returns its storage reference
	Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error)

	Delete(ctx context.Context, key string) error

	// GetURL returns a URL the front end can load the object from
	GetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// NewStorageFromConfig creates a FileStorage implementation based on STORAGE_TYPE.
func NewStorageFromConfig(ctx context.Context, cfg config.StorageConfig) (FileStorage, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStorage(cfg.BaseURL), nil
	case "s3":
		return NewS3Storage(ctx, cfg)
	case "local":
		return NewLocalStorage(cfg.BasePath, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// cleanKey normalises a slash separated object key and rejects traversal.
func cleanKey(key string) (string, error) {
	k := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	k = strings.TrimPrefix(k, "/")
	if k == "" || k == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	return k, nil
}
