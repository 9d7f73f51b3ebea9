package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded artifacts live. The local backend is
// the fallback; a remote backend may be configured as the primary and the
// file service degrades to local when it fails.
type FileStorage interface {
	// Upload stores a file and returns the storage key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL generates a publicly addressable URL
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
