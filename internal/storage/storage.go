// Package storage holds export archives in an S3-compatible object store.
package storage

import (
	"context"
	"io"
	"time"
)

// UploadOptions describe an archive being written.
// Size is the exact number of bytes, or -1 when unknown.
type UploadOptions struct {
	Size        int64
	ContentType string
	PageTitle   string
}

// Archive describes one stored export.
type Archive struct {
	Key       string    `json:"key"`
	PageID    string    `json:"pageId"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Storage keeps page exports in an object store.
type Storage interface {
	// Put uploads r under key.
	Put(ctx context.Context, key string, r io.Reader, opt UploadOptions) (Archive, error)
	// Get streams the archive stored under key. A missing key yields ErrObjectNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns the archives taken of pageID, newest first.
	List(ctx context.Context, pageID string) ([]Archive, error)
	// Delete removes the archive stored under key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
