// Package covers uploads book cover images to blob storage and hands back a
// stable retrieval URL. Upload failures are plain errors: they belong to the
// form, not to the request-lifecycle error taxonomy.
package covers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"shelfdesk/internal/util"
)

// MaxSizeBytes caps cover uploads at 5 MB.
const MaxSizeBytes = 5 << 20

var (
	// ErrTooLarge means the file exceeds MaxSizeBytes.
	ErrTooLarge = errors.New("cover image exceeds 5MB")
	// ErrBadType means the file is not a supported image format.
	ErrBadType = errors.New("cover image must be jpeg, png or webp")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ObjectStore is the blob storage collaborator.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Uploader validates and stores cover images.
type Uploader struct {
	store     ObjectStore
	urlExpiry time.Duration
}

// NewUploader builds an uploader on top of an object store.
func NewUploader(store ObjectStore, urlExpiry time.Duration) *Uploader {
	if urlExpiry <= 0 {
		urlExpiry = 24 * time.Hour
	}
	return &Uploader{store: store, urlExpiry: urlExpiry}
}

// Upload validates the image locally, stores it, and returns a retrieval
// URL. Validation happens before the store is touched, so a rejected file
// costs no network call.
func (u *Uploader) Upload(ctx context.Context, bookID string, r io.Reader) (string, error) {
	// Read one byte past the cap to detect oversize without buffering
	// arbitrarily large input.
	data, err := io.ReadAll(io.LimitReader(r, MaxSizeBytes+1))
	if err != nil {
		return "", fmt.Errorf("read cover: %w", err)
	}
	if len(data) > MaxSizeBytes {
		return "", ErrTooLarge
	}
	contentType := http.DetectContentType(data)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: got %s", ErrBadType, contentType)
	}

	key := "covers/" + bookID + "-" + util.NewID(16) + ext
	if err := u.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", fmt.Errorf("store cover: %w", err)
	}
	url, err := u.store.PresignGet(ctx, key, u.urlExpiry)
	if err != nil {
		return "", fmt.Errorf("presign cover: %w", err)
	}
	return url, nil
}
