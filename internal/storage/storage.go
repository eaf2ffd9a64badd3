package storage

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ObjectRefPrefix marks a workout image that lives in the bucket rather
// than at a public URL. The rest of the string is the object key.
const ObjectRefPrefix = "object:"

// ErrNotConfigured is returned when uploads are requested without a bucket.
var ErrNotConfigured = errors.New("object storage is not configured")

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// ObjectRef turns an object key into the stored image reference.
func ObjectRef(key string) string {
	return ObjectRefPrefix + key
}

// ParseObjectRef extracts the key from an image reference made by ObjectRef.
func ParseObjectRef(image string) (string, bool) {
	if !strings.HasPrefix(image, ObjectRefPrefix) {
		return "", false
	}
	key := strings.TrimPrefix(image, ObjectRefPrefix)
	return key, key != ""
}
