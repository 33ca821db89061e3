package storage

import "context"

// BlobStorage persists an opaque blob under a key and returns a URL the
// frontend can load it from. Implementations: local filesystem and S3.
type BlobStorage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
