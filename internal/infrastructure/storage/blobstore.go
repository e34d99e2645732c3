// Package storage persists attachment blobs. The database keeps only the
// storage key; the bytes live behind the BlobStore.
package storage

import (
	"context"
	"io"
)

type BlobStore interface {
	// Put stores the blob and returns the storage key to persist.
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
	// Get opens the blob for reading. The caller closes it.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
