package object

import (
	"context"
	"io"
)

// Store defines the contract for saving and retrieving binary objects at
// caller-chosen keys. Saves overwrite: generation keys are deterministic and
// re-generation replaces the previous object.
type Store interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	// URL returns the public location for a stored key.
	URL(storageKey string) string
}
