package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"companion-backend/internal/shared/storage/object"
)

// Store implements object.Store using the local filesystem.
type Store struct {
	baseDir string
	baseURL string
}

// New creates a local object store rooted at baseDir. Stored objects are
// served under baseURL (the router mounts /files onto baseDir).
func New(baseDir, baseURL string) *Store {
	if baseURL == "" {
		baseURL = "/files"
	}
	return &Store{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// SaveWithKey writes the reader to disk at the given key, overwriting any
// previous object.
func (s *Store) SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error) {
	_ = contentType
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	clean, err := cleanKey(storageKey)
	if err != nil {
		return 0, err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	return written, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := cleanKey(storageKey)
	if err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
}

// URL returns the serving path for a stored key.
func (s *Store) URL(storageKey string) string {
	return s.baseURL + "/" + strings.TrimLeft(storageKey, "/")
}

// BaseDir exposes the root directory so the router can serve it.
func (s *Store) BaseDir() string {
	return s.baseDir
}

func cleanKey(storageKey string) (string, error) {
	clean := filepath.ToSlash(filepath.Clean(storageKey))
	if clean == "." || strings.HasPrefix(clean, "..") || strings.HasPrefix(clean, "/") {
		return "", fmt.Errorf("invalid storage key")
	}
	return clean, nil
}

var _ object.Store = (*Store)(nil)
