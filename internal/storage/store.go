package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a stored photo does not exist.
var ErrNotFound = errors.New("file not found")

// AssetStore persists decoded photo payloads into a single flat directory.
// Files are write-once: the store never overwrites or deletes, and every
// generated filename carries a random suffix so concurrent submissions in
// the same millisecond cannot collide.
type AssetStore struct {
	root string
}

// NewAssetStore creates the storage root if missing and returns the store.
func NewAssetStore(root string) (*AssetStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &AssetStore{root: root}, nil
}

// Store writes data under a generated filename and returns that filename.
// The hint (pallet category or photo name) is embedded for readability; the
// original display name is persisted as row metadata, not recovered from
// the filename.
func (s *AssetStore) Store(data []byte, hint string) (string, error) {
	filename := generateFilename(hint)
	if err := os.WriteFile(filepath.Join(s.root, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo %s: %w", filename, err)
	}
	return filename, nil
}

// Open returns a reader over a stored file, or ErrNotFound.
func (s *AssetStore) Open(filename string) (io.ReadCloser, error) {
	path, err := s.Path(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Path resolves a stored filename to its absolute location. Names carrying
// path separators are rejected so callers cannot escape the storage root.
func (s *AssetStore) Path(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || filename != filepath.Base(filename) {
		return "", ErrNotFound
	}
	return filepath.Join(s.root, filename), nil
}

func generateFilename(hint string) string {
	suffix := uuid.NewString()[:8]
	hint = sanitizeHint(hint)
	if hint == "" {
		return fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), suffix)
	}
	return fmt.Sprintf("%d-%s-%s.jpg", time.Now().UnixMilli(), hint, suffix)
}

// sanitizeHint keeps filenames portable: spaces become dashes and path
// separators are stripped.
func sanitizeHint(hint string) string {
	hint = strings.TrimSpace(hint)
	hint = strings.ReplaceAll(hint, " ", "-")
	hint = strings.ReplaceAll(hint, string(os.PathSeparator), "")
	hint = strings.ReplaceAll(hint, "/", "")
	return hint
}
