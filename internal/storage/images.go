package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rentmart/rentmart/internal/logger"
)

// ImageStore persists uploaded product images on the local filesystem.
// Files are stored under a timestamp-prefixed name so that uploads with the
// same original filename never collide.
type ImageStore struct {
	dir string
}

// NewImageStore creates the uploads directory if needed and returns a store.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save writes the uploaded file and returns the stored filename.
func (s *ImageStore) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Do not leave a truncated file behind.
		os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}

	logger.Log.Infow("image stored", "name", name)
	return name, nil
}

// Remove deletes a stored image file. Missing files are not an error, so a
// row that references an already-collected file can still be cleaned up.
func (s *ImageStore) Remove(name string) error {
	if name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image file: %w", err)
	}

	logger.Log.Infow("image removed", "name", name)
	return nil
}
