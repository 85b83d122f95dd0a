package imagestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the named image does not exist on disk.
var ErrNotFound = errors.New("image not found")

// DiskStore keeps processed images in a single flat directory under
// randomly generated names.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewDiskStore: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes data under a fresh random name and returns that name.
// The file lands via temp-file-and-rename so a failed write never leaves a
// partial image behind.
func (s *DiskStore) Save(data []byte) (string, error) {
	name := uuid.NewString() + ".jpg"

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("Save: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("Save: %w", err)
	}
	return name, nil
}

// Delete removes the named image. Returns ErrNotFound if it does not exist.
func (s *DiskStore) Delete(name string) error {
	full, err := s.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

// Resolve maps a stored name to its on-disk path, rejecting anything that
// would escape the store directory.
func (s *DiskStore) Resolve(name string) (string, error) {
	if name == "" || !filepath.IsLocal(name) {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, filepath.Clean(name)), nil
}

// Exists reports whether the named image is present.
func (s *DiskStore) Exists(name string) bool {
	full, err := s.Resolve(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}
