package genoseq

import (
	"os"
	"path/filepath"
)

// Storage is the seam between the codec and whatever persists its output.
// Archives are written through it so a ledger- or object-store-backed
// implementation can be dropped in by the surrounding system; this package
// ships only the local filesystem backend.
type Storage interface {
	// ReadFile reads a file relative to the base path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes a file relative to the base path, creating parent
	// directories as needed.
	WriteFile(path string, data []byte) error

	// Exists checks if a file exists.
	Exists(path string) (bool, error)

	// GetBasePath returns the base path.
	GetBasePath() string
}

// LocalStorage implements Storage on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a local storage backend rooted at basePath.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

func (s *LocalStorage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.basePath, path))
}

func (s *LocalStorage) WriteFile(path string, data []byte) error {
	fullPath := filepath.Join(s.basePath, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func (s *LocalStorage) Exists(path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *LocalStorage) GetBasePath() string {
	return s.basePath
}
