package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

)

// LocalStorage implements domain.FileStorage on the local filesystem.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates a filesystem-backed store rooted at dir.
// References returned by Save are baseURL-joined paths.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

// Save implements domain.FileStorage
func (s *LocalStorage) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	name := uuid.New().String() + filepath.Ext(filename)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + path.Join("uploads", name), nil
}
