package mocks

import (
	"context"
	"io"
)

// MockFileStorage implements domain.FileStorage interface for testing
type MockFileStorage struct {
	SaveFunc func(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)

	Saved []string
}

// NewMockFileStorage creates a new MockFileStorage with default behaviors
func NewMockFileStorage() *MockFileStorage {
	return &MockFileStorage{}
}

// Save stores the bytes and returns a reference
func (m *MockFileStorage) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	m.Saved = append(m.Saved, filename)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, contentType, r, size)
	}
	return "/uploads/" + filename, nil
}
