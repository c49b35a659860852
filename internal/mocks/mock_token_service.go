package mocks

import (
	"time"

	"github.com/Jasmitsingh01/school-management/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(user *domain.User) (string, error)
	ValidateFunc func(token string) (*domain.SessionClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate signs a session token for the user
func (m *MockTokenService) Generate(user *domain.User) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	return "mock_token", nil
}

// Validate verifies a session token
func (m *MockTokenService) Validate(token string) (*domain.SessionClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	if token == "mock_token" {
		now := time.Now()
		return &domain.SessionClaims{
			UserID:    1,
			Email:     "test@example.com",
			Name:      "Test User",
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		}, nil
	}
	return nil, domain.ErrTokenInvalid
}
