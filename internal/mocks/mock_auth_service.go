package mocks

import (
	"context"

	"github.com/Jasmitsingh01/school-management/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc    func(ctx context.Context, name, email, password string) (*domain.User, bool, error)
	VerifyEmailFunc func(ctx context.Context, email, code string) error
	ResendOTPFunc   func(ctx context.Context, email, name string) error
	LoginFunc       func(ctx context.Context, email, password string) (*domain.User, string, error)
	ProfileFunc     func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, bool, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return &domain.User{ID: 1, Name: name, Email: email, Role: "user"}, true, nil
}

// VerifyEmail redeems a verification code
func (m *MockAuthService) VerifyEmail(ctx context.Context, email, code string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, email, code)
	}
	return nil
}

// ResendOTP issues a fresh verification code
func (m *MockAuthService) ResendOTP(ctx context.Context, email, name string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email, name)
	}
	return nil
}

// Login authenticates a user and returns a session token
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, "", domain.ErrInvalidCredentials
}

// Profile returns a user's profile
func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}
