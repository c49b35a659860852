package services

import (
	"testing"
	"time"

	"github.com/Jasmitsingh01/school-management/domain"
	"github.com/Jasmitsingh01/school-management/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if otpSvc == nil {
		otpSvc = mocks.NewMockOTPService()
	}

	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc)
}

// createVerifiedUser creates a verified user entity for testing
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:            1,
		Email:         "test@example.com",
		Name:          "Test User",
		PasswordHash:  "hashed_Abcdef1!",
		Role:          "user",
		EmailVerified: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// createUnverifiedUser creates an unverified user entity for testing
func createUnverifiedUser(t *testing.T) *domain.User {
	t.Helper()

	u := createVerifiedUser(t)
	u.EmailVerified = false
	return u
}
