package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Jasmitsingh01/school-management/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
	}
}

// Register implements domain.AuthService. The returned bool reports
// whether the verification code was actually delivered: a failed send
// does not fail the registration, so a created account is never lost to
// a transient mail-provider error.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, bool, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, false, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is the authoritative duplicate check; two
		// concurrent registrations can both pass the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, domain.ErrEmailTaken
		}
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otpSvc.Issue(ctx, email, name); err != nil {
		switch {
		case errors.Is(err, domain.ErrDeliveryFailed):
			log.Printf("OTP_DELIVERY_FAILED: email=%s error=%v", email, err)
			return user, false, nil
		case errors.Is(err, domain.ErrOTPResendLimit):
			// An earlier send-otp for this address armed the throttle.
			// The account exists now; the caller just requests a code
			// once the window passes.
			log.Printf("OTP_THROTTLED_ON_REGISTER: email=%s error=%v", email, err)
			return user, false, nil
		default:
			return nil, false, fmt.Errorf("failed to issue verification code: %w", err)
		}
	}

	return user, true, nil
}

// VerifyEmail implements domain.AuthService
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, email, code string) error {
	if err := s.otpSvc.Redeem(ctx, email, code); err != nil {
		return err
	}

	log.Printf("EMAIL_VERIFIED: email=%s timestamp=%s", email, time.Now().UTC().Format(time.RFC3339))
	return nil
}

// ResendOTP implements domain.AuthService. Unlike registration, a
// failed send fails the operation: no new account state was created
// that would be lost.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email, name string) error {
	if name == "" {
		if user, err := s.userRepo.FindByEmail(ctx, email); err == nil {
			name = user.Name
		}
	}

	return s.otpSvc.Issue(ctx, email, name)
}

// Login implements domain.AuthService. An unknown email and a wrong
// password produce the same error; only the unverified case is
// distinguishable, because that caller legitimately needs to be routed
// to verification.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, "", domain.ErrEmailNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return user, token, nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
