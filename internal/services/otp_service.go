package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jasmitsingh01/school-management/domain"
)

// OTPServiceImpl implements domain.OTPService. The ledger lives in the
// database; Redis only backs the resend throttle.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	otpRepo         domain.OTPRepository
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(notificationSvc domain.NotificationService, otpRepo domain.OTPRepository, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		otpRepo:         otpRepo,
		redisClient:     redisClient,
		config:          config,
	}
}

// Issue implements domain.OTPService. The ledger insert must succeed;
// delivery failure is reported as ErrDeliveryFailed so callers can
// decide whether it is fatal for their workflow.
func (s *OTPServiceImpl) Issue(ctx context.Context, email, name string) error {
	if canResend, waitTime, err := s.CanResend(ctx, email); err == nil && !canResend {
		return fmt.Errorf("%w: retry in %d seconds", domain.ErrOTPResendLimit, waitTime)
	}

	// Stale rows are not required for correctness of the new code,
	// they just keep the ledger small.
	if err := s.otpRepo.DeleteStale(ctx, email, time.Now()); err != nil {
		log.Printf("OTP_CLEANUP_FAILED: email=%s error=%v", email, err)
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	otp := &domain.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return fmt.Errorf("failed to record code: %w", err)
	}

	if s.redisClient != nil {
		resendKey := "otp:res:" + email
		if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
			log.Printf("OTP_THROTTLE_FAILED: email=%s error=%v", email, err)
		}
	}

	if err := s.notificationSvc.SendOTP(email, name, code, s.config.TTL); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	return nil
}

// Redeem implements domain.OTPService. A code is accepted iff the email
// matches, the code matches exactly, it is unexpired and it has not
// been consumed; every other combination yields ErrOTPInvalidOrExpired.
func (s *OTPServiceImpl) Redeem(ctx context.Context, email, code string) error {
	now := time.Now()

	match, err := s.otpRepo.FindValid(ctx, email, code, now)
	if err != nil {
		return err
	}

	if err := s.otpRepo.Consume(ctx, match.ID, email); err != nil {
		return err
	}

	// Best-effort prune; safe to skip on failure.
	if err := s.otpRepo.DeleteStale(ctx, email, time.Now()); err != nil {
		log.Printf("OTP_CLEANUP_FAILED: email=%s error=%v", email, err)
	}

	return nil
}

// CanResend implements domain.OTPService with Redis-based throttling
func (s *OTPServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if s.redisClient == nil {
		return true, 0, nil
	}

	resendKey := "otp:res:" + email

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

// generateCode draws a uniform random code with a non-zero leading
// digit, e.g. [100000, 999999] for the default length of six.
func (s *OTPServiceImpl) generateCode() (string, error) {
	min := int64(1)
	for i := 1; i < s.config.Length; i++ {
		min *= 10
	}
	n, err := rand.Int(rand.Reader, big.NewInt(min*9))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", s.config.Length, n.Int64()+min), nil
}
