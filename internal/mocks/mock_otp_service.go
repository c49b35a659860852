package mocks

import (
	"context"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc     func(ctx context.Context, email, name string) error
	RedeemFunc    func(ctx context.Context, email, code string) error
	CanResendFunc func(ctx context.Context, email string) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and delivers a code
func (m *MockOTPService) Issue(ctx context.Context, email, name string) error {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email, name)
	}
	return nil
}

// Redeem validates and consumes a code
func (m *MockOTPService) Redeem(ctx context.Context, email, code string) error {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, email, code)
	}
	return nil
}

// CanResend reports whether a new code may be requested
func (m *MockOTPService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	return true, 0, nil
}
